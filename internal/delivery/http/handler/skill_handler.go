package handler

import (
	"hirechain/internal/delivery/http/dto"
	"hirechain/internal/pkg/response"
	"hirechain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Post("/extract", h.Extract)
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req dto.ExtractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	// degenerate text is fine; extraction is best-effort
	items, err := h.uc.ExtractSkills(c.Context(), req.Text)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	if items == nil {
		items = []string{}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillsResponse{Skills: items})
}
