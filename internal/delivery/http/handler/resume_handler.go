package handler

import (
	"errors"
	"io"

	"hirechain/internal/delivery/http/dto"
	"hirechain/internal/delivery/http/middleware"
	"hirechain/internal/pkg/response"
	"hirechain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxResumeBytes = 5 << 20

type ResumeHandler struct {
	uc usecase.SkillUsecase
}

func NewResumeHandler(uc usecase.SkillUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resumes")
	grp.Post("/extract", h.Extract)
}

func (h *ResumeHandler) Extract(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}
	if fh.Size > maxResumeBytes {
		return middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}

	skills, err := h.uc.ExtractFromFile(c.Context(), data, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedFile) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if skills == nil {
		skills = []string{}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillsResponse{Skills: skills})
}
