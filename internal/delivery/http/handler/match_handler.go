package handler

import (
	"errors"

	"hirechain/internal/delivery/http/dto"
	"hirechain/internal/delivery/http/middleware"
	"hirechain/internal/pkg/response"
	"hirechain/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.uc.MatchJobs(c.Context(), req.ResumeText)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.MatchesResponse{Matches: make([]dto.JobMatchResponse, 0, len(matches))}
	for _, m := range matches {
		out.Matches = append(out.Matches, dto.JobMatchResponse{
			JobID:      m.JobID,
			Title:      m.Title,
			Company:    m.Company,
			Location:   m.Location,
			MatchScore: m.MatchScore,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
