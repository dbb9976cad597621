package handler

import (
	"errors"
	"strconv"
	"strings"

	"hirechain/internal/delivery/http/dto"
	"hirechain/internal/delivery/http/middleware"
	"hirechain/internal/pkg/response"
	"hirechain/internal/repository"
	"hirechain/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	list   usecase.JobListUsecase
	submit usecase.JobSubmitUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, submit usecase.JobSubmitUsecase) *JobsHandler {
	return &JobsHandler{list: list, submit: submit}
}

func (h *JobsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
}

func (h *JobsHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs", h.Create)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.list.ListJobs(c.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, jobToResponse(j))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	job, err := h.submit.SubmitJob(c.Context(), userID, usecase.JobSubmission{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		TxHash:       req.TxHash,
	})
	if err != nil {
		return mapSubmitError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job created successfully", jobToResponse(job))
}

func mapSubmitError(err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(),
			fiber.Map{"missing": verr.Missing}, err)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrDuplicateReference):
		return middleware.NewAppError(fiber.StatusConflict, "Transaction reference already used", nil, err)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return middleware.NewAppError(fiber.StatusPaymentRequired,
			"Transaction must transfer funds from your wallet to the platform wallet", nil, err)
	case errors.Is(err, usecase.ErrLedgerUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable,
			"Ledger is unavailable, retry the submission", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func jobToResponse(j repository.Job) dto.JobResponse {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return dto.JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Salary:       j.Salary,
		Type:         j.Type,
		Description:  j.Description,
		Requirements: j.Requirements,
		Skills:       skills,
		TxHash:       j.TxHash,
		PostedBy:     j.PostedBy,
		CreatedAt:    j.CreatedAt,
	}
}

func parseQueryInt(c fiber.Ctx, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
