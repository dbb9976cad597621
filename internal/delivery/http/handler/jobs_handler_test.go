package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hirechain/internal/delivery/http/middleware"
	"hirechain/internal/repository"
	"hirechain/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListUsecase struct {
	jobs []repository.Job
	err  error
}

func (s *stubListUsecase) ListJobs(context.Context, int, int) ([]repository.Job, error) {
	return s.jobs, s.err
}

type stubSubmitUsecase struct {
	job repository.Job
	err error

	gotUserID uuid.UUID
	gotInput  usecase.JobSubmission
}

func (s *stubSubmitUsecase) SubmitJob(_ context.Context, userID uuid.UUID, in usecase.JobSubmission) (repository.Job, error) {
	s.gotUserID = userID
	s.gotInput = in
	return s.job, s.err
}

func newJobsTestApp(list usecase.JobListUsecase, submit usecase.JobSubmitUsecase, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewJobsHandler(list, submit)
	h.RegisterPublicRoutes(app)

	protected := app.Group("", func(c fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals(middleware.CtxUserIDKey, userID)
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(protected)

	return app
}

func validCreateBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"title":        "Backend Engineer",
		"company":      "Acme",
		"location":     "Remote",
		"salary":       "$120k",
		"type":         "full-time",
		"description":  "Build services in Go",
		"requirements": "3+ years Go",
		"tx_hash":      "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW",
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func postJob(t *testing.T, app *fiber.App, body *bytes.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/jobs", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateJob_Success(t *testing.T) {
	userID := uuid.New()
	submit := &stubSubmitUsecase{job: repository.Job{ID: uuid.New(), Title: "Backend Engineer"}}
	app := newJobsTestApp(&stubListUsecase{}, submit, userID)

	resp := postJob(t, app, validCreateBody(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, userID, submit.gotUserID)
	assert.Equal(t, "Backend Engineer", submit.gotInput.Title)
}

func TestCreateJob_MissingFieldsCarriesFieldNames(t *testing.T) {
	submit := &stubSubmitUsecase{err: &usecase.ValidationError{Missing: []string{"salary", "tx_hash"}}}
	app := newJobsTestApp(&stubListUsecase{}, submit, uuid.New())

	resp := postJob(t, app, validCreateBody(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var envelope struct {
		Status int `json:"status"`
		Data   struct {
			Missing []string `json:"missing"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, fiber.StatusBadRequest, envelope.Status)
	assert.Equal(t, []string{"salary", "tx_hash"}, envelope.Data.Missing)
}

func TestCreateJob_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"payment rejected", usecase.ErrPaymentRejected, fiber.StatusPaymentRequired},
		{"duplicate reference", usecase.ErrDuplicateReference, fiber.StatusConflict},
		{"ledger unavailable", usecase.ErrLedgerUnavailable, fiber.StatusServiceUnavailable},
		{"unauthorized", usecase.ErrUnauthorized, fiber.StatusUnauthorized},
		{"internal", usecase.ErrInternal, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newJobsTestApp(&stubListUsecase{}, &stubSubmitUsecase{err: tc.err}, uuid.New())

			resp := postJob(t, app, validCreateBody(t))
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestCreateJob_NoIdentity(t *testing.T) {
	app := newJobsTestApp(&stubListUsecase{}, &stubSubmitUsecase{}, uuid.Nil)

	resp := postJob(t, app, validCreateBody(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListJobs_PublicEndpoint(t *testing.T) {
	list := &stubListUsecase{jobs: []repository.Job{
		{ID: uuid.New(), Title: "Backend Engineer", Skills: []string{"go"}},
	}}
	app := newJobsTestApp(list, &stubSubmitUsecase{}, uuid.Nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs?limit=10&offset=0", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Backend Engineer", envelope.Data[0].Title)
}

func TestListJobs_BadPaginationQuery(t *testing.T) {
	app := newJobsTestApp(&stubListUsecase{}, &stubSubmitUsecase{}, uuid.Nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs?limit=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
