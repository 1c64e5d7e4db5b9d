package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

type fakeStatusService struct {
	created    *domain.StatusCheck
	createErr  error
	lastClient string
	checks     []*domain.StatusCheck
	listErr    error
}

func (f *fakeStatusService) CreateStatusCheck(_ context.Context, clientName string) (*domain.StatusCheck, error) {
	f.lastClient = clientName
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return domain.NewStatusCheck(clientName)
}

func (f *fakeStatusService) ListStatusChecks(_ context.Context) ([]*domain.StatusCheck, error) {
	return f.checks, f.listErr
}

type fakeConnectionChecker struct {
	reply   string
	err     error
	lastKey string
}

func (f *fakeConnectionChecker) CheckConnection(_ context.Context, apiKey string) (string, error) {
	f.lastKey = apiKey
	return f.reply, f.err
}

func newStatusRouter(statuses *fakeStatusService, checker *fakeConnectionChecker) http.Handler {
	handler := NewStatusHandler(statuses, checker, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Get("/api/", handler.Root)
	r.Post("/api/status", handler.CreateStatusCheck)
	r.Get("/api/status", handler.ListStatusChecks)
	r.Post("/api/test-sutra", handler.TestSutra)
	return r
}

func TestRootEndpoint(t *testing.T) {
	t.Parallel()

	router := newStatusRouter(&fakeStatusService{}, &fakeConnectionChecker{})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Multilingual Flash Card Generator API", resp.Message)
}

func TestCreateStatusCheckEndpoint(t *testing.T) {
	t.Parallel()

	svc := &fakeStatusService{}
	router := newStatusRouter(svc, &fakeConnectionChecker{})

	body := `{"client_name": "integration-probe"}`
	req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatusCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "integration-probe", resp.ClientName)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Equal(t, "integration-probe", svc.lastClient)
}

func TestCreateStatusCheckValidation(t *testing.T) {
	t.Parallel()

	router := newStatusRouter(&fakeStatusService{}, &fakeConnectionChecker{})

	for _, body := range []string{`{}`, `{"client_name": ""}`, `{broken`} {
		req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestListStatusChecksEndpoint(t *testing.T) {
	t.Parallel()

	first, err := domain.NewStatusCheck("probe-1")
	require.NoError(t, err)
	second, err := domain.NewStatusCheck("probe-2")
	require.NoError(t, err)

	router := newStatusRouter(&fakeStatusService{checks: []*domain.StatusCheck{first, second}}, &fakeConnectionChecker{})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []StatusCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "probe-1", resp[0].ClientName)
	assert.Equal(t, "probe-2", resp[1].ClientName)
}

func TestTestSutraSuccess(t *testing.T) {
	t.Parallel()

	checker := &fakeConnectionChecker{reply: "मैं ठीक हूँ।"}
	router := newStatusRouter(&fakeStatusService{}, checker)

	body := `{"api_key": "sutra_testkey12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/test-sutra", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestSutraResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Sutra API connection successful", resp.Message)
	assert.Equal(t, "मैं ठीक हूँ।", resp.TestResponse)
	assert.Equal(t, "sutra_testkey12345", checker.lastKey)
}

func TestTestSutraMissingKey(t *testing.T) {
	t.Parallel()

	checker := &fakeConnectionChecker{}
	router := newStatusRouter(&fakeStatusService{}, checker)

	req := httptest.NewRequest(http.MethodPost, "/api/test-sutra", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Failure is reported in the body, not the status code.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestSutraResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Sutra API connection failed: API key is required", resp.Message)
	assert.Empty(t, resp.TestResponse)
	assert.Empty(t, checker.lastKey)
}

func TestTestSutraUpstreamFailure(t *testing.T) {
	t.Parallel()

	checker := &fakeConnectionChecker{err: errors.New("completion request failed: status 401")}
	router := newStatusRouter(&fakeStatusService{}, checker)

	body := `{"api_key": "sutra_badkey123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/test-sutra", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestSutraResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Sutra API connection failed")
	assert.Contains(t, resp.Message, "status 401")
}

func TestTestSutraMalformedBody(t *testing.T) {
	t.Parallel()

	router := newStatusRouter(&fakeStatusService{}, &fakeConnectionChecker{})

	req := httptest.NewRequest(http.MethodPost, "/api/test-sutra", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestSutraResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Sutra API connection failed: invalid request body", resp.Message)
}
