package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/redact"
	"github.com/flashdeck/flashdeck-api/internal/service"
)

// rootMessage is the body of the root endpoint.
const rootMessage = "Multilingual Flash Card Generator API"

// ConnectionChecker probes the chat-completion provider with a
// caller-supplied API key.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context, apiKey string) (string, error)
}

// StatusHandler handles the root, status check, and LLM connectivity
// endpoints.
type StatusHandler struct {
	statuses service.StatusService
	llm      ConnectionChecker
	logger   *slog.Logger
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statuses service.StatusService, llm ConnectionChecker, logger *slog.Logger) *StatusHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatusHandler")
	}

	return &StatusHandler{
		statuses: statuses,
		llm:      llm,
		logger:   logger.With(slog.String("component", "status_handler")),
	}
}

// Root handles GET /api/ requests.
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: rootMessage})
}

// CreateStatusCheck handles POST /api/status requests.
func (h *StatusHandler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req CreateStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	check, err := h.statuses.CreateStatusCheck(r.Context(), req.ClientName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create status check", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, statusToResponse(check))
}

// ListStatusChecks handles GET /api/status requests.
func (h *StatusHandler) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.statuses.ListStatusChecks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list status checks", err)
		return
	}

	responses := make([]StatusCheckResponse, 0, len(checks))
	for _, check := range checks {
		responses = append(responses, statusToResponse(check))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// TestSutra handles POST /api/test-sutra requests. The endpoint always
// answers 200: connectivity failures, a missing key, and even a malformed
// body are reported inside the response body.
func (h *StatusHandler) TestSutra(w http.ResponseWriter, r *http.Request) {
	var req TestSutraRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusOK, TestSutraResponse{
			Success: false,
			Message: "Sutra API connection failed: invalid request body",
		})
		return
	}

	if req.APIKey == "" {
		shared.RespondWithJSON(w, r, http.StatusOK, TestSutraResponse{
			Success: false,
			Message: "Sutra API connection failed: API key is required",
		})
		return
	}

	reply, err := h.llm.CheckConnection(r.Context(), req.APIKey)
	if err != nil {
		h.logger.Debug("connectivity check failed", slog.String("error", redact.Error(err)))
		shared.RespondWithJSON(w, r, http.StatusOK, TestSutraResponse{
			Success: false,
			Message: "Sutra API connection failed: " + redact.Error(err),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TestSutraResponse{
		Success:      true,
		Message:      "Sutra API connection successful",
		TestResponse: reply,
	})
}
