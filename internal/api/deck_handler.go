package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/export"
	"github.com/flashdeck/flashdeck-api/internal/redact"
	"github.com/flashdeck/flashdeck-api/internal/service"
)

// DeckHandler handles deck-related HTTP requests.
type DeckHandler struct {
	decks  service.DeckService
	logger *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(decks service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		decks:  decks,
		logger: logger.With(slog.String("component", "deck_handler")),
	}
}

// GenerateCards handles POST /api/generate-cards requests.
func (h *DeckHandler) GenerateCards(w http.ResponseWriter, r *http.Request) {
	var req GenerateCardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	deck, err := h.decks.GenerateDeck(r.Context(), service.GenerateDeckRequest{
		Topic:    req.Topic,
		Language: req.Language,
		Count:    req.Count,
		APIKey:   req.SutraAPIKey,
	})
	if err != nil {
		// The underlying cause is embedded in the detail, with credentials
		// scrubbed.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error generating cards: "+redact.Error(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateCardsResponse{
		Deck:    deckToResponse(deck),
		Success: true,
		Message: fmt.Sprintf("Successfully generated %d flash cards", deck.CardCount()),
	})
}

// ListDecks handles GET /api/decks requests.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.decks.ListDecks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list decks", err)
		return
	}

	responses := make([]DeckResponse, 0, len(decks))
	for _, deck := range decks {
		responses = append(responses, deckToResponse(deck))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetDeck handles GET /api/decks/{id} requests.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id can never match a stored deck.
		shared.RespondWithError(w, r, http.StatusNotFound, "Deck not found")
		return
	}

	deck, err := h.decks.GetDeck(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// DeleteDeck handles DELETE /api/decks/{id} requests.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Deck not found")
		return
	}

	if err := h.decks.DeleteDeck(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Deck deleted successfully"})
}

// ExportDecks handles POST /api/export requests. On success the response is
// the rendered document with an attachment content disposition.
func (h *DeckHandler) ExportDecks(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	deckIDs := make([]uuid.UUID, 0, len(req.DeckIDs))
	for _, raw := range req.DeckIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			// Malformed ids behave like unknown ids: they match nothing.
			h.logger.Debug("skipping malformed deck id in export request", slog.String("deck_id", raw))
			continue
		}
		deckIDs = append(deckIDs, id)
	}

	doc, err := h.decks.ExportDecks(r.Context(), service.ExportDecksRequest{
		DeckIDs: deckIDs,
		Format:  export.Format(req.Format),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDecksToExport):
			shared.RespondWithError(w, r, http.StatusNotFound, "No decks found to export")
		case errors.Is(err, export.ErrUnsupportedFormat):
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Unsupported export format", err)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to export decks", err)
		}
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename=`+doc.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		h.logger.Error("failed to write export payload", slog.String("error", err.Error()))
	}
}
