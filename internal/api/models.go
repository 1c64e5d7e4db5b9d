package api

import (
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// MessageResponse is a plain message body, used by the root endpoint and
// delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateStatusRequest is the request body for POST /api/status.
type CreateStatusRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// StatusCheckResponse represents a stored status check record.
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// TestSutraRequest is the request body for POST /api/test-sutra. The API key
// is optional at decode time; a missing key is reported inside the response
// body rather than as an error status.
type TestSutraRequest struct {
	APIKey string `json:"api_key"`
}

// TestSutraResponse is the body of POST /api/test-sutra. The endpoint always
// answers 200; failure is encoded in Success and Message.
type TestSutraResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TestResponse string `json:"test_response,omitempty"`
}

// GenerateCardsRequest is the request body for POST /api/generate-cards.
type GenerateCardsRequest struct {
	Topic       string `json:"topic" validate:"required"`
	Language    string `json:"language" validate:"required"`
	Count       int    `json:"count" validate:"omitempty,gt=0"`
	SutraAPIKey string `json:"sutra_api_key" validate:"required"`
}

// GenerateCardsResponse is the body of a successful generation.
type GenerateCardsResponse struct {
	Deck    DeckResponse `json:"deck"`
	Success bool         `json:"success"`
	Message string       `json:"message"`
}

// ExportRequest is the request body for POST /api/export. An empty or absent
// deck_ids list selects all stored decks.
type ExportRequest struct {
	DeckIDs []string `json:"deck_ids"`
	Format  string   `json:"format" validate:"required,oneof=json csv pdf"`
}

// CardResponse represents a card in API responses.
type CardResponse struct {
	ID        string    `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// DeckResponse represents a deck in API responses.
type DeckResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Topic     string         `json:"topic"`
	Language  string         `json:"language"`
	Cards     []CardResponse `json:"cards"`
	CreatedAt time.Time      `json:"created_at"`
}

// deckToResponse converts a domain.Deck to a DeckResponse.
func deckToResponse(deck *domain.Deck) DeckResponse {
	cards := make([]CardResponse, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		cards = append(cards, CardResponse{
			ID:        card.ID.String(),
			Front:     card.Front,
			Back:      card.Back,
			Topic:     card.Topic,
			Language:  card.Language,
			CreatedAt: card.CreatedAt,
		})
	}

	return DeckResponse{
		ID:        deck.ID.String(),
		Name:      deck.Name,
		Topic:     deck.Topic,
		Language:  deck.Language,
		Cards:     cards,
		CreatedAt: deck.CreatedAt,
	}
}

// statusToResponse converts a domain.StatusCheck to a StatusCheckResponse.
func statusToResponse(check *domain.StatusCheck) StatusCheckResponse {
	return StatusCheckResponse{
		ID:         check.ID.String(),
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
}
