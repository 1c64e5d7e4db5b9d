package export

import (
	"encoding/json"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// jsonDocument is the top-level structure of a JSON export. Deck and card
// timestamps serialize as RFC 3339 text through the domain types.
type jsonDocument struct {
	ExportedAt time.Time      `json:"exported_at"`
	TotalDecks int            `json:"total_decks"`
	TotalCards int            `json:"total_cards"`
	Decks      []*domain.Deck `json:"decks"`
}

func renderJSON(decks []*domain.Deck, now time.Time) ([]byte, error) {
	doc := jsonDocument{
		ExportedAt: now,
		TotalDecks: len(decks),
		TotalCards: totalCards(decks),
		Decks:      decks,
	}

	return json.MarshalIndent(doc, "", "  ")
}
