package export

import (
	"bytes"
	"encoding/csv"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// csvHeader is the fixed header row of a CSV export.
var csvHeader = []string{"Deck Name", "Topic", "Language", "Card Front", "Card Back", "Created Date"}

// csvTimeLayout formats card creation dates as "YYYY-MM-DD HH:MM:SS".
const csvTimeLayout = "2006-01-02 15:04:05"

// renderCSV writes one row per card, repeating the deck metadata on each row.
func renderCSV(decks []*domain.Deck) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, deck := range decks {
		for _, card := range deck.Cards {
			created := ""
			if !card.CreatedAt.IsZero() {
				created = card.CreatedAt.Format(csvTimeLayout)
			}

			row := []string{deck.Name, deck.Topic, deck.Language, card.Front, card.Back, created}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
