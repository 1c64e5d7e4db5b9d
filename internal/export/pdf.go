package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// renderPDF builds a paginated document: a title block with export totals,
// then one section per deck with a labeled front/back block per card. Each
// deck after the first starts on a fresh page.
//
// Text passes through the cp1252 translator of the core fonts; card text in
// scripts outside latin-1 degrades to substitution characters instead of
// failing the export.
func renderPDF(decks []*domain.Deck, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Flash Cards Export"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04:05"))), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total decks: %d    Total cards: %d", len(decks), totalCards(decks))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for i, deck := range decks {
		if i > 0 {
			pdf.AddPage()
		}
		writeDeck(pdf, tr, deck)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeDeck(pdf *fpdf.Fpdf, tr func(string) string, deck *domain.Deck) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, tr(deck.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 10)
	heading := fmt.Sprintf("Topic: %s | Language: %s | Cards: %d",
		deck.Topic, deck.Language, deck.CardCount())
	pdf.CellFormat(0, 6, tr(heading), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	for i, card := range deck.Cards {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Card %d - Front:", i+1)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(card.Front), "", "L", false)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr("Back:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(card.Back), "", "L", false)
		pdf.Ln(3)
	}
}
