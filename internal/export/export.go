// Package export renders collections of decks into downloadable documents.
// Three encodings are supported: JSON, CSV, and paginated PDF.
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// Format identifies a supported export encoding.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// Export errors.
var (
	// ErrUnsupportedFormat is returned for a format value outside the
	// supported set. It is checked before any rendering work begins.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrRenderFailed is returned when rendering fails. No partial document
	// is ever returned alongside it.
	ErrRenderFailed = errors.New("failed to render export")
)

// ParseFormat validates a raw format string and returns the matching Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Document is a rendered export: the payload bytes, the MIME type, and a
// suggested download filename.
type Document struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Exporter renders decks into export documents. The clock is injectable so
// tests can pin the export timestamp.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an Exporter using the system clock.
func NewExporter() *Exporter {
	return &Exporter{now: func() time.Time { return time.Now().UTC() }}
}

// NewExporterWithClock creates an Exporter with a custom clock.
func NewExporterWithClock(now func() time.Time) *Exporter {
	return &Exporter{now: now}
}

// Export renders the given decks in the requested format. The format is
// validated before any rendering work begins; rendering failures surface as
// ErrRenderFailed with no partial document.
func (e *Exporter) Export(decks []*domain.Deck, format Format) (*Document, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	now := e.now()

	var (
		data        []byte
		contentType string
		err         error
	)

	switch format {
	case FormatJSON:
		data, err = renderJSON(decks, now)
		contentType = "application/json"
	case FormatCSV:
		data, err = renderCSV(decks)
		contentType = "text/csv"
	case FormatPDF:
		data, err = renderPDF(decks, now)
		contentType = "application/pdf"
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return &Document{
		Data:        data,
		ContentType: contentType,
		Filename:    fmt.Sprintf("flashcards_export_%s.%s", now.Format("20060102_150405"), format),
	}, nil
}

// totalCards sums the card counts across the given decks.
func totalCards(decks []*domain.Deck) int {
	total := 0
	for _, deck := range decks {
		total += deck.CardCount()
	}
	return total
}
