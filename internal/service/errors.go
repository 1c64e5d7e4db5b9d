package service

import (
	"errors"
	"fmt"

	"github.com/flashdeck/flashdeck-api/internal/store"
)

// Service-level errors.
var (
	// ErrGenerationFailed wraps any credential, network, parsing-adjacent, or
	// persistence failure during deck generation. The underlying cause is
	// embedded in the error message.
	ErrGenerationFailed = errors.New("failed to generate flash cards")

	// ErrNoDecksToExport is returned when an export request resolves to an
	// empty deck set. It matches store.ErrNotFound via errors.Is.
	ErrNoDecksToExport = fmt.Errorf("%w: no decks to export", store.ErrNotFound)
)
