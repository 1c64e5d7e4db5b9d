// Package store defines the persistence interfaces consumed by the service
// layer, together with the sentinel errors implementations must return.
// Implementations live under internal/platform.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// DeckStore defines the persistence operations for decks. A deck and its
// cards are written, read, and deleted as a single record; there is no
// partial-deck mutation. Implementations must be safe for concurrent use.
type DeckStore interface {
	// Create saves a new deck with all of its cards as one record.
	// Returns ErrInvalidEntity if the deck fails validation.
	Create(ctx context.Context, deck *domain.Deck) error

	// List returns all stored decks in insertion order.
	List(ctx context.Context) ([]*domain.Deck, error)

	// GetByID retrieves a deck by its unique ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// Delete removes a deck and its cards by ID.
	// Returns ErrDeckNotFound if no record matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
