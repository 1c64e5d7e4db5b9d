package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// DeckStore implements the store.DeckStore interface using a PostgreSQL
// database as the storage backend. Each deck is stored as a single JSONB
// document, so a deck and its cards are written, read, and deleted as one
// atomic record.
type DeckStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewDeckStore creates a new PostgreSQL implementation of the DeckStore
// interface. It accepts a connection pool that should be initialized and
// managed by the caller. If logger is nil, the default logger is used.
func NewDeckStore(pool *pgxpool.Pool, logger *slog.Logger) *DeckStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil for DeckStore")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &DeckStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

// Ensure DeckStore implements store.DeckStore interface
var _ store.DeckStore = (*DeckStore)(nil)

// Create implements store.DeckStore.Create
func (s *DeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	doc, err := json.Marshal(deck)
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO decks (id, doc, created_at) VALUES ($1, $2, $3)`,
		deck.ID, doc, deck.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert deck: %w", err)
	}

	s.logger.DebugContext(ctx, "deck stored",
		slog.String("deck_id", deck.ID.String()),
		slog.Int("card_count", deck.CardCount()))
	return nil
}

// List implements store.DeckStore.List
func (s *DeckStore) List(ctx context.Context) ([]*domain.Deck, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM decks ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer rows.Close()

	decks := []*domain.Deck{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan deck row: %w", err)
		}

		var deck domain.Deck
		if err := json.Unmarshal(doc, &deck); err != nil {
			return nil, fmt.Errorf("failed to decode deck document: %w", err)
		}
		decks = append(decks, &deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck rows: %w", err)
	}

	return decks, nil
}

// GetByID implements store.DeckStore.GetByID
func (s *DeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM decks WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query deck: %w", err)
	}

	var deck domain.Deck
	if err := json.Unmarshal(doc, &deck); err != nil {
		return nil, fmt.Errorf("failed to decode deck document: %w", err)
	}

	return &deck, nil
}

// Delete implements store.DeckStore.Delete
func (s *DeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM decks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrDeckNotFound
	}

	s.logger.DebugContext(ctx, "deck deleted", slog.String("deck_id", id.String()))
	return nil
}
