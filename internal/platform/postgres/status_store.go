package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// StatusStore implements the store.StatusStore interface using PostgreSQL.
type StatusStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewStatusStore creates a new PostgreSQL implementation of the StatusStore
// interface. If logger is nil, the default logger is used.
func NewStatusStore(pool *pgxpool.Pool, logger *slog.Logger) *StatusStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil for StatusStore")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StatusStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "status_store")),
	}
}

// Ensure StatusStore implements store.StatusStore interface
var _ store.StatusStore = (*StatusStore)(nil)

// Create implements store.StatusStore.Create
func (s *StatusStore) Create(ctx context.Context, check *domain.StatusCheck) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}

	return nil
}

// List implements store.StatusStore.List
func (s *StatusStore) List(ctx context.Context) ([]*domain.StatusCheck, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, client_name, created_at FROM status_checks ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}
	defer rows.Close()

	checks := []*domain.StatusCheck{}
	for rows.Next() {
		var check domain.StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan status check row: %w", err)
		}
		checks = append(checks, &check)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status check rows: %w", err)
	}

	return checks, nil
}
