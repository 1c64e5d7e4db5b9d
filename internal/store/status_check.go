package store

import (
	"context"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// StatusStore defines the persistence operations for status check records.
// Implementations must be safe for concurrent use.
type StatusStore interface {
	// Create saves a new status check record.
	Create(ctx context.Context, check *domain.StatusCheck) error

	// List returns all stored status checks in insertion order.
	List(ctx context.Context) ([]*domain.StatusCheck, error)
}
