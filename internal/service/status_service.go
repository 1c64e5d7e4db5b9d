package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// StatusService records and lists client status checks.
type StatusService interface {
	// CreateStatusCheck stores a status check for the given client name and
	// returns the stored record with its generated id and timestamp.
	CreateStatusCheck(ctx context.Context, clientName string) (*domain.StatusCheck, error)

	// ListStatusChecks returns all stored status checks.
	ListStatusChecks(ctx context.Context) ([]*domain.StatusCheck, error)
}

type statusService struct {
	statuses store.StatusStore
	logger   *slog.Logger
}

// NewStatusService creates a StatusService backed by the given store.
// If logger is nil, the default logger is used.
func NewStatusService(statuses store.StatusStore, logger *slog.Logger) StatusService {
	if statuses == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("statuses cannot be nil for StatusService")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &statusService{
		statuses: statuses,
		logger:   logger.With(slog.String("component", "status_service")),
	}
}

func (s *statusService) CreateStatusCheck(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check, err := domain.NewStatusCheck(clientName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.statuses.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to store status check: %w", err)
	}

	return check, nil
}

func (s *statusService) ListStatusChecks(ctx context.Context) ([]*domain.StatusCheck, error) {
	checks, err := s.statuses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	return checks, nil
}
