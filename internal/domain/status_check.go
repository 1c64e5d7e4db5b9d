package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrStatusClientNameEmpty is returned when a status check has no client name.
var ErrStatusClientNameEmpty = errors.New("status check client name cannot be empty")

// StatusCheck records a client pinging the service.
type StatusCheck struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheck creates a new StatusCheck for the given client name with a
// generated ID and the current timestamp.
func NewStatusCheck(clientName string) (*StatusCheck, error) {
	if clientName == "" {
		return nil, ErrStatusClientNameEmpty
	}

	return &StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}, nil
}
