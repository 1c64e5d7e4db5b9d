package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardTopicEmpty is returned when a card's topic is empty.
	ErrCardTopicEmpty = errors.New("card topic cannot be empty")

	// ErrCardLanguageEmpty is returned when a card's language is empty.
	ErrCardLanguageEmpty = errors.New("card language cannot be empty")
)

// Card represents a single front/back study item. A card belongs to exactly
// one deck, is created together with it, and is immutable afterwards.
//
// Front and back may be empty: the response parser degrades to empty strings
// for malformed LLM output rather than failing the whole generation.
type Card struct {
	ID        uuid.UUID `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCard creates a new Card stamped with the topic and language of the
// generation request that produced it. It generates a new UUID and sets the
// creation timestamp. Returns an error if validation fails.
func NewCard(front, back, topic, language string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		Front:     front,
		Back:      back,
		Topic:     topic,
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Topic == "" {
		return ErrCardTopicEmpty
	}

	if c.Language == "" {
		return ErrCardLanguageEmpty
	}

	return nil
}
