package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Deck-specific validation errors
var (
	// ErrDeckIDEmpty is returned when a deck ID is empty or nil.
	ErrDeckIDEmpty = errors.New("deck ID cannot be empty")

	// ErrDeckNameEmpty is returned when a deck's name is empty.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")

	// ErrDeckTopicEmpty is returned when a deck's topic is empty.
	ErrDeckTopicEmpty = errors.New("deck topic cannot be empty")

	// ErrDeckLanguageEmpty is returned when a deck's language is empty.
	ErrDeckLanguageEmpty = errors.New("deck language cannot be empty")
)

// Deck is a named, persisted collection of flash cards for one topic/language
// pair. The deck is the unit of storage: it is created atomically with its
// cards, stored as one record, and deleted as one record. Cards have no
// identity outside their deck.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`
	Cards     []Card    `json:"cards"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDeck creates a new Deck holding the given cards. The deck is named
// "{topic} - {Language}" with the language title-cased. It generates a new
// UUID and sets the creation timestamp. Returns an error if validation fails.
func NewDeck(topic, lang string, cards []Card) (*Deck, error) {
	deck := &Deck{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("%s - %s", topic, cases.Title(language.Und).String(lang)),
		Topic:     topic,
		Language:  lang,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data. An empty card list is valid:
// generation may yield fewer usable cards than requested, including none.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}

	if d.Name == "" {
		return ErrDeckNameEmpty
	}

	if d.Topic == "" {
		return ErrDeckTopicEmpty
	}

	if d.Language == "" {
		return ErrDeckLanguageEmpty
	}

	return nil
}

// CardCount returns the number of cards in the deck.
func (d *Deck) CardCount() int {
	return len(d.Cards)
}
