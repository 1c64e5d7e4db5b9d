package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	card, err := NewCard("Red Planet", "Nickname for Mars", "Mars", "english")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if card.Front != "Red Planet" || card.Back != "Nickname for Mars" {
		t.Errorf("Unexpected card content: front=%q back=%q", card.Front, card.Back)
	}

	if card.Topic != "Mars" {
		t.Errorf("Expected topic %q, got %q", "Mars", card.Topic)
	}

	if card.Language != "english" {
		t.Errorf("Expected language %q, got %q", "english", card.Language)
	}

	if card.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Empty front/back is allowed: parsing degrades to empty strings.
	if _, err := NewCard("", "", "Mars", "english"); err != nil {
		t.Errorf("Expected empty front/back to be accepted, got %v", err)
	}

	if _, err := NewCard("a", "b", "", "english"); err != ErrCardTopicEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardTopicEmpty, err)
	}

	if _, err := NewCard("a", "b", "Mars", ""); err != ErrCardLanguageEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardLanguageEmpty, err)
	}
}

func TestNewDeck(t *testing.T) {
	t.Parallel()

	card, err := NewCard("Olympus Mons", "Tallest volcano", "Mars", "english")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	deck, err := NewDeck("Mars", "english", []Card{*card})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if deck.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if deck.Name != "Mars - English" {
		t.Errorf("Expected deck name %q, got %q", "Mars - English", deck.Name)
	}

	if deck.CardCount() != 1 {
		t.Errorf("Expected 1 card, got %d", deck.CardCount())
	}

	if deck.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestNewDeckTitleCasesMultiWordLanguages(t *testing.T) {
	t.Parallel()

	deck, err := NewDeck("Business Terms", "brazilian portuguese", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if deck.Name != "Business Terms - Brazilian Portuguese" {
		t.Errorf("Unexpected deck name %q", deck.Name)
	}
}

func TestNewDeckAllowsEmptyCardList(t *testing.T) {
	t.Parallel()

	deck, err := NewDeck("Mars", "english", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if deck.CardCount() != 0 {
		t.Errorf("Expected 0 cards, got %d", deck.CardCount())
	}
}

func TestDeckValidate(t *testing.T) {
	t.Parallel()

	deck := Deck{ID: uuid.New(), Name: "Mars - English", Topic: "Mars", Language: "english"}
	if err := deck.Validate(); err != nil {
		t.Errorf("Expected valid deck, got %v", err)
	}

	invalid := deck
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); err != ErrDeckIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckIDEmpty, err)
	}

	invalid = deck
	invalid.Name = ""
	if err := invalid.Validate(); err != ErrDeckNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrDeckNameEmpty, err)
	}
}

func TestNewStatusCheck(t *testing.T) {
	t.Parallel()

	check, err := NewStatusCheck("integration-probe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if check.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if check.ClientName != "integration-probe" {
		t.Errorf("Expected client name %q, got %q", "integration-probe", check.ClientName)
	}

	if _, err := NewStatusCheck(""); err != ErrStatusClientNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrStatusClientNameEmpty, err)
	}
}
