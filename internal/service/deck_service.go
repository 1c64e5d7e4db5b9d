package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/export"
	"github.com/flashdeck/flashdeck-api/internal/generation"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// DefaultCardCount is used when a generation request does not specify a
// usable count.
const DefaultCardCount = 5

// probeMaxTokens bounds the reply of the connectivity check.
const probeMaxTokens = 50

// GenerateDeckRequest carries the inputs of one deck generation. The API key
// belongs to the caller and is never persisted.
type GenerateDeckRequest struct {
	Topic    string
	Language string
	Count    int
	APIKey   string
}

// ExportDecksRequest selects decks and a target format for export.
// An empty DeckIDs slice selects all stored decks.
type ExportDecksRequest struct {
	DeckIDs []uuid.UUID
	Format  export.Format
}

// DeckService orchestrates deck generation, retrieval, deletion, and export.
// Every operation is a single-shot, stateless transaction against storage.
type DeckService interface {
	// GenerateDeck builds a prompt for the request, invokes the chat
	// completer, parses the reply into cards, and persists the resulting
	// deck. Upstream and persistence failures are reported as
	// ErrGenerationFailed carrying the underlying cause.
	GenerateDeck(ctx context.Context, req GenerateDeckRequest) (*domain.Deck, error)

	// ListDecks returns all stored decks.
	ListDecks(ctx context.Context) ([]*domain.Deck, error)

	// GetDeck returns the deck with the given ID or store.ErrDeckNotFound.
	GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// DeleteDeck deletes a deck by ID, returning store.ErrDeckNotFound if no
	// record matched.
	DeleteDeck(ctx context.Context, id uuid.UUID) error

	// ExportDecks resolves the requested deck IDs (all decks if none given)
	// and renders them in the requested format. Returns ErrNoDecksToExport
	// when the resolved set is empty.
	ExportDecks(ctx context.Context, req ExportDecksRequest) (*export.Document, error)

	// CheckConnection sends a fixed probe prompt with the given API key and
	// returns the model's reply text.
	CheckConnection(ctx context.Context, apiKey string) (string, error)
}

type deckService struct {
	decks    store.DeckStore
	chat     generation.ChatCompleter
	exporter *export.Exporter
	llm      config.LLMConfig
	logger   *slog.Logger
}

// NewDeckService creates a DeckService backed by the given store, chat
// completer, and exporter. If logger is nil, the default logger is used.
func NewDeckService(
	decks store.DeckStore,
	chat generation.ChatCompleter,
	exporter *export.Exporter,
	llm config.LLMConfig,
	logger *slog.Logger,
) DeckService {
	if decks == nil || chat == nil || exporter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependencies
		panic("deck service dependencies cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &deckService{
		decks:    decks,
		chat:     chat,
		exporter: exporter,
		llm:      llm,
		logger:   logger.With(slog.String("component", "deck_service")),
	}
}

func (s *deckService) GenerateDeck(ctx context.Context, req GenerateDeckRequest) (*domain.Deck, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultCardCount
	}

	instruction, known := languageInstructions[strings.ToLower(req.Language)]
	if !known {
		instruction = languageInstructions[defaultLanguageKey]
		s.logger.DebugContext(ctx, "unknown language, using English prompt instruction",
			slog.String("language", req.Language))
	}

	prompt := buildPrompt(req.Topic, instruction, count)

	reply, err := s.chat.Complete(ctx, generation.ChatRequest{
		APIKey:      req.APIKey,
		Model:       s.llm.Model,
		Messages:    []generation.Message{{Role: "user", Content: prompt}},
		MaxTokens:   s.llm.MaxTokens,
		Temperature: s.llm.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	pairs := generation.ParseCards(reply, count)

	cards := make([]domain.Card, 0, len(pairs))
	for _, pair := range pairs {
		card, err := domain.NewCard(pair.Front, pair.Back, req.Topic, req.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		cards = append(cards, *card)
	}

	deck, err := domain.NewDeck(req.Topic, req.Language, cards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := s.decks.Create(ctx, deck); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	s.logger.InfoContext(ctx, "deck generated",
		slog.String("deck_id", deck.ID.String()),
		slog.String("language", deck.Language),
		slog.Int("requested", count),
		slog.Int("card_count", deck.CardCount()))

	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	decks, err := s.decks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

func (s *deckService) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	return deck, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	if err := s.decks.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	s.logger.InfoContext(ctx, "deck deleted", slog.String("deck_id", id.String()))
	return nil
}

func (s *deckService) ExportDecks(ctx context.Context, req ExportDecksRequest) (*export.Document, error) {
	var decks []*domain.Deck

	if len(req.DeckIDs) == 0 {
		all, err := s.decks.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load decks for export: %w", err)
		}
		decks = all
	} else {
		for _, id := range req.DeckIDs {
			deck, err := s.decks.GetByID(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				// Unknown ids are skipped; an all-unknown selection falls
				// through to ErrNoDecksToExport below.
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to load deck for export: %w", err)
			}
			decks = append(decks, deck)
		}
	}

	if len(decks) == 0 {
		return nil, ErrNoDecksToExport
	}

	doc, err := s.exporter.Export(decks, req.Format)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "decks exported",
		slog.String("format", string(req.Format)),
		slog.Int("deck_count", len(decks)))

	return doc, nil
}

func (s *deckService) CheckConnection(ctx context.Context, apiKey string) (string, error) {
	return s.chat.Complete(ctx, generation.ChatRequest{
		APIKey:      apiKey,
		Model:       s.llm.Model,
		Messages:    []generation.Message{{Role: "user", Content: connectionProbePrompt}},
		MaxTokens:   probeMaxTokens,
		Temperature: 0,
	})
}
