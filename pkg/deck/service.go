package deck

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"pokernight-bot/internal/rng"
)

// ErrUnknownDeck is an error when a handle does not refer to a live deck
var ErrUnknownDeck = errors.New("unknown deck handle")

// Handle is an opaque identifier for a shuffled deck held by a Service
type Handle string

// Service hands out shuffled decks and deals from them on demand.
// Tables only ever hold a Handle; the cards stay with the service until drawn.
type Service interface {
	// NewShuffledDeck returns a handle to a freshly shuffled 52-card deck
	NewShuffledDeck() Handle

	// Draw removes the next count cards from the deck in reveal order.
	// Returns ErrUnknownDeck for a stale handle and ErrDeckExhausted if
	// fewer than count cards remain.
	Draw(handle Handle, count int) ([]Card, error)

	// Release discards whatever is left of the deck. A hand never draws a
	// deck dry, so callers must release their handle when the hand ends.
	// Releasing an unknown handle is a no-op.
	Release(handle Handle)
}

// InMemoryService is a Service that keeps decks in process memory.
// Safe for concurrent use by multiple tables.
type InMemoryService struct {
	mu    sync.Mutex
	rng   rng.Generator
	decks map[Handle]*Deck
}

// NewInMemoryService returns an InMemoryService shuffling with the provided generator
func NewInMemoryService(r rng.Generator) *InMemoryService {
	return &InMemoryService{
		rng:   r,
		decks: make(map[Handle]*Deck),
	}
}

// NewShuffledDeck returns a handle to a freshly shuffled deck
func (s *InMemoryService) NewShuffledDeck() Handle {
	d := New()
	d.Shuffle(s.rng)

	handle := Handle(uuid.New().String())

	s.mu.Lock()
	s.decks[handle] = d
	s.mu.Unlock()

	return handle
}

// Draw deals the next count cards from the deck identified by handle
func (s *InMemoryService) Draw(handle Handle, count int) ([]Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.decks[handle]
	if !ok {
		return nil, ErrUnknownDeck
	}

	cards, err := d.DrawCount(count)
	if err != nil {
		return nil, err
	}

	if d.CardsLeft() == 0 {
		delete(s.decks, handle)
	}

	return cards, nil
}

// Release discards the deck identified by handle
func (s *InMemoryService) Release(handle Handle) {
	s.mu.Lock()
	delete(s.decks, handle)
	s.mu.Unlock()
}
