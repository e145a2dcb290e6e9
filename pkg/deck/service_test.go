package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryService(t *testing.T) {
	a := assert.New(t)

	s := NewInMemoryService(fixedRNG{value: 1})

	h1 := s.NewShuffledDeck()
	h2 := s.NewShuffledDeck()
	a.NotEqual(h1, h2)

	// decks are independent: drawing from one does not touch the other
	cards1, err := s.Draw(h1, 2)
	a.NoError(err)
	a.Len(cards1, 2)

	cards2, err := s.Draw(h2, 2)
	a.NoError(err)
	a.Len(cards2, 2)
	a.Equal(cards1, cards2) // same generator, same shuffle

	_, err = s.Draw(Handle("nope"), 1)
	a.ErrorIs(err, ErrUnknownDeck)
}

func TestInMemoryService_exhaustion(t *testing.T) {
	a := assert.New(t)

	s := NewInMemoryService(fixedRNG{value: 0})
	h := s.NewShuffledDeck()

	cards, err := s.Draw(h, 52)
	a.NoError(err)
	a.Len(cards, 52)

	// fully drawn decks are released; the handle is dead
	_, err = s.Draw(h, 1)
	a.ErrorIs(err, ErrUnknownDeck)

	h = s.NewShuffledDeck()
	_, err = s.Draw(h, 53)
	a.ErrorIs(err, ErrDeckExhausted)
}

func TestInMemoryService_Release(t *testing.T) {
	a := assert.New(t)

	s := NewInMemoryService(fixedRNG{value: 0})

	// a session's worth of partially drawn decks must not pile up
	for i := 0; i < 100; i++ {
		h := s.NewShuffledDeck()
		_, err := s.Draw(h, 14)
		a.NoError(err)

		s.Release(h)
	}

	a.Empty(s.decks)

	h := s.NewShuffledDeck()
	s.Release(h)
	_, err := s.Draw(h, 1)
	a.ErrorIs(err, ErrUnknownDeck)

	// releasing again, or releasing garbage, is a no-op
	s.Release(h)
	s.Release(Handle("nope"))
}
