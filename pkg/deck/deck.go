package deck

import (
	"errors"

	"pokernight-bot/internal/rng"
)

// ErrDeckExhausted is an error when a draw is attempted with too few cards left
var ErrDeckExhausted = errors.New("deck is exhausted")

// Deck represents a single-use deck of playing cards
type Deck struct {
	cards []Card
}

// New returns a new, unshuffled deck of 52 cards
func New() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{cards: cards}
}

// Shuffle performs a Fisher-Yates shuffle using the provided generator
func (d *Deck) Shuffle(r rng.Generator) {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the next card.
// If there are no more cards, an ErrDeckExhausted is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[0]
	d.cards = d.cards[1:]

	return card, nil
}

// DrawCount removes and returns the next count cards in reveal order
func (d *Deck) DrawCount(count int) ([]Card, error) {
	if len(d.cards) < count {
		return nil, ErrDeckExhausted
	}

	cards := make([]Card, count)
	copy(cards, d.cards[:count])
	d.cards = d.cards[count:]

	return cards, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}
