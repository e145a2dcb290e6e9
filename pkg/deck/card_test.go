package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromCode(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromCode("AS")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = CardFromCode("0H")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Hearts}, card)

	card, err = CardFromCode("2C")
	a.NoError(err)
	a.Equal(Card{Rank: 2, Suit: Clubs}, card)

	card, err = CardFromCode("jd")
	a.NoError(err)
	a.Equal(Card{Rank: Jack, Suit: Diamonds}, card)
}

func TestCardFromCode_invalid(t *testing.T) {
	a := assert.New(t)

	for _, code := range []string{"", "A", "ASX", "1S", "XS", "AX", "TS"} {
		_, err := CardFromCode(code)
		a.ErrorIs(err, ErrInvalidCardCode, "code %q", code)
	}
}

func TestCard_Code_roundTrip(t *testing.T) {
	a := assert.New(t)

	for _, card := range New().cards {
		parsed, err := CardFromCode(card.Code())
		a.NoError(err)
		a.True(card.Equal(parsed))
	}
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
	a.Equal("10♥", Card{Rank: 10, Suit: Hearts}.String())
	a.Equal("Q♦", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("2♣", Card{Rank: 2, Suit: Clubs}.String())
}

func TestCardsFromCodes(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromCodes("AS, KD ,0C")
	a.NoError(err)
	a.Equal([]Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Diamonds},
		{Rank: 10, Suit: Clubs},
	}, cards)

	cards, err = CardsFromCodes("")
	a.NoError(err)
	a.Empty(cards)

	_, err = CardsFromCodes("AS,ZZ")
	a.ErrorIs(err, ErrInvalidCardCode)

	a.Panics(func() {
		MustCards("not-a-card")
	})
}

func TestCardsToString(t *testing.T) {
	assert.Equal(t, "A♠ K♦ 10♣", CardsToString(MustCards("AS,KD,0C")))
}
