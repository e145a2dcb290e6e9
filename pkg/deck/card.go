package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCardCode is an error when a card code cannot be parsed
var ErrInvalidCardCode = errors.New("invalid card code")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card.
// Cards are plain values; copying one is always safe.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Spades:
		suit = "♠"
	case Hearts:
		suit = "♥"
	case Diamonds:
		suit = "♦"
	case Clubs:
		suit = "♣"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rankSymbol(c.Rank), suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

func rankSymbol(rank int) string {
	switch rank {
	case 10:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// CardFromCode parses a two-character card code like "AS" or "0H".
// The first character is the rank (2-9, 0 for ten, J, Q, K, A) and the
// second is the suit (S, H, D, C).
func CardFromCode(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}

	code = strings.ToUpper(code)

	var rank int
	switch r := code[0]; r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = int(r - '0')
	case '0':
		rank = 10
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCardCode, code)
	}

	var suit Suit
	switch code[1] {
	case 'S':
		suit = Spades
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCardCode, code)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardsFromCodes parses a comma-separated list of card codes
func CardsFromCodes(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	codes := strings.Split(s, ",")
	cards := make([]Card, len(codes))
	for i, code := range codes {
		card, err := CardFromCode(strings.TrimSpace(code))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustCards parses a comma-separated list of card codes and panics on failure.
// Intended for tests and fixtures.
func MustCards(s string) []Card {
	cards, err := CardsFromCodes(s)
	if err != nil {
		panic(err)
	}

	return cards
}

// Code returns the two-character code for the card (the inverse of CardFromCode)
func (c Card) Code() string {
	var rank string
	switch c.Rank {
	case 10:
		rank = "0"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = fmt.Sprintf("%d", c.Rank)
	}

	var suit string
	switch c.Suit {
	case Spades:
		suit = "S"
	case Hearts:
		suit = "H"
	case Diamonds:
		suit = "D"
	case Clubs:
		suit = "C"
	}

	return rank + suit
}

// CardsToString renders a hand like "A♠ K♦ 10♣"
func CardsToString(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}

	return strings.Join(parts, " ")
}
