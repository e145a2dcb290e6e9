package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Compare(t *testing.T) {
	a := assert.New(t)

	pair := Rank{Category: OnePair, Tiebreaks: []int{8, 14, 10, 3}}
	flush := Rank{Category: Flush, Tiebreaks: []int{14, 13, 9, 5, 2}}

	a.Equal(-1, pair.Compare(flush))
	a.Equal(1, flush.Compare(pair))
	a.Equal(0, pair.Compare(pair))

	// same category, tiebreaks decide lexicographically
	lowKicker := Rank{Category: OnePair, Tiebreaks: []int{8, 14, 10, 2}}
	a.Equal(1, pair.Compare(lowKicker))
	a.True(lowKicker.Less(pair))
	a.False(pair.Less(lowKicker))

	a.True(pair.Equal(Rank{Category: OnePair, Tiebreaks: []int{8, 14, 10, 3}}))
	a.False(pair.Equal(lowKicker))
}

func TestRank_Describe(t *testing.T) {
	a := assert.New(t)

	a.Equal("Straight Flush, high Ace", Rank{Category: StraightFlush, Tiebreaks: []int{14}}.Describe())
	a.Equal("Four of a Kind, Twos", Rank{Category: FourOfAKind, Tiebreaks: []int{2, 5}}.Describe())
	a.Equal("Full House, Kings over Tens", Rank{Category: FullHouse, Tiebreaks: []int{13, 10}}.Describe())
	a.Equal("Flush", Rank{Category: Flush, Tiebreaks: []int{14, 13, 9, 5, 2}}.Describe())
	a.Equal("Straight, high Five", Rank{Category: Straight, Tiebreaks: []int{5}}.Describe())
	a.Equal("Three of a Kind, Nines", Rank{Category: ThreeOfAKind, Tiebreaks: []int{9, 13, 2}}.Describe())
	a.Equal("Two Pair, Queens and Eights", Rank{Category: TwoPair, Tiebreaks: []int{12, 8, 3}}.Describe())
	a.Equal("One Pair, Jacks", Rank{Category: OnePair, Tiebreaks: []int{11, 9, 6, 2}}.Describe())
	a.Equal("High Card Ace", Rank{Category: HighCard, Tiebreaks: []int{14, 8, 6, 4, 2}}.Describe())
}

func TestCategory_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("High Card", HighCard.String())
	a.Equal("Straight Flush", StraightFlush.String())
	a.Panics(func() {
		_ = Category(99).String()
	})
}
