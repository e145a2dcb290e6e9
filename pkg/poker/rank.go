package poker

import "fmt"

// Category is a poker hand category, i.e., a full house
type Category int

// Constants for Category, ordered weakest to strongest
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Rank is a totally ordered hand-strength value.
// Two ranks compare by category first, then by the tiebreak ranks in
// descending order of significance. Equal ranks mean a split pot.
type Rank struct {
	Category  Category `json:"category"`
	Tiebreaks []int    `json:"tiebreaks"`
}

// Compare returns -1 if r is weaker than other, 1 if stronger, and 0 on a tie
func (r Rank) Compare(other Rank) int {
	if r.Category != other.Category {
		if r.Category < other.Category {
			return -1
		}

		return 1
	}

	n := len(r.Tiebreaks)
	if len(other.Tiebreaks) < n {
		n = len(other.Tiebreaks)
	}

	for i := 0; i < n; i++ {
		if r.Tiebreaks[i] != other.Tiebreaks[i] {
			if r.Tiebreaks[i] < other.Tiebreaks[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Less returns true if r is strictly weaker than other
func (r Rank) Less(other Rank) bool {
	return r.Compare(other) < 0
}

// Equal returns true if the hands tie
func (r Rank) Equal(other Rank) bool {
	return r.Compare(other) == 0
}

var rankNames = map[int]string{
	14: "Ace",
	13: "King",
	12: "Queen",
	11: "Jack",
	10: "Ten",
	9:  "Nine",
	8:  "Eight",
	7:  "Seven",
	6:  "Six",
	5:  "Five",
	4:  "Four",
	3:  "Three",
	2:  "Two",
}

func rankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}

	return fmt.Sprintf("%d", rank)
}

// Describe returns a human-readable description of the rank,
// e.g., "Full House, Kings over Tens"
func (r Rank) Describe() string {
	switch r.Category {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, high %s", rankName(r.Tiebreaks[0]))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %ss", rankName(r.Tiebreaks[0]))
	case FullHouse:
		return fmt.Sprintf("Full House, %ss over %ss", rankName(r.Tiebreaks[0]), rankName(r.Tiebreaks[1]))
	case Flush:
		return "Flush"
	case Straight:
		return fmt.Sprintf("Straight, high %s", rankName(r.Tiebreaks[0]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %ss", rankName(r.Tiebreaks[0]))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %ss and %ss", rankName(r.Tiebreaks[0]), rankName(r.Tiebreaks[1]))
	case OnePair:
		return fmt.Sprintf("One Pair, %ss", rankName(r.Tiebreaks[0]))
	default:
		return fmt.Sprintf("High Card %s", rankName(r.Tiebreaks[0]))
	}
}
