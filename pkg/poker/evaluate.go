package poker

import (
	"fmt"
	"sort"

	"pokernight-bot/pkg/deck"
)

// RankFive computes the rank of exactly five cards.
// Panics if given anything other than five cards; callers dealing with
// larger hands must go through BestHand.
func RankFive(cards []deck.Card) Rank {
	if len(cards) != 5 {
		panic(fmt.Sprintf("RankFive requires exactly 5 cards, got %d", len(cards)))
	}

	ranks := make([]int, 5)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	uniq := uniqueDescending(ranks)
	isStraight, straightHigh := straightHigh(uniq)

	if isFlush && isStraight {
		return Rank{Category: StraightFlush, Tiebreaks: []int{straightHigh}}
	}

	if quad, ok := ofAKind(counts, 4); ok {
		kicker := highestExcluding(ranks, quad)
		return Rank{Category: FourOfAKind, Tiebreaks: []int{quad, kicker}}
	}

	trips, hasTrips := ofAKind(counts, 3)
	pairs := pairsDescending(counts)

	if hasTrips && len(pairs) > 0 {
		return Rank{Category: FullHouse, Tiebreaks: []int{trips, pairs[0]}}
	}

	if isFlush {
		return Rank{Category: Flush, Tiebreaks: ranks}
	}

	if isStraight {
		return Rank{Category: Straight, Tiebreaks: []int{straightHigh}}
	}

	if hasTrips {
		tiebreaks := append([]int{trips}, kickersExcluding(ranks, 2, trips)...)
		return Rank{Category: ThreeOfAKind, Tiebreaks: tiebreaks}
	}

	if len(pairs) >= 2 {
		kicker := highestExcluding(ranks, pairs[0], pairs[1])
		return Rank{Category: TwoPair, Tiebreaks: []int{pairs[0], pairs[1], kicker}}
	}

	if len(pairs) == 1 {
		tiebreaks := append([]int{pairs[0]}, kickersExcluding(ranks, 3, pairs[0])...)
		return Rank{Category: OnePair, Tiebreaks: tiebreaks}
	}

	return Rank{Category: HighCard, Tiebreaks: ranks}
}

// BestHand returns the strongest rank any five of the given cards can make.
// Every five-card subset is evaluated; for the usual seven-card input that
// is 21 combinations. Brute force is deliberate here: it is definitionally
// correct and cheap at table scale.
func BestHand(cards []deck.Card) Rank {
	if len(cards) < 5 {
		panic(fmt.Sprintf("BestHand requires at least 5 cards, got %d", len(cards)))
	}

	if len(cards) == 5 {
		return RankFive(cards)
	}

	var best Rank
	first := true

	n := len(cards)
	subset := make([]deck.Card, 5)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						subset[0], subset[1], subset[2], subset[3], subset[4] = cards[a], cards[b], cards[c], cards[d], cards[e]

						rank := RankFive(subset)
						if first || best.Less(rank) {
							best = rank
							first = false
						}
					}
				}
			}
		}
	}

	return best
}

// CompareHands finds the winner(s) among the players' hole cards over a shared
// board. It returns the IDs of every player holding the strongest hand
// (more than one on a tie) plus each player's individual rank for display.
// Winner IDs are returned in ascending order.
func CompareHands(holeCards map[int64][]deck.Card, board []deck.Card) ([]int64, map[int64]Rank) {
	ranks := make(map[int64]Rank, len(holeCards))

	var best Rank
	first := true
	for id, hole := range holeCards {
		cards := make([]deck.Card, 0, len(hole)+len(board))
		cards = append(cards, hole...)
		cards = append(cards, board...)

		rank := BestHand(cards)
		ranks[id] = rank

		if first || best.Less(rank) {
			best = rank
			first = false
		}
	}

	winners := make([]int64, 0, 1)
	for id, rank := range ranks {
		if rank.Equal(best) {
			winners = append(winners, id)
		}
	}

	sort.Slice(winners, func(i, j int) bool { return winners[i] < winners[j] })

	return winners, ranks
}

// straightHigh reports whether the unique descending ranks contain five
// consecutive values, and the high card of the best such run. The wheel
// (A-2-3-4-5) counts as a straight with a high card of 5, not 14.
func straightHigh(uniqDesc []int) (bool, int) {
	for i := 0; i+4 < len(uniqDesc); i++ {
		if uniqDesc[i]-uniqDesc[i+4] == 4 {
			return true, uniqDesc[i]
		}
	}

	if containsAll(uniqDesc, deck.Ace, 5, 4, 3, 2) {
		return true, 5
	}

	return false, 0
}

func uniqueDescending(sortedDesc []int) []int {
	uniq := make([]int, 0, len(sortedDesc))
	for i, r := range sortedDesc {
		if i == 0 || sortedDesc[i-1] != r {
			uniq = append(uniq, r)
		}
	}

	return uniq
}

func containsAll(haystack []int, needles ...int) bool {
	set := make(map[int]bool, len(haystack))
	for _, v := range haystack {
		set[v] = true
	}

	for _, needle := range needles {
		if !set[needle] {
			return false
		}
	}

	return true
}

// ofAKind returns the highest rank appearing exactly n times
func ofAKind(counts map[int]int, n int) (int, bool) {
	best := 0
	for rank, count := range counts {
		if count == n && rank > best {
			best = rank
		}
	}

	return best, best > 0
}

// pairsDescending returns the ranks of all pairs, highest first
func pairsDescending(counts map[int]int) []int {
	pairs := make([]int, 0, 2)
	for rank, count := range counts {
		if count == 2 {
			pairs = append(pairs, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs
}

func highestExcluding(ranksDesc []int, excluded ...int) int {
	for _, r := range ranksDesc {
		skip := false
		for _, x := range excluded {
			if r == x {
				skip = true
				break
			}
		}

		if !skip {
			return r
		}
	}

	return 0
}

// kickersExcluding returns up to n kickers in descending order, skipping the
// excluded ranks entirely
func kickersExcluding(ranksDesc []int, n int, excluded ...int) []int {
	kickers := make([]int, 0, n)
	for _, r := range ranksDesc {
		skip := false
		for _, x := range excluded {
			if r == x {
				skip = true
				break
			}
		}

		if skip {
			continue
		}

		kickers = append(kickers, r)
		if len(kickers) == n {
			break
		}
	}

	return kickers
}
