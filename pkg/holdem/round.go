package holdem

import (
	"fmt"

	"pokernight-bot/pkg/holdem/action"
)

// Round is the state machine for a single street of betting.
// It owns turn order, bet legality, and the closure condition: the street
// stays open until every contesting player has matched the current bet (or
// is all-in for less) and has acted since the last raise.
type Round struct {
	seats      []*Seat
	bigBlind   int
	currentBet int

	// cursor is the table index the next-to-act search starts from
	cursor int

	// acted tracks who has acted since the last raise
	acted map[int64]bool
}

// NewRound starts a betting street.
// Pre-flop the blinds are already in the seats' street bets, currentBet is
// the big blind, and startIndex is the seat after the big blind; post-flop
// both are zero and startIndex is the seat after the dealer.
func NewRound(seats []*Seat, startIndex, currentBet, bigBlind int) *Round {
	return &Round{
		seats:      seats,
		bigBlind:   bigBlind,
		currentBet: currentBet,
		cursor:     startIndex,
		acted:      make(map[int64]bool),
	}
}

// CurrentBet returns the street's highest committed bet
func (r *Round) CurrentBet() int {
	return r.currentBet
}

// MinRaiseTo returns the smallest legal raise-to total
func (r *Round) MinRaiseTo() int {
	return r.currentBet + r.bigBlind
}

// Contesting returns the number of players still in the hand
func (r *Round) Contesting() int {
	count := 0
	for _, s := range r.seats {
		if !s.folded {
			count++
		}
	}

	return count
}

// CallAmount returns the chips the seat needs to match the current bet,
// capped at the seat's stack
func (r *Round) CallAmount(s *Seat) int {
	need := r.currentBet - s.streetBet
	if need > s.stack {
		need = s.stack
	}

	return need
}

// NextToAct returns the seat whose decision is pending, or nil if the street
// is closed
func (r *Round) NextToAct() *Seat {
	if r.Contesting() < 2 {
		return nil
	}

	n := len(r.seats)
	for i := 0; i < n; i++ {
		seat := r.seats[(r.cursor+i)%n]
		if !seat.canAct() {
			continue
		}

		if seat.streetBet != r.currentBet || !r.acted[seat.PlayerID] {
			return seat
		}
	}

	return nil
}

// Closed returns true once no player has a decision pending
func (r *Round) Closed() bool {
	return r.NextToAct() == nil
}

// LegalActions returns the actions the seat may take right now
func (r *Round) LegalActions(s *Seat) []action.Action {
	actions := make([]action.Action, 0, 4)
	actions = append(actions, action.Fold)

	if s.streetBet == r.currentBet {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if s.streetBet+s.stack > r.currentBet {
		actions = append(actions, action.Raise)
	}

	if s.stack > 0 {
		actions = append(actions, action.AllIn)
	}

	return actions
}

// Apply performs the player's decision.
// Returns the chips committed to the pot by the action. Rejections are
// IllegalActionError values and leave the round untouched so the player can
// be re-prompted.
func (r *Round) Apply(playerID int64, d action.Decision) (int, error) {
	seat := r.NextToAct()
	if seat == nil {
		return 0, ErrRoundOver
	}

	if seat.PlayerID != playerID {
		return 0, ErrNotYourTurn
	}

	committed := 0

	switch d.Action {
	case action.Fold:
		seat.folded = true

	case action.Check:
		if seat.streetBet != r.currentBet {
			return 0, IllegalActionError("you cannot check with an active bet")
		}

		r.acted[playerID] = true

	case action.Call:
		if seat.streetBet >= r.currentBet {
			return 0, IllegalActionError("you cannot call without an active bet")
		}

		// a short stack calls all-in for less; the bar does not move
		committed = seat.commit(r.currentBet - seat.streetBet)
		r.acted[playerID] = true

	case action.Raise:
		if d.Amount < r.MinRaiseTo() {
			return 0, IllegalActionError(fmt.Sprintf("raise must be to at least ${%d}", r.MinRaiseTo()))
		}

		// an oversized raise clamps to all-in rather than being rejected
		committed = seat.commit(d.Amount - seat.streetBet)
		r.settleBar(seat)

	case action.AllIn:
		if seat.stack == 0 {
			return 0, IllegalActionError("you have no chips left")
		}

		committed = seat.commit(seat.stack)
		r.settleBar(seat)

	default:
		return 0, IllegalActionError(fmt.Sprintf("unknown action: %s", d.Action))
	}

	r.cursor = r.indexOf(seat) + 1

	return committed, nil
}

// settleBar decides whether a commitment raised the bar. A raise reopens the
// action: everyone else must act again.
func (r *Round) settleBar(seat *Seat) {
	if seat.streetBet > r.currentBet {
		r.currentBet = seat.streetBet
		r.acted = map[int64]bool{seat.PlayerID: true}
		return
	}

	r.acted[seat.PlayerID] = true
}

func (r *Round) indexOf(seat *Seat) int {
	for i, s := range r.seats {
		if s == seat {
			return i
		}
	}

	panic("seat is not at the table")
}
