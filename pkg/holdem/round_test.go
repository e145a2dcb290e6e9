package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokernight-bot/pkg/holdem/action"
)

func newTestSeats(stacks ...int) []*Seat {
	seats := make([]*Seat, len(stacks))
	for i, stack := range stacks {
		seats[i] = NewSeat(int64(i+1), stack)
	}

	return seats
}

func TestRound_checkAround(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 1000, 1000)
	round := NewRound(seats, 0, 0, 20)

	for _, id := range []int64{1, 2, 3} {
		a.False(round.Closed())
		a.Equal(id, round.NextToAct().PlayerID)

		committed, err := round.Apply(id, action.Decision{Action: action.Check})
		a.NoError(err)
		a.Equal(0, committed)
	}

	a.True(round.Closed())

	_, err := round.Apply(1, action.Decision{Action: action.Check})
	a.ErrorIs(err, ErrRoundOver)
}

func TestRound_raiseReopensAction(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 1000, 1000)
	round := NewRound(seats, 0, 0, 20)

	committed, err := round.Apply(1, action.Decision{Action: action.Raise, Amount: 40})
	a.NoError(err)
	a.Equal(40, committed)
	a.Equal(40, round.CurrentBet())
	a.Equal(60, round.MinRaiseTo())

	committed, err = round.Apply(2, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(40, committed)
	a.False(round.Closed())

	// the re-raise puts everyone back on the clock
	committed, err = round.Apply(3, action.Decision{Action: action.Raise, Amount: 100})
	a.NoError(err)
	a.Equal(100, committed)
	a.Equal(100, round.CurrentBet())
	a.Equal(int64(1), round.NextToAct().PlayerID)

	committed, err = round.Apply(1, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(60, committed)
	a.False(round.Closed())

	committed, err = round.Apply(2, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(60, committed)
	a.True(round.Closed())
}

func TestRound_bigBlindOption(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 1000, 1000)
	seats[1].commit(10) // small blind
	seats[2].commit(20) // big blind

	round := NewRound(seats, 0, 20, 20)

	committed, err := round.Apply(1, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(20, committed)

	committed, err = round.Apply(2, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(10, committed)

	// the big blind already matches the bet but has not acted yet
	a.False(round.Closed())
	a.Equal(int64(3), round.NextToAct().PlayerID)

	committed, err = round.Apply(3, action.Decision{Action: action.Raise, Amount: 60})
	a.NoError(err)
	a.Equal(40, committed)

	// and the raise puts the other two back on the clock
	a.Equal(int64(1), round.NextToAct().PlayerID)
}

func TestRound_allInForLessDoesNotMoveTheBar(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 30, 1000)
	round := NewRound(seats, 0, 0, 20)

	_, err := round.Apply(1, action.Decision{Action: action.Raise, Amount: 40})
	a.NoError(err)

	committed, err := round.Apply(2, action.Decision{Action: action.AllIn})
	a.NoError(err)
	a.Equal(30, committed)
	a.True(seats[1].AllIn())
	a.Equal(40, round.CurrentBet(), "a short all-in must not reopen the action")

	committed, err = round.Apply(3, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(40, committed)
	a.True(round.Closed())
}

func TestRound_shortStackCallsAllInForLess(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 25, 1000)
	round := NewRound(seats, 0, 0, 20)

	_, err := round.Apply(1, action.Decision{Action: action.Raise, Amount: 40})
	a.NoError(err)

	a.Equal(25, round.CallAmount(seats[1]), "call amount is capped at the stack")

	committed, err := round.Apply(2, action.Decision{Action: action.Call})
	a.NoError(err)
	a.Equal(25, committed)
	a.True(seats[1].AllIn())
	a.Equal(40, round.CurrentBet())
}

func TestRound_oversizedRaiseClampsToAllIn(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(100, 1000)
	round := NewRound(seats, 0, 0, 20)

	committed, err := round.Apply(1, action.Decision{Action: action.Raise, Amount: 5000})
	a.NoError(err)
	a.Equal(100, committed)
	a.True(seats[0].AllIn())
	a.Equal(100, round.CurrentBet())
}

func TestRound_rejections(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 1000, 1000)
	round := NewRound(seats, 0, 0, 20)

	_, err := round.Apply(2, action.Decision{Action: action.Check})
	a.ErrorIs(err, ErrNotYourTurn)

	_, err = round.Apply(1, action.Decision{Action: action.Call})
	a.ErrorIs(err, IllegalActionError("you cannot call without an active bet"))

	_, err = round.Apply(1, action.Decision{Action: action.Raise, Amount: 10})
	a.ErrorIs(err, IllegalActionError("raise must be to at least ${20}"))

	_, err = round.Apply(1, action.Decision{Action: action.Raise, Amount: 40})
	a.NoError(err)

	_, err = round.Apply(2, action.Decision{Action: action.Check})
	a.ErrorIs(err, IllegalActionError("you cannot check with an active bet"))

	// rejections leave the round untouched
	a.Equal(int64(2), round.NextToAct().PlayerID)
	a.Equal(40, round.CurrentBet())
	a.Equal(0, seats[1].StreetBet())
}

func TestRound_foldsEndTheRound(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 1000, 1000)
	round := NewRound(seats, 0, 0, 20)

	_, err := round.Apply(1, action.Decision{Action: action.Fold})
	a.NoError(err)
	a.Equal(2, round.Contesting())
	a.False(round.Closed())

	_, err = round.Apply(2, action.Decision{Action: action.Fold})
	a.NoError(err)
	a.Equal(1, round.Contesting())
	a.True(round.Closed(), "one player left means no decisions are pending")
}

func TestRound_LegalActions(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(1000, 15, 1000)
	round := NewRound(seats, 0, 0, 20)

	a.Equal([]action.Action{action.Fold, action.Check, action.Raise, action.AllIn},
		round.LegalActions(seats[0]))

	_, err := round.Apply(1, action.Decision{Action: action.Raise, Amount: 40})
	a.NoError(err)

	// a stack too short to raise can only fold, call, or shove
	a.Equal([]action.Action{action.Fold, action.Call, action.AllIn},
		round.LegalActions(seats[1]))

	a.Equal([]action.Action{action.Fold, action.Call, action.Raise, action.AllIn},
		round.LegalActions(seats[2]))
}
