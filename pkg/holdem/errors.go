package holdem

import "errors"

// IllegalActionError is a rejection of a player's requested action.
// These are recoverable: the table reports them back so the player can
// choose again, rather than ending the hand.
type IllegalActionError string

func (e IllegalActionError) Error() string {
	return string(e)
}

// ErrNotYourTurn is an error when a player acts out of turn
var ErrNotYourTurn = IllegalActionError("it is not your turn")

// ErrRoundOver is an error when an action is attempted after the street closed
var ErrRoundOver = errors.New("betting round is over")

// ErrHandAborted is an error when a hand is torn down before completing.
// All per-hand contributions are refunded before this is returned.
var ErrHandAborted = errors.New("hand aborted")

// ErrActionTimeout is the sentinel a TableIO implementation must return when
// a player does not respond in time. The engine treats it as a fold.
var ErrActionTimeout = errors.New("action timed out")
