package holdem

import (
	"context"

	"pokernight-bot/pkg/deck"
	"pokernight-bot/pkg/holdem/action"
)

// ActionRequest is everything a player needs to make a decision
type ActionRequest struct {
	PlayerID     int64           `json:"playerId"`
	LegalActions []action.Action `json:"legalActions"`
	CallAmount   int             `json:"callAmount"`
	MinRaiseTo   int             `json:"minRaiseTo"`
	CurrentBet   int             `json:"currentBet"`
	Pot          int             `json:"pot"`
	Board        []deck.Card     `json:"board"`
}

// TableIO is the channel between the engine and the players.
// The chat layer (Discord messages, buttons, whatever) implements this; the
// engine never sees a transport.
type TableIO interface {
	// Broadcast sends a message to everyone at the table
	Broadcast(message string)

	// RevealPrivately shows cards to a single player
	RevealPrivately(playerID int64, cards []deck.Card, message string)

	// RequestAction solicits a decision from a single player.
	// Implementations must respect ctx and return ErrActionTimeout rather
	// than hang; the engine turns a timeout into a fold.
	RequestAction(ctx context.Context, req ActionRequest) (action.Decision, error)
}
