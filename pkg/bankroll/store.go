// Package bankroll persists per-player chip balances keyed by table and
// player. Balances are created lazily at a configured starting amount and
// never go below zero.
package bankroll

import "context"

// Store is the bankroll collaborator the poker engine talks to.
// Adjust must be atomic per (tableID, playerID): concurrent tables may touch
// different players at once, but the engine itself only ever moves one
// player's chips at a time.
type Store interface {
	// Balance returns the player's balance, creating it at the starting
	// amount if the player has never been seen
	Balance(ctx context.Context, tableID string, playerID int64) (int, error)

	// Adjust applies delta to the player's balance and returns the new
	// balance. The result is clamped at zero; the engine never asks for a
	// larger decrement than the balance, so the clamp is a safety net.
	Adjust(ctx context.Context, tableID string, playerID int64, delta int) (int, error)

	// Lookup returns the player's balance without creating the player.
	// The second return is false if the player has never been seen at the
	// table. Read-only surfaces use this instead of Balance.
	Lookup(ctx context.Context, tableID string, playerID int64) (int, bool, error)
}
