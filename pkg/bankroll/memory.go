package bankroll

import (
	"context"
	"sync"
)

type key struct {
	tableID  string
	playerID int64
}

// InMemory is a Store kept in process memory.
// Used by tests and the local console table; the server uses Postgres.
type InMemory struct {
	mu              sync.Mutex
	startingBalance int
	balances        map[key]int
}

// NewInMemory returns an empty in-memory store
func NewInMemory(startingBalance int) *InMemory {
	return &InMemory{
		startingBalance: startingBalance,
		balances:        make(map[key]int),
	}
}

// Balance returns the player's balance, creating it if absent
func (s *InMemory) Balance(_ context.Context, tableID string, playerID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balance(key{tableID, playerID}), nil
}

// Adjust applies delta to the player's balance, clamped at zero
func (s *InMemory) Adjust(_ context.Context, tableID string, playerID int64, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{tableID, playerID}
	balance := s.balance(k) + delta
	if balance < 0 {
		balance = 0
	}

	s.balances[k] = balance
	return balance, nil
}

// Lookup returns the player's balance without creating the player
func (s *InMemory) Lookup(_ context.Context, tableID string, playerID int64) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.balances[key{tableID, playerID}]
	return balance, ok, nil
}

func (s *InMemory) balance(k key) int {
	balance, ok := s.balances[k]
	if !ok {
		balance = s.startingBalance
		s.balances[k] = balance
	}

	return balance
}
