package holdem

import "pokernight-bot/pkg/deck"

// Seat is one player's spot at the table.
// Stack is the snapshot of the player's bankroll for the current hand; the
// authoritative balance lives in the bankroll store and is reconciled by the
// table as chips are committed.
type Seat struct {
	PlayerID int64

	stack     int
	holeCards []deck.Card

	streetBet int
	handBet   int
	folded    bool
	allIn     bool
}

// NewSeat returns a seat for the player with the given stack
func NewSeat(playerID int64, stack int) *Seat {
	return &Seat{
		PlayerID: playerID,
		stack:    stack,
	}
}

// Stack returns the chips the player has left to bet this hand
func (s *Seat) Stack() int {
	return s.stack
}

// HoleCards returns the player's two private cards
func (s *Seat) HoleCards() []deck.Card {
	return s.holeCards
}

// StreetBet returns the chips committed on the current street
func (s *Seat) StreetBet() int {
	return s.streetBet
}

// HandBet returns the chips committed across the whole hand
func (s *Seat) HandBet() int {
	return s.handBet
}

// Folded returns true if the player folded out of the hand
func (s *Seat) Folded() bool {
	return s.folded
}

// AllIn returns true if the player has no chips behind
func (s *Seat) AllIn() bool {
	return s.allIn
}

// canAct reports whether the seat can still make decisions this street
func (s *Seat) canAct() bool {
	return !s.folded && !s.allIn && s.stack > 0
}

// commit moves up to amount chips from the stack into the street bet.
// Returns the chips actually committed; committing the whole stack marks
// the seat all-in.
func (s *Seat) commit(amount int) int {
	if amount >= s.stack {
		amount = s.stack
		s.allIn = true
	}

	s.stack -= amount
	s.streetBet += amount
	s.handBet += amount

	return amount
}

// newStreet resets the per-street counter; the hand total carries over
func (s *Seat) newStreet() {
	s.streetBet = 0
}

// newHand resets the seat for the next deal with a fresh stack snapshot
func (s *Seat) newHand(stack int) {
	s.stack = stack
	s.holeCards = nil
	s.streetBet = 0
	s.handBet = 0
	s.folded = false
	s.allIn = false
}
