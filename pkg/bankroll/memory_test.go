package bankroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemory_Balance(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	s := NewInMemory(1000)

	// first sight of a player creates them with the starting balance
	balance, err := s.Balance(ctx, "table-1", 1)
	a.NoError(err)
	a.Equal(1000, balance)

	// balances are scoped per table
	_, err = s.Adjust(ctx, "table-1", 1, -100)
	a.NoError(err)

	balance, err = s.Balance(ctx, "table-2", 1)
	a.NoError(err)
	a.Equal(1000, balance)

	balance, err = s.Balance(ctx, "table-1", 1)
	a.NoError(err)
	a.Equal(900, balance)
}

func TestInMemory_Adjust(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	s := NewInMemory(50)

	balance, err := s.Adjust(ctx, "table-1", 1, 25)
	a.NoError(err)
	a.Equal(75, balance)

	// debits clamp at zero instead of going negative
	balance, err = s.Adjust(ctx, "table-1", 1, -200)
	a.NoError(err)
	a.Equal(0, balance)

	balance, err = s.Adjust(ctx, "table-1", 1, 10)
	a.NoError(err)
	a.Equal(10, balance)
}

func TestInMemory_Lookup(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	s := NewInMemory(1000)

	// unlike Balance, Lookup does not create the player
	_, ok, err := s.Lookup(ctx, "table-1", 1)
	a.NoError(err)
	a.False(ok)

	_, err = s.Balance(ctx, "table-1", 1)
	a.NoError(err)

	balance, ok, err := s.Lookup(ctx, "table-1", 1)
	a.NoError(err)
	a.True(ok)
	a.Equal(1000, balance)
}
