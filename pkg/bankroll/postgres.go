package bankroll

import (
	"context"
	"database/sql"
)

// Postgres is a Store backed by the bankrolls table
type Postgres struct {
	db              *sql.DB
	startingBalance int
}

// NewPostgres returns a Postgres-backed store
func NewPostgres(db *sql.DB, startingBalance int) *Postgres {
	return &Postgres{
		db:              db,
		startingBalance: startingBalance,
	}
}

// Balance returns the player's balance, inserting the starting balance if the
// player has never been seen at this table
func (s *Postgres) Balance(ctx context.Context, tableID string, playerID int64) (int, error) {
	const query = `
INSERT INTO bankrolls (table_id, player_id, balance)
VALUES ($1, $2, $3)
ON CONFLICT (table_id, player_id) DO UPDATE
SET balance = bankrolls.balance
RETURNING balance`

	var balance int
	row := s.db.QueryRowContext(ctx, query, tableID, playerID, s.startingBalance)
	if err := row.Scan(&balance); err != nil {
		return 0, err
	}

	return balance, nil
}

// Lookup returns the player's balance without creating the player
func (s *Postgres) Lookup(ctx context.Context, tableID string, playerID int64) (int, bool, error) {
	const query = `SELECT balance FROM bankrolls WHERE table_id = $1 AND player_id = $2`

	var balance int
	row := s.db.QueryRowContext(ctx, query, tableID, playerID)
	if err := row.Scan(&balance); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}

		return 0, false, err
	}

	return balance, true, nil
}

// Adjust atomically applies delta to the player's balance in a single
// statement, clamping the result at zero
func (s *Postgres) Adjust(ctx context.Context, tableID string, playerID int64, delta int) (int, error) {
	const query = `
INSERT INTO bankrolls (table_id, player_id, balance)
VALUES ($1, $2, GREATEST(0, $3 + $4))
ON CONFLICT (table_id, player_id) DO UPDATE
SET balance = GREATEST(0, bankrolls.balance + $4),
    updated = (NOW() AT TIME ZONE 'utc')
RETURNING balance`

	var balance int
	row := s.db.QueryRowContext(ctx, query, tableID, playerID, s.startingBalance, delta)
	if err := row.Scan(&balance); err != nil {
		return 0, err
	}

	return balance, nil
}
