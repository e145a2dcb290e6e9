package holdem

import (
	"errors"
	"time"
)

// Options configures a table
type Options struct {
	SmallBlind      int
	BigBlind        int
	DecisionTimeout time.Duration
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		SmallBlind:      10,
		BigBlind:        20,
		DecisionTimeout: 45 * time.Second,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be at least the small blind")
	}

	if opts.DecisionTimeout <= 0 {
		return errors.New("decision timeout must be greater than zero")
	}

	return nil
}
