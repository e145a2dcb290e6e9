// Command localtable runs a hot-seat poker session in the terminal.
// It is a full TableIO implementation over pterm prompts, backed by an
// in-memory bankroll, and is handy for exercising the engine end to end
// without a chat platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"pokernight-bot/internal/config"
	"pokernight-bot/internal/rng"
	"pokernight-bot/pkg/bankroll"
	"pokernight-bot/pkg/deck"
	"pokernight-bot/pkg/holdem"
	"pokernight-bot/pkg/holdem/action"
)

var players = flag.Int("players", 3, "number of hot-seat players")

func main() {
	flag.Parse()

	if *players < 2 {
		logrus.Fatal("need at least two players")
	}

	cfg := config.Instance()

	ids := make([]int64, *players)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	opts := holdem.DefaultOptions()
	opts.SmallBlind = cfg.SmallBlind
	opts.BigBlind = cfg.BigBlind
	opts.DecisionTimeout = cfg.DecisionTimeout()

	table, err := holdem.NewTable(
		logrus.StandardLogger(),
		"localtable",
		ids,
		newConsoleIO(),
		deck.NewInMemoryService(rng.Crypto{}),
		bankroll.NewInMemory(cfg.StartingBalance),
		opts,
	)
	if err != nil {
		logrus.WithError(err).Fatal("could not create table")
	}

	if err := table.Run(context.Background()); err != nil {
		logrus.WithError(err).Fatal("session ended with an error")
	}
}

type promptResult struct {
	decision action.Decision
	err      error
}

// consoleIO plays every seat from the same terminal.
// A single worker goroutine owns the prompts, so an abandoned prompt can
// never pile up behind another; a timed-out prompt's eventual answer is
// drained and discarded rather than fed to the next turn.
type consoleIO struct {
	prompt   func(req holdem.ActionRequest) (action.Decision, error)
	requests chan holdem.ActionRequest
	results  chan promptResult
}

func newConsoleIO() *consoleIO {
	c := &consoleIO{
		requests: make(chan holdem.ActionRequest),
		results:  make(chan promptResult),
	}
	c.prompt = c.terminalPrompt

	go c.promptLoop()
	return c
}

func (c *consoleIO) promptLoop() {
	for req := range c.requests {
		decision, err := c.prompt(req)
		c.results <- promptResult{decision: decision, err: err}
	}
}

func (c *consoleIO) Broadcast(message string) {
	pterm.Info.Println(message)
}

func (c *consoleIO) RevealPrivately(playerID int64, cards []deck.Card, message string) {
	pterm.DefaultBox.
		WithTitle(fmt.Sprintf("Player %d", playerID)).
		Println(fmt.Sprintf("%s: %s", message, deck.CardsToString(cards)))
}

func (c *consoleIO) RequestAction(ctx context.Context, req holdem.ActionRequest) (action.Decision, error) {
	select {
	case c.requests <- req:
	case <-ctx.Done():
		return action.Decision{}, holdem.ErrActionTimeout
	}

	select {
	case res := <-c.results:
		return res.decision, res.err
	case <-ctx.Done():
		// the worker is still blocked on the stale prompt; discard its
		// answer so the next request starts fresh
		go func() { <-c.results }()
		return action.Decision{}, holdem.ErrActionTimeout
	}
}

func (c *consoleIO) terminalPrompt(req holdem.ActionRequest) (action.Decision, error) {
	options := make([]string, len(req.LegalActions))
	for i, a := range req.LegalActions {
		options[i] = string(a)
	}

	prompt := fmt.Sprintf("Player %d to act (pot ${%d}, bet ${%d}, ${%d} to call)",
		req.PlayerID, req.Pot, req.CurrentBet, req.CallAmount)

	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(prompt).
		Show()
	if err != nil {
		return action.Decision{}, err
	}

	chosen, err := action.FromString(selected)
	if err != nil {
		return action.Decision{}, err
	}

	decision := action.Decision{Action: chosen}
	if chosen == action.Raise {
		input, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Raise to (min ${%d})", req.MinRaiseTo)).
			Show()
		if err != nil {
			return action.Decision{}, err
		}

		amount, err := strconv.Atoi(input)
		if err != nil {
			amount = req.MinRaiseTo
		}

		decision.Amount = amount
	}

	return decision, nil
}
