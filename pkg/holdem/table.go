package holdem

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"pokernight-bot/pkg/bankroll"
	"pokernight-bot/pkg/deck"
	"pokernight-bot/pkg/holdem/action"
	"pokernight-bot/pkg/poker"
)

// maxAttempts is how many rejected actions a player gets before being folded
const maxAttempts = 3

// Table is one poker table: a seating order, a dealer button, and the state
// of the hand in progress. Each table instance is independent; running many
// tables means instantiating many tables.
type Table struct {
	id      string
	options Options
	logger  logrus.FieldLogger

	io    TableIO
	decks deck.Service
	bank  bankroll.Store

	players     []int64
	dealerIndex int

	// per-hand state
	seats  []*Seat
	board  []deck.Card
	pot    int
	handle deck.Handle

	// debits is what each player has actually been charged this hand; an
	// abort refunds these, never the seats' commitments, so a failed debit
	// cannot mint chips
	debits map[int64]int
}

// NewTable seats the given players at a new table.
// The table ID keys bankroll lookups (for the bot that is guild+channel);
// players are in seating order and there must be at least two.
func NewTable(logger logrus.FieldLogger, id string, players []int64, io TableIO, decks deck.Service, bank bankroll.Store, opts Options) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, errors.New("there must be at least two players")
	}

	seen := make(map[int64]bool, len(players))
	for _, id := range players {
		if seen[id] {
			return nil, fmt.Errorf("player %d is seated twice", id)
		}
		seen[id] = true
	}

	roster := make([]int64, len(players))
	copy(roster, players)

	return &Table{
		id:      id,
		options: opts,
		logger:  logger.WithField("table", id),
		io:      io,
		decks:   decks,
		bank:    bank,
		players: roster,
	}, nil
}

// Pot returns the chips wagered in the current hand
func (t *Table) Pot() int {
	return t.pot
}

// Board returns the community cards revealed so far
func (t *Table) Board() []deck.Card {
	return t.board
}

// Seats returns the seats of the hand in progress
func (t *Table) Seats() []*Seat {
	return t.seats
}

// Run plays hands until fewer than two players can afford the next one or
// the context is cancelled, then reports final standings.
func (t *Table) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		funded, err := t.fundedPlayers(ctx)
		if err != nil {
			return err
		}

		if len(funded) < 2 {
			break
		}

		if err := t.PlayHand(ctx, funded); err != nil {
			t.reportStandings(ctx)
			return err
		}

		t.dealerIndex++
	}

	t.reportStandings(ctx)
	return nil
}

// fundedPlayers returns the roster members who can still post a bet,
// preserving seating order
func (t *Table) fundedPlayers(ctx context.Context) ([]int64, error) {
	funded := make([]int64, 0, len(t.players))
	for _, id := range t.players {
		balance, err := t.bank.Balance(ctx, t.id, id)
		if err != nil {
			return nil, err
		}

		if balance > 0 {
			funded = append(funded, id)
		}
	}

	return funded, nil
}

// PlayHand deals and plays a single hand among the given players.
// A cancelled context or an internal failure aborts the hand: every chip
// debited this hand is refunded and an error wrapping ErrHandAborted is
// returned.
func (t *Table) PlayHand(ctx context.Context, playerIDs []int64) error {
	n := len(playerIDs)
	dealer := t.dealerIndex % n

	seats := make([]*Seat, n)
	for i, id := range playerIDs {
		balance, err := t.bank.Balance(ctx, t.id, id)
		if err != nil {
			return err
		}

		seats[i] = NewSeat(id, balance)
	}

	t.seats = seats
	t.board = nil
	t.pot = 0
	t.debits = make(map[int64]int, n)
	t.handle = t.decks.NewShuffledDeck()
	defer t.decks.Release(t.handle)

	sb := seats[(dealer+1)%n]
	bb := seats[(dealer+2)%n]

	t.logger.WithFields(logrus.Fields{
		"dealer":     seats[dealer].PlayerID,
		"smallBlind": sb.PlayerID,
		"bigBlind":   bb.PlayerID,
	}).Info("new hand")

	t.io.Broadcast(fmt.Sprintf("New hand. Dealer: %d. Small blind: %d (${%d}). Big blind: %d (${%d}).",
		seats[dealer].PlayerID, sb.PlayerID, t.options.SmallBlind, bb.PlayerID, t.options.BigBlind))

	if err := t.postBlind(ctx, sb, t.options.SmallBlind); err != nil {
		return t.abortHand(ctx, err)
	}

	if err := t.postBlind(ctx, bb, t.options.BigBlind); err != nil {
		return t.abortHand(ctx, err)
	}

	if err := t.dealHoleCards(ctx, dealer); err != nil {
		return t.abortHand(ctx, err)
	}

	// pre-flop: action starts left of the big blind, bar starts at the big
	// blind even if a short-stacked blind posted less
	round := NewRound(seats, (dealer+3)%n, t.options.BigBlind, t.options.BigBlind)
	if err := t.runBettingRound(ctx, round, StreetPreFlop); err != nil {
		return err
	}

	if t.contesting() < 2 {
		return t.awardUncontested(ctx)
	}

	streets := []struct {
		street Street
		count  int
	}{
		{StreetFlop, 3},
		{StreetTurn, 1},
		{StreetRiver, 1},
	}

	for _, s := range streets {
		if err := t.dealCommunity(ctx, s.street, s.count); err != nil {
			return t.abortHand(ctx, err)
		}

		round = NewRound(seats, (dealer+1)%n, 0, t.options.BigBlind)
		if err := t.runBettingRound(ctx, round, s.street); err != nil {
			return err
		}

		if t.contesting() < 2 {
			return t.awardUncontested(ctx)
		}
	}

	return t.showdown(ctx, dealer)
}

// postBlind charges a forced bet. A stack shorter than the blind posts
// all-in for less.
func (t *Table) postBlind(ctx context.Context, seat *Seat, amount int) error {
	committed := seat.commit(amount)
	if _, err := t.bank.Adjust(ctx, t.id, seat.PlayerID, -committed); err != nil {
		return err
	}

	t.debits[seat.PlayerID] += committed
	t.pot += committed
	return nil
}

// dealHoleCards deals two cards to every seat, one at a time around the
// table starting left of the dealer, then reveals them privately
func (t *Table) dealHoleCards(ctx context.Context, dealer int) error {
	n := len(t.seats)
	for i := 0; i < 2; i++ {
		for j := 1; j <= n; j++ {
			seat := t.seats[(dealer+j)%n]
			cards, err := t.decks.Draw(t.handle, 1)
			if err != nil {
				return err
			}

			seat.holeCards = append(seat.holeCards, cards[0])
		}
	}

	for _, seat := range t.seats {
		t.io.RevealPrivately(seat.PlayerID, seat.holeCards, "Your hole cards")
	}

	return nil
}

// dealCommunity burns one card and reveals count cards onto the board
func (t *Table) dealCommunity(ctx context.Context, street Street, count int) error {
	if _, err := t.decks.Draw(t.handle, 1); err != nil {
		return err
	}

	cards, err := t.decks.Draw(t.handle, count)
	if err != nil {
		return err
	}

	t.board = append(t.board, cards...)
	t.io.Broadcast(fmt.Sprintf("The %s: %s (pot ${%d})", street, deck.CardsToString(t.board), t.pot))
	return nil
}

// runBettingRound plays one street to closure
func (t *Table) runBettingRound(ctx context.Context, round *Round, street Street) error {
	for {
		seat := round.NextToAct()
		if seat == nil {
			break
		}

		if err := t.takeTurn(ctx, round, seat); err != nil {
			return t.abortHand(ctx, err)
		}
	}

	for _, seat := range t.seats {
		seat.newStreet()
	}

	t.logger.WithFields(logrus.Fields{
		"street": street.String(),
		"pot":    t.pot,
	}).Debug("betting round closed")

	return nil
}

// takeTurn solicits and applies one decision for the seat.
// Timeouts fold; illegal actions are rejected and re-prompted a bounded
// number of times, then folded.
func (t *Table) takeTurn(ctx context.Context, round *Round, seat *Seat) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req := ActionRequest{
			PlayerID:     seat.PlayerID,
			LegalActions: round.LegalActions(seat),
			CallAmount:   round.CallAmount(seat),
			MinRaiseTo:   round.MinRaiseTo(),
			CurrentBet:   round.CurrentBet(),
			Pot:          t.pot,
			Board:        t.board,
		}

		decision, err := t.request(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if errors.Is(err, ErrActionTimeout) || errors.Is(err, context.DeadlineExceeded) {
				t.io.Broadcast(fmt.Sprintf("%d timed out and folds.", seat.PlayerID))
				decision = action.Decision{Action: action.Fold}
			} else {
				return err
			}
		}

		committed, err := round.Apply(seat.PlayerID, decision)
		if err != nil {
			var illegal IllegalActionError
			if errors.As(err, &illegal) {
				t.io.Broadcast(fmt.Sprintf("%d: %s", seat.PlayerID, illegal.Error()))
				continue
			}

			return err
		}

		return t.settleAction(ctx, seat, decision, committed)
	}

	// out of attempts: fold them and move on
	if _, err := round.Apply(seat.PlayerID, action.Decision{Action: action.Fold}); err != nil {
		return err
	}

	t.io.Broadcast(fmt.Sprintf("%d could not choose a legal action and folds.", seat.PlayerID))
	return nil
}

// request asks the player for a decision under the table's decision timeout
func (t *Table) request(ctx context.Context, req ActionRequest) (action.Decision, error) {
	dctx, cancel := context.WithTimeout(ctx, t.options.DecisionTimeout)
	defer cancel()

	return t.io.RequestAction(dctx, req)
}

// settleAction moves committed chips from the bankroll into the pot and
// announces the action
func (t *Table) settleAction(ctx context.Context, seat *Seat, decision action.Decision, committed int) error {
	if committed > 0 {
		if _, err := t.bank.Adjust(ctx, t.id, seat.PlayerID, -committed); err != nil {
			return err
		}

		t.debits[seat.PlayerID] += committed
		t.pot += committed
	}

	amount := committed
	if decision.Action == action.Raise || decision.Action == action.AllIn {
		amount = seat.StreetBet()
	}

	t.io.Broadcast(fmt.Sprintf("%d %s", seat.PlayerID, decision.Action.LogMessage(amount)))
	return nil
}

func (t *Table) contesting() int {
	count := 0
	for _, seat := range t.seats {
		if !seat.Folded() {
			count++
		}
	}

	return count
}

// awardUncontested pays the whole pot to the one player left standing.
// No cards are revealed and no hands compared.
func (t *Table) awardUncontested(ctx context.Context) error {
	for _, seat := range t.seats {
		if seat.Folded() {
			continue
		}

		if _, err := t.bank.Adjust(ctx, t.id, seat.PlayerID, t.pot); err != nil {
			return err
		}

		t.io.Broadcast(fmt.Sprintf("%d wins ${%d} (everyone else folded).", seat.PlayerID, t.pot))
		t.logger.WithFields(logrus.Fields{
			"winner": seat.PlayerID,
			"pot":    t.pot,
		}).Info("uncontested win")

		t.pot = 0
		return nil
	}

	return errors.New("no contesting player to award the pot to")
}

// showdown compares the remaining hands and splits the pot among the winners
func (t *Table) showdown(ctx context.Context, dealer int) error {
	holes := make(map[int64][]deck.Card)
	for _, seat := range t.seats {
		if !seat.Folded() {
			holes[seat.PlayerID] = seat.HoleCards()
		}
	}

	winners, ranks := poker.CompareHands(holes, t.board)

	t.io.Broadcast(fmt.Sprintf("Showdown. Board: %s", deck.CardsToString(t.board)))
	for _, seat := range t.seats {
		if seat.Folded() {
			continue
		}

		rank := ranks[seat.PlayerID]
		t.io.Broadcast(fmt.Sprintf("%d shows %s: %s", seat.PlayerID, deck.CardsToString(seat.HoleCards()), rank.Describe()))
	}

	return t.awardPot(ctx, winners, dealer)
}

// awardPot splits the pot evenly among the winners. Chips that do not divide
// evenly are handed out one each to the winners closest to the dealer's
// left, so no currency is ever dropped.
func (t *Table) awardPot(ctx context.Context, winners []int64, dealer int) error {
	ordered := t.orderFromDealer(winners, dealer)

	share := t.pot / len(ordered)
	remainder := t.pot % len(ordered)

	for i, id := range ordered {
		amount := share
		if i < remainder {
			amount++
		}

		if _, err := t.bank.Adjust(ctx, t.id, id, amount); err != nil {
			return err
		}

		t.io.Broadcast(fmt.Sprintf("%d wins ${%d}.", id, amount))
		t.logger.WithFields(logrus.Fields{
			"winner": id,
			"amount": amount,
		}).Info("pot awarded")
	}

	t.pot = 0
	return nil
}

// orderFromDealer sorts the given player IDs by seat position starting left
// of the dealer
func (t *Table) orderFromDealer(ids []int64, dealer int) []int64 {
	position := make(map[int64]int, len(t.seats))
	n := len(t.seats)
	for i, seat := range t.seats {
		position[seat.PlayerID] = ((i - dealer - 1) + 2*n) % n
	}

	ordered := make([]int64, len(ids))
	copy(ordered, ids)
	sort.Slice(ordered, func(i, j int) bool {
		return position[ordered[i]] < position[ordered[j]]
	})

	return ordered
}

// abortHand tears the hand down without a winner: every chip debited this
// hand goes back to its contributor and the pot is voided
func (t *Table) abortHand(ctx context.Context, cause error) error {
	refundCtx := ctx
	if refundCtx.Err() != nil {
		// still refund when the caller's context is already cancelled
		refundCtx = context.Background()
	}

	for _, seat := range t.seats {
		debited := t.debits[seat.PlayerID]
		if debited == 0 {
			continue
		}

		if _, err := t.bank.Adjust(refundCtx, t.id, seat.PlayerID, debited); err != nil {
			t.logger.WithError(err).WithField("player", seat.PlayerID).Error("could not refund contribution")
		}
	}

	t.pot = 0
	t.io.Broadcast("Hand aborted. All bets have been returned.")
	t.logger.WithError(cause).Warn("hand aborted")

	return fmt.Errorf("%w: %v", ErrHandAborted, cause)
}

// reportStandings broadcasts final balances, best first
func (t *Table) reportStandings(ctx context.Context) {
	type standing struct {
		playerID int64
		balance  int
	}

	standings := make([]standing, 0, len(t.players))
	for _, id := range t.players {
		balance, err := t.bank.Balance(ctx, t.id, id)
		if err != nil {
			t.logger.WithError(err).WithField("player", id).Error("could not load balance for standings")
			continue
		}

		standings = append(standings, standing{playerID: id, balance: balance})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].balance > standings[j].balance
	})

	t.io.Broadcast("Final standings:")
	for i, s := range standings {
		t.io.Broadcast(fmt.Sprintf("%d. %d: ${%d}", i+1, s.playerID, s.balance))
	}
}
