package blackjack

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/lox/blackjack/internal/deck"
)

// BetRequest asks a player for a stake.
type BetRequest struct {
	Seat     int
	Name     string
	Cash     float64
	Stakes   Stakes
	Rejected error // Why the previous answer was refused, nil on the first ask
}

// DecisionRequest asks the acting seat to hit or stand.
type DecisionRequest struct {
	Seat         int
	Name         string
	Hand         []deck.Card
	Total        int
	Soft         bool
	DealerUpCard deck.Card
}

// Agent answers for one seat, human or bot. Calls block until an answer is
// available; a Quit action or ErrQuit ends the game.
type Agent interface {
	Bet(ctx context.Context, req BetRequest) (float64, error)
	Decide(ctx context.Context, req DecisionRequest) (Action, error)
}

// Summary describes a finished game.
type Summary struct {
	GameID  string
	Rounds  int
	Voided  int
	Quit    bool // A seat asked to leave
	Stalled bool // Nobody left could afford a stake above zero
	Seats   []SeatSnapshot
	History []RoundRecord
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithObserver registers an observer for table snapshots.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPayout sets the winnings paid per unit staked. Default is 1 (even money).
func WithPayout(payout float64) EngineOption {
	return func(e *Engine) {
		e.payout = payout
	}
}

// WithMaxRounds stops Run after n rounds. Zero means no limit.
func WithMaxRounds(n int) EngineOption {
	return func(e *Engine) {
		e.maxRounds = n
	}
}

// Engine runs rounds of a Game, asking each seat's Agent for decisions.
type Engine struct {
	game      *Game
	agents    []Agent
	observer  Observer
	logger    *log.Logger
	payout    float64
	maxRounds int
	stage     *fsm.FSM
}

// NewEngine creates an engine for g with one agent per seat, dealer first.
func NewEngine(g *Game, agents []Agent, opts ...EngineOption) (*Engine, error) {
	if g == nil {
		return nil, errors.New("game is required")
	}
	if len(agents) != len(g.Seats) {
		return nil, fmt.Errorf("need one agent per seat: got %d, want %d", len(agents), len(g.Seats))
	}
	for i, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("seat %d has no agent", i)
		}
	}

	e := &Engine{
		game:   g,
		agents: agents,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		payout: DefaultPayout,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.payout < 0 {
		return nil, fmt.Errorf("payout must not be negative, got %.2f", e.payout)
	}
	if e.maxRounds < 0 {
		return nil, fmt.Errorf("max rounds must not be negative, got %d", e.maxRounds)
	}
	e.logger = e.logger.With("game", g.ID)
	e.stage = newStageMachine(e.logger)
	return e, nil
}

// Game returns the game the engine drives.
func (e *Engine) Game() *Game {
	return e.game
}

// Run plays rounds until no player is left, the round limit is reached, the
// table stalls or a seat quits. A quit is not an error; it is reported in the
// summary.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	g := e.game
	summary := &Summary{GameID: g.ID}

	e.logger.Info("game started", "seats", len(g.Seats), "decks", g.Decks(), "stakes", []float64(g.Stakes))

	for g.PlayersRemaining() > 0 {
		if e.maxRounds > 0 && summary.Rounds >= e.maxRounds {
			e.logger.Info("round limit reached", "rounds", summary.Rounds)
			break
		}
		if !g.CanContinue() {
			e.logger.Info("no player can afford a stake, stopping")
			summary.Stalled = true
			break
		}

		rec, err := e.PlayRound(ctx)
		if errors.Is(err, ErrQuit) {
			e.logger.Info("quit requested", "round", g.Round)
			summary.Quit = true
			break
		}
		if err != nil {
			e.fillSummary(summary)
			return summary, err
		}

		summary.Rounds++
		if rec.Voided {
			summary.Voided++
		}
	}

	e.fillSummary(summary)
	e.logger.Info("game finished", "rounds", summary.Rounds, "players_remaining", g.PlayersRemaining())
	return summary, nil
}

func (e *Engine) fillSummary(s *Summary) {
	snap := e.game.Snapshot(EventReset, -1)
	s.Seats = snap.Seats
	s.History = e.game.History()
}

// PlayRound plays a single round: bets, deal, turns, outcome and reset.
// Running out of cards voids the round: bets are refunded, a fresh shoe is
// brought in and the returned record is marked Voided. Any other error
// abandons the round: bets are refunded, hands are cleared and the engine
// goes back to StageIdle, ready for the next round.
func (e *Engine) PlayRound(ctx context.Context) (*RoundRecord, error) {
	rec, err := e.playRound(ctx)
	if err != nil {
		e.abandon()
	}
	return rec, err
}

// abandon undoes an unfinished round. Cards already dealt are not returned
// to the shoe.
func (e *Engine) abandon() {
	refundBets(e.game)
	e.game.ResetRound()
	e.stage.SetState(StageIdle)
}

func (e *Engine) playRound(ctx context.Context) (*RoundRecord, error) {
	g := e.game
	if err := e.transition(eventStart); err != nil {
		return nil, err
	}
	rec := g.beginRound()
	logger := e.logger.With("round", rec.Number)
	e.emit(EventRoundStart, -1)

	if err := e.collectBets(ctx, logger); err != nil {
		return nil, err
	}

	if err := e.transition(eventDeal); err != nil {
		return nil, err
	}
	if err := e.deal(); err != nil {
		if errors.Is(err, deck.ErrEmptyDeck) {
			return e.void(rec, logger, err)
		}
		return nil, err
	}

	if err := e.transition(eventPlay); err != nil {
		return nil, err
	}
	if err := e.playTurns(ctx, logger); err != nil {
		if errors.Is(err, deck.ErrEmptyDeck) {
			return e.void(rec, logger, err)
		}
		return nil, err
	}

	if err := e.transition(eventSettle); err != nil {
		return nil, err
	}
	winners := EvaluateRound(g)
	deltas := Settle(g, winners, e.payout)
	rec.Winners = winners
	snap := g.Snapshot(EventOutcome, -1)
	snap.Winners = winners
	e.observe(snap)

	rec.Retired = g.RetireBankrupt()
	for _, seat := range rec.Retired {
		logger.Info("player retired", "seat", seat, "name", g.Seats[seat].Name)
	}
	g.finishRound(rec, deltas)
	logger.Info("round complete", "winners", winners, "dealer_total", g.Dealer().Total)

	g.ResetRound()
	if err := e.transition(eventReset); err != nil {
		return nil, err
	}
	e.emit(EventReset, -1)
	return rec, nil
}

func (e *Engine) collectBets(ctx context.Context, logger *log.Logger) error {
	g := e.game
	for _, s := range g.Players() {
		if s.Retired {
			continue
		}
		if len(g.Stakes.Affordable(s.Cash)) == 0 {
			s.sitOut()
			logger.Debug("seat cannot afford any stake", "seat", s.Index, "cash", s.Cash)
			e.emit(EventBet, -1)
			continue
		}

		var rejected error
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			amount, err := e.agents[s.Index].Bet(ctx, BetRequest{
				Seat:     s.Index,
				Name:     s.Name,
				Cash:     s.Cash,
				Stakes:   g.Stakes,
				Rejected: rejected,
			})
			if err != nil {
				return fmt.Errorf("bet from %s: %w", s.Name, err)
			}

			err = g.CollectBet(s.Index, amount)
			if errors.Is(err, ErrInvalidBet) {
				logger.Debug("bet rejected", "seat", s.Index, "amount", amount, "error", err)
				rejected = err
				continue
			}
			if err != nil {
				return err
			}
			break
		}

		logger.Debug("bet placed", "seat", s.Index, "amount", s.Bet, "cash", s.Cash)
		e.emit(EventBet, -1)
	}
	return nil
}

// deal gives two cards to every seat still in the round, dealer included.
func (e *Engine) deal() error {
	g := e.game
	for _, s := range g.Seats {
		if !s.Alive {
			continue
		}
		cards, err := g.Deck.Draw(2)
		if err != nil {
			return err
		}
		for _, c := range cards {
			if err := g.AppendCard(s.Index, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) playTurns(ctx context.Context, logger *log.Logger) error {
	g := e.game
	tm := NewTurnMachine(g)
	upCard, _ := g.Dealer().UpCard()
	e.emit(EventDeal, tm.Current())

	for !tm.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		seat := g.Seats[tm.Current()]

		action, err := e.agents[seat.Index].Decide(ctx, DecisionRequest{
			Seat:         seat.Index,
			Name:         seat.Name,
			Hand:         seat.Hand,
			Total:        seat.Total,
			Soft:         seat.IsSoft(),
			DealerUpCard: upCard,
		})
		if err != nil {
			return fmt.Errorf("decision from %s: %w", seat.Name, err)
		}

		if err := tm.Apply(action); err != nil {
			return err
		}
		logger.Debug("seat acted", "seat", seat.Index, "action", action, "total", seat.Total, "state", seat.State)

		acting := tm.Current()
		if tm.Done() {
			acting = -1
		}
		switch {
		case seat.State == Busted:
			e.emit(EventBust, acting)
		case action == Hit:
			e.emit(EventHit, acting)
		default:
			e.emit(EventStand, acting)
		}
	}
	return nil
}

func (e *Engine) void(rec *RoundRecord, logger *log.Logger, cause error) (*RoundRecord, error) {
	g := e.game
	logger.Warn("round voided", "error", cause, "remaining", g.Deck.Remaining())

	if err := e.transition(eventVoid); err != nil {
		return nil, err
	}
	refundBets(g)
	rec.Voided = true
	g.finishRound(rec, nil)
	e.emit(EventVoid, -1)

	g.ResetRound()
	if err := g.Reshuffle(); err != nil {
		return nil, err
	}
	if err := e.transition(eventReset); err != nil {
		return nil, err
	}
	e.emit(EventReset, -1)
	return rec, nil
}

func (e *Engine) emit(event Event, acting int) {
	if e.observer == nil {
		return
	}
	e.observer.Observe(e.game.Snapshot(event, acting))
}

func (e *Engine) observe(s Snapshot) {
	if e.observer != nil {
		e.observer.Observe(s)
	}
}
