// Package simulator plays many seeded bot-only games in parallel and
// aggregates per-seat statistics.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// DefaultMaxRounds caps a simulated game when the table sets no limit.
const DefaultMaxRounds = 500

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Workers int
	Seed    int64
	Table   *config.Config
	Logger  *log.Logger
	Clock   quartz.Clock
}

// SeatReport aggregates one player seat over every game.
type SeatReport struct {
	Name      string
	Agent     string
	Stats     *statistics.Statistics
	Bankrupt  int     // Games in which the seat retired
	FinalCash float64 // Sum of cash at the end of each game
}

// Report is the outcome of a simulation run.
type Report struct {
	Games   int
	Rounds  int
	Voided  int
	Stalled int
	Seed    int64
	Seats   []SeatReport
	Elapsed time.Duration
}

// Simulator runs blackjack game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Table == nil {
		config.Table = defaultTable()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// defaultTable seats two basic bots and a random bot.
func defaultTable() *config.Config {
	c := config.DefaultConfig()
	c.Players = []config.PlayerConfig{
		{Name: "Basic 1", Agent: agent.KindBasic, Cash: c.Table.StartingCash},
		{Name: "Basic 2", Agent: agent.KindBasic, Cash: c.Table.StartingCash, Stake: 10},
		{Name: "Random", Agent: agent.KindRandom, Cash: c.Table.StartingCash},
	}
	return c
}

// Run plays every game and returns the aggregated report. Games are
// independent, so the report for a seed does not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if err := s.config.Table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}

	start := s.config.Clock.Now()
	summaries := make([]*blackjack.Summary, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Games {
		g.Go(func() error {
			summary, err := s.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := s.aggregate(summaries)
	report.Elapsed = s.config.Clock.Since(start)

	for i := range report.Seats {
		if report.Seats[i].Stats.Rounds == 0 {
			continue
		}
		if err := report.Seats[i].Stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed for %s: %w", report.Seats[i].Name, err)
		}
	}
	return report, nil
}

// playGame plays game i to completion on its own RNG stream.
func (s *Simulator) playGame(ctx context.Context, i int) (*blackjack.Summary, error) {
	table := s.config.Table
	seed := randutil.Derive(s.config.Seed, i)

	opts := append(table.GameOptions(), blackjack.WithClock(s.config.Clock))
	game, err := blackjack.NewGame(randutil.New(seed), table.Seats(), opts...)
	if err != nil {
		return nil, err
	}

	agents, err := s.agents(seed)
	if err != nil {
		return nil, err
	}

	maxRounds := table.Table.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}
	engineOpts := append(table.EngineOptions(),
		blackjack.WithLogger(s.config.Logger),
		blackjack.WithMaxRounds(maxRounds),
	)
	engine, err := blackjack.NewEngine(game, agents, engineOpts...)
	if err != nil {
		return nil, err
	}

	summary, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}
	s.config.Logger.Debug("game complete", "game", i+1, "seed", seed, "rounds", summary.Rounds)
	return summary, nil
}

// agents builds the seat agents for one game. Humans are replaced by the
// basic bot and a manual dealer by the house rule, since nobody is at the
// keyboard.
func (s *Simulator) agents(seed int64) ([]blackjack.Agent, error) {
	table := s.config.Table
	agents := make([]blackjack.Agent, 0, table.Seats())
	agents = append(agents, agent.Rule{StandOn: table.Dealer.StandOn, HitSoft17: table.Dealer.HitSoft17})

	for j, p := range table.Players {
		kind := p.Agent
		if kind == agent.KindHuman {
			kind = agent.KindBasic
		}
		rng := randutil.New(randutil.Derive(seed, j+1))
		a, err := agent.New(kind, p.Stake, rng, nil, s.config.Logger)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		agents = append(agents, a)
	}
	return agents, nil
}

func (s *Simulator) aggregate(summaries []*blackjack.Summary) *Report {
	table := s.config.Table
	report := &Report{
		Games: len(summaries),
		Seed:  s.config.Seed,
		Seats: make([]SeatReport, len(table.Players)),
	}
	for j, p := range table.Players {
		report.Seats[j] = SeatReport{
			Name:  p.Name,
			Agent: p.Agent,
			Stats: &statistics.Statistics{},
		}
	}

	for _, summary := range summaries {
		report.Rounds += summary.Rounds
		report.Voided += summary.Voided
		if summary.Stalled {
			report.Stalled++
		}

		for _, rec := range summary.History {
			if rec.Voided {
				continue
			}
			for _, res := range rec.Seats[1:] {
				if res.Bet == 0 && !res.Folded {
					continue // retired before the round
				}
				report.Seats[res.Index-1].Stats.Add(statistics.RoundResult{
					Net:    res.Delta,
					Bet:    res.Bet,
					Won:    rec.Won(res.Index),
					Folded: res.Folded,
					Busted: res.Busted,
				})
			}
		}

		for _, seat := range summary.Seats[1:] {
			sr := &report.Seats[seat.Index-1]
			sr.FinalCash += seat.Cash
			if seat.Retired {
				sr.Bankrupt++
			}
		}
	}
	return report
}
