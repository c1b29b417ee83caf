package agent

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/blackjack"
)

// Agent kinds accepted by New.
const (
	KindHuman  = "human"
	KindBasic  = "basic"
	KindRandom = "random"
)

// Dealer policies accepted by NewDealer.
const (
	DealerRule   = "rule"
	DealerManual = "manual"
)

// DefaultStandOn is the total the dealer rule stands on.
const DefaultStandOn = 17

// Rule plays the dealer by a fixed house rule: draw below StandOn, and on a
// soft 17 as well when HitSoft17 is set.
type Rule struct {
	StandOn   int
	HitSoft17 bool
}

// Bet is never asked of the dealer; it folds for completeness.
func (Rule) Bet(context.Context, blackjack.BetRequest) (float64, error) {
	return 0, nil
}

// Decide applies the house rule.
func (r Rule) Decide(_ context.Context, req blackjack.DecisionRequest) (blackjack.Action, error) {
	standOn := r.StandOn
	if standOn == 0 {
		standOn = DefaultStandOn
	}
	if req.Total < standOn {
		return blackjack.Hit, nil
	}
	if r.HitSoft17 && req.Total == 17 && req.Soft {
		return blackjack.Hit, nil
	}
	return blackjack.Stand, nil
}

// Basic bets a flat stake and plays a simplified basic strategy against the
// dealer's up card.
type Basic struct {
	Stake  float64
	logger *log.Logger
}

// NewBasic creates a Basic bot that tries to bet stake every round.
func NewBasic(stake float64, logger *log.Logger) *Basic {
	return &Basic{Stake: stake, logger: logger.WithPrefix("basic")}
}

// Bet picks the largest affordable stake not above the target.
func (b *Basic) Bet(_ context.Context, req blackjack.BetRequest) (float64, error) {
	affordable := req.Stakes.Affordable(req.Cash)
	if len(affordable) == 0 {
		return 0, fmt.Errorf("%s cannot afford any stake", req.Name)
	}

	target := b.Stake
	if target <= 0 {
		target, _ = req.Stakes.MinPositive()
	}

	best := affordable[0]
	for _, s := range affordable {
		if s <= target {
			best = s
		}
	}
	return best, nil
}

// Decide hits anything up to 11, hits soft hands below 18, and on hard 12-16
// stands only against a weak dealer card (2 through 6).
func (b *Basic) Decide(_ context.Context, req blackjack.DecisionRequest) (blackjack.Action, error) {
	up := req.DealerUpCard.Rank.Points()
	action := blackjack.Stand

	switch {
	case req.Total <= 11:
		action = blackjack.Hit
	case req.Soft && req.Total < 18:
		action = blackjack.Hit
	case req.Total <= 16 && (up < 2 || up > 6):
		action = blackjack.Hit
	}

	b.logger.Debug("decision", "seat", req.Seat, "total", req.Total, "soft", req.Soft, "up", req.DealerUpCard, "action", action)
	return action, nil
}

// Random bets a random affordable stake and hits more often on low totals.
type Random struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a Random bot instance
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{rng: rng, logger: logger.WithPrefix("random")}
}

// Bet picks uniformly among the affordable stakes.
func (r *Random) Bet(_ context.Context, req blackjack.BetRequest) (float64, error) {
	affordable := req.Stakes.Affordable(req.Cash)
	if len(affordable) == 0 {
		return 0, fmt.Errorf("%s cannot afford any stake", req.Name)
	}
	return affordable[r.rng.IntN(len(affordable))], nil
}

// Decide hits with probability (21-total)/10, so never on 21 and always on 11
// or less.
func (r *Random) Decide(_ context.Context, req blackjack.DecisionRequest) (blackjack.Action, error) {
	p := float64(blackjack.Blackjack-req.Total) / 10
	if r.rng.Float64() < p {
		return blackjack.Hit, nil
	}
	return blackjack.Stand, nil
}

// New builds a player agent of the given kind. Human seats share human, since
// they read from the same terminal.
func New(kind string, stake float64, rng *rand.Rand, human *Human, logger *log.Logger) (blackjack.Agent, error) {
	switch kind {
	case KindHuman:
		if human == nil {
			return nil, fmt.Errorf("agent kind %q needs a terminal", kind)
		}
		return human, nil
	case KindBasic:
		return NewBasic(stake, logger), nil
	case KindRandom:
		return NewRandom(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

// NewDealer builds the dealer's agent for a policy. The manual policy plays
// through human.
func NewDealer(policy string, standOn int, hitSoft17 bool, human *Human) (blackjack.Agent, error) {
	switch policy {
	case DealerRule:
		return Rule{StandOn: standOn, HitSoft17: hitSoft17}, nil
	case DealerManual:
		if human == nil {
			return nil, fmt.Errorf("dealer policy %q needs a terminal", policy)
		}
		return human, nil
	default:
		return nil, fmt.Errorf("unknown dealer policy %q", policy)
	}
}
