package blackjack

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidBet is returned when a stake is not allowed or not affordable.
	// The seat is expected to be asked again.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrDealerCannotBet is returned when a bet is collected from seat 0.
	ErrDealerCannotBet = errors.New("dealer does not bet")
	// ErrSeatRetired is returned when a bet is collected from a bankrupt seat.
	ErrSeatRetired = errors.New("seat is retired")
)

// Stakes is the enumerated set of bet amounts a player may choose from.
// Zero is a fold: the player sits the round out but keeps their cash.
type Stakes []float64

// DefaultStakes are the allowed bets when none are configured.
var DefaultStakes = Stakes{0, 5, 10, 20}

// Validate checks that stakes are non-empty, non-negative and distinct.
func (s Stakes) Validate() error {
	if len(s) == 0 {
		return errors.New("at least one stake is required")
	}
	seen := make(map[float64]bool, len(s))
	for _, v := range s {
		if v < 0 {
			return fmt.Errorf("stake %.2f is negative", v)
		}
		if seen[v] {
			return fmt.Errorf("stake %.2f listed twice", v)
		}
		seen[v] = true
	}
	return nil
}

// Allows returns true if amount is one of the stakes.
func (s Stakes) Allows(amount float64) bool {
	return slices.Contains(s, amount)
}

// Affordable returns the stakes that do not exceed cash, in ascending order.
func (s Stakes) Affordable(cash float64) Stakes {
	var out Stakes
	for _, v := range s {
		if v <= cash {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// MinPositive returns the smallest stake above zero.
func (s Stakes) MinPositive() (float64, bool) {
	found := false
	var best float64
	for _, v := range s {
		if v > 0 && (!found || v < best) {
			best, found = v, true
		}
	}
	return best, found
}

// CollectBet takes a player's wager for the round. The amount must be one of
// the game's stakes and no more than the seat's cash. A zero bet folds the
// seat out of this round.
func (g *Game) CollectBet(seat int, amount float64) error {
	s, err := g.Seat(seat)
	if err != nil {
		return err
	}
	if s.IsDealer() {
		return ErrDealerCannotBet
	}
	if s.Retired {
		return fmt.Errorf("%w: %s", ErrSeatRetired, s.Name)
	}
	if !g.Stakes.Allows(amount) {
		return fmt.Errorf("%w: %.2f is not one of %v", ErrInvalidBet, amount, []float64(g.Stakes))
	}
	if amount > s.Cash {
		return fmt.Errorf("%w: %.2f exceeds available cash %.2f", ErrInvalidBet, amount, s.Cash)
	}

	s.Cash -= amount
	s.Bet = amount
	if amount == 0 {
		s.sitOut()
	}
	return nil
}

// sitOut folds the seat out of the current round.
func (s *Seat) sitOut() {
	s.Alive = false
	s.folded = true
}
