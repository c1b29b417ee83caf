// Package statistics accumulates per-seat results across simulated rounds.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult represents one seat's outcome in a single round
type RoundResult struct {
	Net    float64 // Net cash won or lost
	Bet    float64 // Amount staked, zero when folded
	Won    bool
	Folded bool
	Busted bool
}

// Statistics tracks one seat's results over many rounds
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	Wins   int
	Losses int
	Folds  int
	Busts  int // Losses where the seat went over 21

	WonNet  float64 // Net from rounds won
	LostNet float64 // Net from rounds lost or folded
	AllNet  float64 // Total net for sanity check
	Wagered float64

	BiggestWin  float64
	BiggestLoss float64 // Stored as a negative number
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := result.Net
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.AllNet += net
	s.Wagered += result.Bet

	switch {
	case result.Folded:
		s.Folds++
		s.LostNet += net
	case result.Won:
		s.Wins++
		s.WonNet += net
	default:
		s.Losses++
		s.LostNet += net
		if result.Busted {
			s.Busts++
		}
	}

	if net > s.BiggestWin {
		s.BiggestWin = net
	}
	if net < s.BiggestLoss {
		s.BiggestLoss = net
	}
}

// Mean returns the mean net result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns wins as a fraction of rounds played, folds excluded
func (s *Statistics) WinRate() float64 {
	played := s.Wins + s.Losses
	if played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(played)
}

// Return returns total net as a fraction of the amount wagered
func (s *Statistics) Return() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return s.AllNet / s.Wagered
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllNet-s.WonNet-s.LostNet) <= 1e-6
}

// Validate performs validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllNet=%.6f, WonNet=%.6f, LostNet=%.6f",
			s.AllNet, s.WonNet, s.LostNet)
	}
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}
	if total := s.Wins + s.Losses + s.Folds; total != s.Rounds {
		return fmt.Errorf("wins, losses and folds (%d) do not add up to rounds (%d)", total, s.Rounds)
	}
	if s.Busts > s.Losses {
		return fmt.Errorf("busts (%d) exceed losses (%d)", s.Busts, s.Losses)
	}
	return nil
}
