package blackjack

// DefaultPayout is even money: a winning bet of 5 returns 10.
const DefaultPayout = 1.0

// EvaluateRound returns the winning seats in ascending order. The result is
// never empty: when no player qualifies the dealer wins alone.
//
// If the dealer busted, every player still alive wins. Otherwise a player
// wins with a total of 21 or less that is at least the dealer's, so ties go
// to the player.
func EvaluateRound(g *Game) []int {
	dealer := g.Dealer()
	var winners []int

	for _, s := range g.Players() {
		if !s.Alive {
			continue
		}
		if dealer.Total > Blackjack {
			winners = append(winners, s.Index)
			continue
		}
		if s.Total <= Blackjack && s.Total >= dealer.Total {
			winners = append(winners, s.Index)
		}
	}

	if len(winners) == 0 {
		return []int{DealerSeat}
	}
	return winners
}

// Settle pays out a finished round. Bets were already taken from cash when
// collected, so a winner is credited the stake back plus stake*payout and a
// loser gets nothing. The returned slice holds each seat's net result for the
// round; the dealer's entry is always zero.
func Settle(g *Game, winners []int, payout float64) []float64 {
	won := make(map[int]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}

	deltas := make([]float64, len(g.Seats))
	for _, s := range g.Players() {
		if s.Bet == 0 {
			continue
		}
		if won[s.Index] {
			winnings := s.Bet * payout
			s.Cash += s.Bet + winnings
			deltas[s.Index] = winnings
		} else {
			deltas[s.Index] = -s.Bet
		}
	}
	return deltas
}

// refundBets returns every outstanding bet to its seat. Bet amounts are
// left in place for the round record and cleared by ResetRound.
func refundBets(g *Game) {
	for _, s := range g.Players() {
		s.Cash += s.Bet
	}
}
