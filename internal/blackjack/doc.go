// Package blackjack implements a turn-based blackjack round engine.
//
// The main type is Game, which owns the shoe and every seat at the table.
// Seat 0 is always the dealer; seats 1..N-1 are players. A Game lives for the
// whole session: cash carries over between rounds and seats that go broke are
// retired for good.
//
// # Basic Usage
//
// Build a game and drive it with an Engine and one Agent per seat:
//
//	rng := randutil.New(42)
//	g, err := blackjack.NewGame(rng, 3, blackjack.WithUniformCash(100))
//	if err != nil {
//	    return err
//	}
//	e, err := blackjack.NewEngine(g, []blackjack.Agent{dealer, alice, bob})
//	if err != nil {
//	    return err
//	}
//	summary, err := e.Run(ctx)
//
// # Round Structure
//
// Each round runs through the same stages:
//   - Betting: every player stakes one of the allowed amounts (CollectBet)
//   - Deal: two cards to each seat still in the round
//   - Turns: TurnMachine walks players in seat order, dealer last
//   - Outcome: EvaluateRound picks the winners and Settle pays them
//   - Reset: bankrupt seats retire, round state is cleared
//
// Engine.Stage reports where the current round is. Running out of cards
// during the deal or the turns voids the round instead of settling it.
//
// The lower level pieces (TurnMachine, CollectBet, EvaluateRound) are usable
// on their own, which is how most of the tests exercise them.
package blackjack
