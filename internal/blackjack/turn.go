package blackjack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuit is returned when a seat asks to leave the game.
	ErrQuit = errors.New("quit requested")
	// ErrUnrecognizedAction is returned for input tokens that map to no action.
	ErrUnrecognizedAction = errors.New("unrecognized action")
	// ErrTurnsComplete is returned when acting after the dealer has finished.
	ErrTurnsComplete = errors.New("all turns are complete")
)

// Action is a seat's decision on its turn.
type Action int

const (
	Hit Action = iota
	Stand
	Quit
)

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction maps an input token to an Action. Single letters and full
// words are accepted: h/hit, s/stand/stop, q/quit.
func ParseAction(token string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand", "stop":
		return Stand, nil
	case "q", "quit":
		return Quit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedAction, token)
	}
}

// TurnMachine walks the seats through one round of hit/stand decisions.
// Players act in table order, skipping seats that are out of the round, and
// the dealer always acts last.
type TurnMachine struct {
	game    *Game
	current int
	done    bool
}

// NewTurnMachine starts the turn order at the first player still in the
// round, or at the dealer when no player is.
func NewTurnMachine(g *Game) *TurnMachine {
	tm := &TurnMachine{game: g}
	tm.enter(tm.nextEligibleSeat(DealerSeat))
	return tm
}

// Current returns the seat whose decision is awaited.
func (tm *TurnMachine) Current() int {
	return tm.current
}

// Done returns true once the dealer has stood or busted.
func (tm *TurnMachine) Done() bool {
	return tm.done
}

// Apply performs an action for the current seat. A hit that does not bust
// leaves the same seat acting. Deck errors are returned as-is and leave the
// seat acting.
func (tm *TurnMachine) Apply(a Action) error {
	if tm.done {
		return ErrTurnsComplete
	}
	seat := tm.game.Seats[tm.current]

	switch a {
	case Hit:
		card, err := tm.game.Deck.DrawOne()
		if err != nil {
			return err
		}
		if err := tm.game.AppendCard(seat.Index, card); err != nil {
			return err
		}
		if tm.game.CheckBust(seat.Index) {
			return nil
		}
		seat.State = Busted
		tm.advance()
	case Stand:
		seat.State = Stood
		tm.advance()
	case Quit:
		return ErrQuit
	default:
		return fmt.Errorf("%w: %v", ErrUnrecognizedAction, a)
	}
	return nil
}

func (tm *TurnMachine) advance() {
	if tm.current == DealerSeat {
		tm.done = true
		return
	}
	tm.enter(tm.nextEligibleSeat(tm.current))
}

func (tm *TurnMachine) enter(seat int) {
	tm.current = seat
	tm.game.Seats[seat].State = Acting
}

// nextEligibleSeat walks the circular seat order from the seat after from
// and returns the first player still alive this round. Reaching the dealer
// ends the walk, so the dealer is returned once every player has had a turn.
func (tm *TurnMachine) nextEligibleSeat(from int) int {
	n := len(tm.game.Seats)
	for step := 1; step < n; step++ {
		i := (from + step) % n
		if i == DealerSeat {
			break
		}
		if tm.game.Seats[i].Alive {
			return i
		}
	}
	return DealerSeat
}
