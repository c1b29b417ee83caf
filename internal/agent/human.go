package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/lox/blackjack/internal/blackjack"
)

// Human reads a seat's decisions from a line-oriented prompt. Unrecognized
// answers are rejected here and asked again, so the engine only ever sees
// parsed values.
type Human struct {
	in    *bufio.Scanner
	out   io.Writer
	lines chan string
	done  chan struct{}
	err   error
	once  sync.Once
	stop  sync.Once
}

// NewHuman creates a human agent reading answers from in and writing prompts
// to out. Several seats may share one Human when they share a terminal.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:    bufio.NewScanner(in),
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
}

// Close stops handing out input. Prompts after Close return ErrQuit. A read
// already blocked on the underlying reader ends with that read.
func (h *Human) Close() error {
	h.stop.Do(func() { close(h.done) })
	return nil
}

// Bet prompts for a stake. Typing q quits the game.
func (h *Human) Bet(ctx context.Context, req blackjack.BetRequest) (float64, error) {
	if req.Rejected != nil {
		fmt.Fprintf(h.out, "Bet rejected: %v\n", req.Rejected)
	}

	for {
		fmt.Fprintf(h.out, "\n%s (cash %.2f) bet %s, Q (Quit): ", req.Name, req.Cash, formatStakes(req.Stakes.Affordable(req.Cash)))
		line, err := h.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if action, err := blackjack.ParseAction(line); err == nil && action == blackjack.Quit {
			return 0, blackjack.ErrQuit
		}

		amount, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(h.out, "Unrecognized bet!")
			continue
		}
		return amount, nil
	}
}

// Decide prompts for hit, stand or quit.
func (h *Human) Decide(ctx context.Context, req blackjack.DecisionRequest) (blackjack.Action, error) {
	for {
		fmt.Fprintf(h.out, "\n%s (%d): H (Hit), S (Stop), Q (Quit): ", req.Name, req.Total)
		line, err := h.readLine(ctx)
		if err != nil {
			return 0, err
		}

		action, err := blackjack.ParseAction(line)
		if err != nil {
			fmt.Fprintln(h.out, "Unrecognized action!")
			continue
		}
		return action, nil
	}
}

// readLine returns the next trimmed line. Closed input counts as a quit. The
// read happens on a separate goroutine so a cancelled context releases the
// prompt even while the terminal is idle.
func (h *Human) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-h.done:
		return "", blackjack.ErrQuit
	default:
	}
	h.once.Do(func() { go h.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-h.done:
		return "", blackjack.ErrQuit
	case line, ok := <-h.lines:
		if !ok {
			if h.err != nil {
				return "", fmt.Errorf("reading input: %w", h.err)
			}
			return "", blackjack.ErrQuit
		}
		return strings.TrimSpace(line), nil
	}
}

func (h *Human) scan() {
	for h.in.Scan() {
		select {
		case h.lines <- h.in.Text():
		case <-h.done:
			return
		}
	}
	h.err = h.in.Err()
	close(h.lines)
}

func formatStakes(stakes blackjack.Stakes) string {
	parts := make([]string, len(stakes))
	for i, s := range stakes {
		parts[i] = strconv.FormatFloat(s, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
