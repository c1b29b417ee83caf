// Package display renders table snapshots for a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

const (
	nameWidth = 10
	handWidth = 22
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithClearScreen clears the terminal before each table redraw.
func WithClearScreen() Option {
	return func(r *Renderer) {
		r.clear = true
	}
}

// Renderer draws the table after every state change. It implements
// blackjack.Observer.
type Renderer struct {
	out    io.Writer
	term   *termenv.Output
	styles *Styles
	clear  bool
}

// New creates a renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:    out,
		term:   termenv.NewOutput(out),
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observe renders the snapshot for its event.
func (r *Renderer) Observe(s blackjack.Snapshot) {
	switch s.Event {
	case blackjack.EventRoundStart:
		fmt.Fprintf(r.out, "\n%s\n", r.styles.Header.Render(fmt.Sprintf("Round %d", s.Round)))
	case blackjack.EventDeal, blackjack.EventHit, blackjack.EventStand, blackjack.EventBust:
		r.redraw(s)
	case blackjack.EventOutcome:
		r.redraw(s)
		fmt.Fprintln(r.out, r.Winners(s))
	case blackjack.EventVoid:
		fmt.Fprintln(r.out, r.styles.Bust.Render(fmt.Sprintf("Round %d void: the deck ran out. Bets refunded, new shoe.", s.Round)))
	}
}

func (r *Renderer) redraw(s blackjack.Snapshot) {
	if r.clear {
		r.term.ClearScreen()
	}
	fmt.Fprint(r.out, r.Table(s))
}

// Table renders the deck count and one line per seat.
func (r *Renderer) Table(s blackjack.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Info.Render(fmt.Sprintf("Deck has %d cards left.", s.DeckRemaining)))
	sb.WriteString("\n")
	for _, seat := range s.Seats {
		sb.WriteString(r.seatLine(seat, seat.Index == s.Acting))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) seatLine(seat blackjack.SeatSnapshot, acting bool) string {
	nameStyle := r.styles.Player
	if seat.IsDealer() {
		nameStyle = r.styles.Dealer
	}
	name := nameStyle.Render(pad(seat.Name, nameWidth))

	hand := r.Cards(seat.Hand)
	if len(seat.Hand) > 0 {
		hand += fmt.Sprintf(" (%d)", seat.Total)
	}
	line := name + " " + pad(hand, handWidth)

	if !seat.IsDealer() {
		line += r.styles.Muted.Render(fmt.Sprintf(" cash %.2f bet %.2f", seat.Cash, seat.Bet))
	}

	switch {
	case seat.Retired:
		line += " " + r.styles.Muted.Render("(retired)")
	case seat.Folded:
		line += " " + r.styles.Muted.Render("(sitting out)")
	case seat.State == blackjack.Busted:
		line += " " + r.styles.Bust.Render("(BUST!)")
	}
	if acting {
		line += " " + r.styles.Acting.Render("<- to act")
	}
	return line
}

// Cards renders a hand with red and black suits.
func (r *Renderer) Cards(hand []deck.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		if c.IsRed() {
			parts[i] = r.styles.CardRed.Render(c.String())
		} else {
			parts[i] = r.styles.CardBlack.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

// Winners describes an outcome snapshot's winners.
func (r *Renderer) Winners(s blackjack.Snapshot) string {
	if len(s.Winners) == 1 && s.Winners[0] == blackjack.DealerSeat {
		return r.styles.Winner.Render("Dealer wins.")
	}
	names := make([]string, len(s.Winners))
	for i, w := range s.Winners {
		names[i] = s.Seats[w].Name
	}
	return r.styles.Winner.Render("Winners: " + strings.Join(names, ", "))
}

// Summary renders the end-of-game standings.
func (r *Renderer) Summary(sum *blackjack.Summary) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(r.styles.Header.Render("Game over"))
	sb.WriteString("\n")

	reason := fmt.Sprintf("%d rounds played", sum.Rounds)
	if sum.Voided > 0 {
		reason += fmt.Sprintf(", %d void", sum.Voided)
	}
	switch {
	case sum.Quit:
		reason += ", a player quit"
	case sum.Stalled:
		reason += ", nobody left can afford a bet"
	}
	sb.WriteString(r.styles.Info.Render(reason + "."))
	sb.WriteString("\n")

	net := make([]float64, len(sum.Seats))
	for _, rec := range sum.History {
		for _, res := range rec.Seats {
			net[res.Index] += res.Delta
		}
	}

	for _, seat := range sum.Seats {
		if seat.IsDealer() {
			continue
		}
		line := r.styles.Player.Render(pad(seat.Name, nameWidth)) + fmt.Sprintf(" cash %.2f net %+.2f", seat.Cash, net[seat.Index])
		if seat.Retired {
			line += " " + r.styles.Muted.Render("(retired)")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// pad right-pads s to width visible cells.
func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
