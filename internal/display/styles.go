package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the table display
type Styles struct {
	Header    lipgloss.Style
	Info      lipgloss.Style
	Dealer    lipgloss.Style
	Player    lipgloss.Style
	Acting    lipgloss.Style
	Bust      lipgloss.Style
	Muted     lipgloss.Style
	Winner    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
}

// NewStyles creates the styles for a lipgloss renderer, so colors follow the
// output the renderer writes to rather than stdout.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 2).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Dealer: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Acting: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Bold(true),
	}
}
