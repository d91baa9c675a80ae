package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF00"}
	colorError   = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
	colorPath    = lipgloss.AdaptiveColor{Light: "#005F00", Dark: "#87D787"}
)

// styles holds the semantic styles of one renderer
type styles struct {
	Heading     lipgloss.Style
	Package     lipgloss.Style
	Muted       lipgloss.Style
	Category    lipgloss.Style
	Destination lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Heading:     r.NewStyle().Bold(true),
		Package:     r.NewStyle().Bold(true).Foreground(colorAccent),
		Muted:       r.NewStyle().Foreground(colorMuted),
		Category:    r.NewStyle().Foreground(colorAccent),
		Destination: r.NewStyle().Foreground(colorPath),
		Warning:     r.NewStyle().Foreground(colorWarning),
		Error:       r.NewStyle().Bold(true).Foreground(colorError),
	}
}

// tablePrinter returns the pterm table used for listings
func tablePrinter(noColor bool) *pterm.TablePrinter {
	table := pterm.DefaultTable.WithHasHeader()
	if noColor {
		table = table.
			WithHeaderStyle(pterm.NewStyle()).
			WithSeparatorStyle(pterm.NewStyle())
	}
	return table
}
