package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mrtguide/mrtmap"
)

// Styled renders the console instructions with terminal colours. Colours
// degrade to plain text when the output is not a terminal.
type Styled struct {
	Accent lipgloss.Style
	Line   lipgloss.Style
	Cost   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// NewStyled returns a Styled formatter with the default palette.
func NewStyled() Styled {
	return Styled{
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Line:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Cost:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Format implements Formatter.
func (s Styled) Format(start, end string, routes []mrtmap.Route, opts Options) string {
	if len(routes) == 0 {
		return s.Error.Render(fmt.Sprintf("No available route found between %s and %s", start, end))
	}

	lines := []string{s.Accent.Render(fmt.Sprintf("Recommended routes between %s and %s", start, end))}
	for i, r := range shown(routes, opts) {
		if i > 0 {
			lines = append(lines, "")
		}
		if opts.ShowCost {
			lines = append(lines, "The estimated time: "+s.Cost.Render(fmt.Sprintf("%d mins", r.Cost)))
		}
		for n, l := range legs(r) {
			step := s.Muted.Render(fmt.Sprintf("%d.", n+1))
			if l.transfer {
				lines = append(lines, fmt.Sprintf("%s Transfer to %s line", step, s.Line.Render(l.line)))
				continue
			}
			lines = append(lines, fmt.Sprintf("%s Take %s line from %s to %s",
				step, s.Line.Render(l.line), l.from.Name, l.to.Name))
		}
	}

	return strings.Join(lines, "\n")
}
