package formatter

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mrtguide/mrtmap"
)

// Console renders plain-text instructions, one line per step.
type Console struct{}

// Format implements Formatter.
func (Console) Format(start, end string, routes []mrtmap.Route, opts Options) string {
	if len(routes) == 0 {
		return fmt.Sprintf("No available route found between %s and %s", start, end)
	}

	lines := []string{fmt.Sprintf("Recommended routes between %s and %s", start, end)}
	for i, r := range shown(routes, opts) {
		if i > 0 {
			lines = append(lines, "")
		}
		if opts.ShowCost {
			lines = append(lines, fmt.Sprintf("The estimated time: %d mins", r.Cost))
		}
		for _, l := range legs(r) {
			if l.transfer {
				lines = append(lines, fmt.Sprintf("Transfer to %s line", l.line))
				continue
			}
			lines = append(lines, fmt.Sprintf("Take %s line from %s to %s", l.line, l.from, l.to))
		}
	}

	return strings.Join(lines, "\n")
}
