// Package style provides shared colors and icons for terminal output.
package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Summary renders the one-line result of a generation run.
func Summary(written int, destination string) string {
	return lipgloss.NewStyle().Foreground(Green).Render(Check) + " " +
		lipgloss.NewStyle().Bold(true).Render(pluralize(written, "virtual dependency", "virtual dependencies")) +
		" installed into " + lipgloss.NewStyle().Foreground(Iris).Render(destination)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
