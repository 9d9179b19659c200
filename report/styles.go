package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/bradyjeong/ampbench/benchmark"
)

// Assessment line colors, one per check status.
var (
	colorPass = lipgloss.Color("2") // green
	colorWarn = lipgloss.Color("3") // yellow
	colorFail = lipgloss.Color("1") // red
)

var statusStyles = map[benchmark.Status]lipgloss.Style{
	benchmark.StatusPass: lipgloss.NewStyle().Foreground(colorPass),
	benchmark.StatusWarn: lipgloss.NewStyle().Foreground(colorWarn),
	benchmark.StatusFail: lipgloss.NewStyle().Foreground(colorFail).Bold(true),
}

// StdoutIsTerminal reports whether stdout can take styled output. Piped or
// redirected output gets plain bytes.
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
