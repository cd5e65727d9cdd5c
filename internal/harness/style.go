package harness

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var (
	SectionStyle = lipgloss.NewStyle().
			Bold(true)
	PassStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06cc00"))
	FailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#cc0000"))
)
