package style

import "github.com/charmbracelet/lipgloss"

// Standard ANSI colors used for CLI feedback.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")

	HiRed    = lipgloss.Color("9")
	HiPurple = lipgloss.Color("13")
	HiCyan   = lipgloss.Color("14")
)

// Text is the default body color of boxed messages.
var Text = lipgloss.AdaptiveColor{Light: "#1C1B1F", Dark: "#E6E1E5"}
