package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")  // teal - headings and numbers
	colorWhite = lipgloss.Color("255") // bright white - values
	colorDim   = lipgloss.Color("240") // dim gray - muted text
	colorAmber = lipgloss.Color("220") // amber - partial coverage warning
)

var (
	// styleTitle for section headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleNumber for numeric values.
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// styleValue for data values such as the path itself.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for secondary text such as hyperedge listings.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleWarning for the partial-coverage note.
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
)
