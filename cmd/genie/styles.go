package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output. Chosen for dark terminal
// backgrounds with good contrast.
const (
	// ColorSuccess is green - success states and checkmarks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorMuted is gray - secondary text and de-emphasized detail.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorHighlight is blue - identifiers, paths, and emphasized values.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// MutedStyle is for supplementary information.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ValueStyle is for space ids, titles, and file paths.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// PanelStyle frames the result of a mutating operation.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(0, 1)
)
