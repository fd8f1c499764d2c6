package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for console notices, one per notice kind.
var (
	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	SkipStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Notice prefixes. The emoji prefixes are what operators grep for; keep
// them stable.
const (
	PrefixInfo     = "ℹ️"
	PrefixSkip     = "🚫"
	PrefixProgress = "🔄"
	PrefixSuccess  = "✔️"
	PrefixWarning  = "⚠️"
	PrefixError    = "[ERROR]"
	PrefixVerbose  = "[VERBOSE]"
)
