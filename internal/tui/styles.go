// Package tui carries dela's terminal styling and the interactive
// approval prompt, grounded directly on the teacher's internal/tui
// package: the same semantic color constants and Bullet/Arrow helpers,
// reused here by `list`'s marker rendering and the allowlist approval
// prompt (spec §4.6/C7) instead of the teacher's trust/API-key prompts.
package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette - used consistently across every command.
const (
	ColorPrimary   = "255" // White - main text, emphasis
	ColorSecondary = "245" // Light gray - supporting text
	ColorMuted     = "240" // Dark gray - hints, less important info
	ColorSuccess   = "42"  // Green - operations succeeded
	ColorError     = "203" // Red - errors, failures
	ColorWarning   = "214" // Orange - cautions, attention needed
	ColorAccent    = "45"  // Cyan - highlights
)

// Common styles used across all commands.
var (
	PrimaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary))
	SecondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondary))
	MutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle      = MutedStyle.Italic(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	BoldStyle = lipgloss.NewStyle().Bold(true)
)

// Bullet returns a muted bullet point.
func Bullet() string {
	return MutedStyle.Render("·")
}

// Arrow returns a muted arrow.
func Arrow() string {
	return MutedStyle.Render("→")
}

// ExitSuccess renders a one-line success message prefixed with a
// checkmark, in the teacher's ✓/✗ status-icon convention.
func ExitSuccess(msg string) string {
	return SuccessStyle.Render("✓") + " " + msg
}

// ExitError renders a one-line error message prefixed with a cross.
func ExitError(msg string) string {
	return ErrorStyle.Render("✗") + " " + msg
}
