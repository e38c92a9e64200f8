package main

import "github.com/charmbracelet/lipgloss"

// Shared hex colors for CLI output, tuned for dark terminal backgrounds.
const (
	colorPrimary = lipgloss.Color("#F59E0B") // Amber, GoPro-ish.
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle is for the program name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// SubtitleStyle is for secondary text and de-emphasized detail.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// SuccessStyle is for the end-of-run summary.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// ErrorStyle is for failure output.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)
