package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every output surface.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#e5e7eb"}
)

// Icons. ASCII-safe variants are deliberately avoided; modern Windows
// consoles render these fine and the rest of the output is already UTF-8.
const (
	IconOK    = "✓"
	IconError = "✗"
	IconPipe  = "│"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

func Success(s string) string { return successStyle.Render(s) }
func Error(s string) string   { return errorStyle.Render(s) }
func Muted(s string) string   { return mutedStyle.Render(s) }
func Title(s string) string   { return titleStyle.Render(s) }
