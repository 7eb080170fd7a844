package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/wire/utils/mapx"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	insertStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)

// renderTable renders values as aligned "key  value" rows under title
func renderTable(title string, values map[string]string) string {
	entries := mapx.SortedEntries(values)

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Key))
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteByte('\n')
	if len(entries) == 0 {
		sb.WriteString(mutedStyle.Render("  (empty)"))
		sb.WriteByte('\n')
		return sb.String()
	}

	keyColumn := keyStyle.Width(width)
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(keyColumn.Render(e.Key))
		sb.WriteString("  ")
		sb.WriteString(e.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}
