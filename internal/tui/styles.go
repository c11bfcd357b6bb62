package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	panelBg   = lipgloss.Color("#0F141A")
	borderCol = lipgloss.Color("#243141")
	grabFg    = lipgloss.Color("#FFA500")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Pane glyphs
var (
	lineGlyph = lipgloss.NewStyle().Foreground(baseFg)
	histGlyph = lipgloss.NewStyle().Foreground(baseDimFg)
	grabGlyph = lipgloss.NewStyle().Foreground(grabFg).Bold(true)
)

// handleGlyph draws a node handle; the grabbed one is highlighted.
func handleGlyph(border string, grabbed bool) string {
	if grabbed {
		return grabGlyph.Render("◉")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(border)).Render("●")
}
