package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coedit/internal/node"
)

const (
	sidebarWidth = 28
	stripRows    = 3
)

// layout holds cell geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sideW              int
	paneX, paneW       int
	opY, opH           int
	cpY, cpH           int
}

func (m Model) layout() layout {
	headerHeight := 1
	footerHeight := 2
	var lo layout
	lo.contentH = max(4+stripRows, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.sidebar != noSidebar {
		lo.sideW = sidebarWidth
		lo.paneX = sidebarWidth + 1
	}
	lo.paneW = max(10, lo.contentW-lo.paneX)
	lo.opY = headerHeight
	lo.opH = lo.contentH - stripRows - 1
	lo.cpY = lo.opY + lo.opH + 1
	lo.cpH = stripRows
	return lo
}

// resize hands the pane geometry to the editor in micro-pixels.
func (m *Model) resize() {
	lo := m.layout()
	pad := m.cfg.NodePadding()
	opacity := node.Viewport{Width: float64(2 * lo.paneW), Height: float64(4 * lo.opH), Padding: pad}
	strip := node.Viewport{Width: float64(2 * lo.paneW), Height: float64(4 * lo.cpH), Padding: node.Padding{
		Left: pad.Left, Right: pad.Right, Top: 2, Bottom: 2,
	}}
	m.ed.Resize(opacity, strip)
	if m.sidebar != noSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		m.cm.SetSize(sidebarWidth-2, lo.contentH-2)
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" coedit ─ color/opacity transfer function editor ")
	if m.selPath != "" {
		header += dimStyle.Render(" " + filepath.Base(m.selPath))
	}
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var side string
	switch m.sidebar {
	case filesSidebar:
		side = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	case colormapSidebar:
		side = lipgloss.NewStyle().Width(sidebarWidth).Render(m.cm.View())
	}

	var paneView string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.paneW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.contentH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		paneView = lipgloss.Place(lo.paneW, lo.contentH, lipgloss.Center, lipgloss.Center, box)
	} else {
		f := m.ed.Frame()
		opacity := lipgloss.NewStyle().Width(lo.paneW).Height(lo.opH).Render(m.renderOpacityPane(&f, lo.paneW, lo.opH))
		left := dimStyle.Render(fmt.Sprintf(" %g", m.ed.XRange.Min))
		right := dimStyle.Render(fmt.Sprintf("shape: %s  %g ", m.ed.Shape, m.ed.XRange.Max))
		sep := left + strings.Repeat(" ", max(0, lo.paneW-lipgloss.Width(left)-lipgloss.Width(right))) + right
		strip := m.renderColorPane(&f, lo.paneW, lo.cpH)
		paneView = lipgloss.JoinVertical(lipgloss.Left, opacity, sep, strip)
	}

	body := paneView
	if side != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, " ", paneView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	help := m.help.View(m.keys)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}
