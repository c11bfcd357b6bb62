package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"seehuhn.de/go/geom/vec"

	"coedit/internal/controls"
	"coedit/internal/editor"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		// If a list is filtering, send keys to it and ignore global commands
		if m.sidebar == filesSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Shape):
			m.ed.Shape = m.ed.Shape.Next()
			m.status = fmt.Sprintf("shape: %s", m.ed.Shape)
		case key.Matches(msg, m.keys.Opacity):
			m.ed.BackgroundOpacity = !m.ed.BackgroundOpacity
			m.status = fmt.Sprintf("background opacity: %v", m.ed.BackgroundOpacity)
		case key.Matches(msg, m.keys.Histograms):
			m.ed.ShowHistograms = !m.ed.ShowHistograms
			m.status = fmt.Sprintf("histograms: %v", m.ed.ShowHistograms)
		case key.Matches(msg, m.keys.LogScale):
			m.cfg.LogHistogram = !m.cfg.LogHistogram
			m.rebuildHistogram()
			m.status = fmt.Sprintf("log histogram: %v", m.cfg.LogHistogram)
		case key.Matches(msg, m.keys.Table):
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case key.Matches(msg, m.keys.Files):
			m.toggleSidebar(filesSidebar)
			if m.sidebar == filesSidebar {
				m.refreshDir()
			}
		case key.Matches(msg, m.keys.Colormaps):
			m.toggleSidebar(colormapSidebar)
		case key.Matches(msg, m.keys.Open):
			switch m.sidebar {
			case filesSidebar:
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			case colormapSidebar:
				if it, ok := m.cm.SelectedItem().(colormapItem); ok {
					m.applyColormap(it.name)
				}
			}
		case key.Matches(msg, m.keys.Export):
			m.export()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	// Pass messages to the visible list
	var cmd tea.Cmd
	switch m.sidebar {
	case filesSidebar:
		m.l, cmd = m.l.Update(msg)
	case colormapSidebar:
		m.cm, cmd = m.cm.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleSidebar(s sidebar) {
	if m.sidebar == s {
		m.sidebar = noSidebar
	} else {
		m.sidebar = s
	}
	m.resize()
}

// paneAt returns the pane under cell (cx, cy) and the micro-pixel at the
// cell center relative to that pane.
func (m Model) paneAt(cx, cy int) (editor.Pane, vec.Vec2, bool) {
	lo := m.layout()
	x := cx - lo.paneX
	if x < 0 || x >= lo.paneW {
		return 0, vec.Vec2{}, false
	}
	switch {
	case cy >= lo.opY && cy < lo.opY+lo.opH:
		return editor.OpacityPane, cellCenter(x, cy-lo.opY), true
	case cy >= lo.cpY && cy < lo.cpY+lo.cpH:
		return editor.ColorPane, cellCenter(x, cy-lo.cpY), true
	}
	return 0, vec.Vec2{}, false
}

// relative maps a cell to micro-pixels of pane even when the pointer left it.
func (m Model) relative(pane editor.Pane, cx, cy int) vec.Vec2 {
	lo := m.layout()
	top := lo.opY
	if pane == editor.ColorPane {
		top = lo.cpY
	}
	return cellCenter(cx-lo.paneX, cy-top)
}

func cellCenter(cx, cy int) vec.Vec2 {
	return vec.Vec2{X: float64(2*cx + 1), Y: float64(4*cy + 2)}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showTable {
		return
	}
	m.journal.last = ""
	var err error
	if pane, dragging := m.ed.Dragging(); dragging {
		p := m.relative(pane, msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			err = m.ed.Move(p)
		case tea.MouseActionRelease:
			err = m.ed.Up(p)
		}
	} else if msg.Action == tea.MouseActionPress {
		pane, p, ok := m.paneAt(msg.X, msg.Y)
		if !ok {
			return
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			_, err = m.ed.Down(pane, p)
		case tea.MouseButtonRight:
			err = m.ed.Remove(pane, p)
		}
	}

	switch {
	case errors.Is(err, controls.ErrInvalidRemoval):
		m.status = "refused: boundary node"
	case err != nil:
		m.status = "edit error: " + err.Error()
	case m.journal.last != "":
		m.status = m.journal.last
	}
}
