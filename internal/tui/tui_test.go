package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"coedit/internal/config"
	"coedit/internal/node"
	"coedit/internal/shape"
)

func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Config = config.Default()
	m := New(opts)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int, b tea.MouseButton, a tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: b, Action: a}
}

func TestMouseInsertAndRemove(t *testing.T) {
	m := newModel(t, Options{})
	ed := m.Editor()
	if n := len(ed.Store.Opacity()); n != 2 {
		t.Fatalf("start with %d opacity nodes", n)
	}

	m = send(t, m, click(40, 9, tea.MouseButtonLeft, tea.MouseActionPress))
	m = send(t, m, click(40, 9, tea.MouseButtonLeft, tea.MouseActionRelease))
	if n := len(ed.Store.Opacity()); n != 3 {
		t.Fatalf("after click: %d nodes", n)
	}
	if !strings.Contains(m.status, "opacity added") {
		t.Errorf("status = %q", m.status)
	}
	if _, dragging := ed.Dragging(); dragging {
		t.Error("session still open after release")
	}

	// the lower left endpoint sits in cell (4, 16)
	m = send(t, m, click(4, 16, tea.MouseButtonRight, tea.MouseActionPress))
	if m.status != "refused: boundary node" {
		t.Errorf("status = %q", m.status)
	}

	m = send(t, m, click(40, 9, tea.MouseButtonRight, tea.MouseActionPress))
	if n := len(ed.Store.Opacity()); n != 2 {
		t.Errorf("after remove: %d nodes", n)
	}
	if !strings.Contains(m.status, "opacity removed") {
		t.Errorf("status = %q", m.status)
	}
}

func TestMouseDragColor(t *testing.T) {
	m := newModel(t, Options{})
	ed := m.Editor()
	before := ed.Store.Colors()
	if len(before) != 3 {
		t.Fatalf("colors = %v", before)
	}

	// the strip starts at row 19; the middle RBG node is at column 40
	m = send(t, m, click(40, 20, tea.MouseButtonLeft, tea.MouseActionPress))
	m = send(t, m, click(20, 23, tea.MouseButtonLeft, tea.MouseActionMotion))
	m = send(t, m, click(20, 23, tea.MouseButtonLeft, tea.MouseActionRelease))

	after := ed.Store.Colors()
	if len(after) != 3 {
		t.Fatalf("colors = %v", after)
	}
	if after[1].Value != before[1].Value || after[1].X >= before[1].X {
		t.Errorf("middle color not moved left: %v -> %v", before[1], after[1])
	}
	if !strings.Contains(m.status, "color modified") {
		t.Errorf("status = %q", m.status)
	}
}

func TestKeys(t *testing.T) {
	m := newModel(t, Options{})
	ed := m.Editor()

	m = send(t, m, runes("s"))
	if ed.Shape != shape.Full {
		t.Errorf("shape = %v", ed.Shape)
	}
	m = send(t, m, runes("o"))
	if !ed.BackgroundOpacity {
		t.Error("background opacity not toggled")
	}
	m = send(t, m, runes("g"))
	if !ed.ShowHistograms {
		t.Error("histograms not toggled")
	}
	m = send(t, m, runes("t"))
	if !m.showTable || !strings.Contains(m.View(), "opacity") {
		t.Error("node table not shown")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestColormapPicker(t *testing.T) {
	m := newModel(t, Options{})
	ed := m.Editor()

	m = send(t, m, runes("c"))
	if m.sidebar != colormapSidebar {
		t.Fatalf("sidebar = %v", m.sidebar)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.status != "colormap: WB" {
		t.Errorf("status = %q", m.status)
	}
	cs := ed.Store.Colors()
	if len(cs) != 2 || cs[0].Value != (node.RGB{1, 1, 1}) {
		t.Errorf("colors = %v", cs)
	}

	m = send(t, m, runes("c"))
	if m.sidebar != noSidebar {
		t.Errorf("sidebar not closed")
	}
}

func TestLoadAndExport(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "samples.csv")
	if err := os.WriteFile(data, []byte("density\n10\n20\n30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "tf.png")
	m := newModel(t, Options{Data: data, PNG: out, ExportW: 120, ExportH: 90})
	if r := m.Editor().XRange; r != (node.Range{Min: 10, Max: 30}) {
		t.Errorf("x range = %v", r)
	}
	if !strings.HasPrefix(m.status, "loaded: samples.csv") {
		t.Errorf("status = %q", m.status)
	}

	m = send(t, m, runes("e"))
	if m.status != "exported "+out {
		t.Errorf("status = %q", m.status)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestView(t *testing.T) {
	m := New(Options{Config: config.Default()})
	if m.View() != "" {
		t.Error("view before first resize is not empty")
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	v := m.View()
	if !strings.Contains(v, "coedit") || !strings.Contains(v, "shape: histograms") {
		t.Errorf("view missing header or axis line:\n%s", v)
	}
}

func TestGrabbedHandleHighlighted(t *testing.T) {
	m := newModel(t, Options{})
	if v := m.View(); strings.Contains(v, "◉") || !strings.Contains(v, "●") {
		t.Fatalf("idle view handles wrong:\n%s", v)
	}
	m = send(t, m, click(40, 9, tea.MouseButtonLeft, tea.MouseActionPress))
	if !strings.Contains(m.View(), "◉") {
		t.Error("grabbed handle not highlighted")
	}
	m = send(t, m, click(40, 9, tea.MouseButtonLeft, tea.MouseActionRelease))
	if strings.Contains(m.View(), "◉") {
		t.Error("handle still highlighted after release")
	}
}
