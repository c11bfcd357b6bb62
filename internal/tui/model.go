package tui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"coedit/internal/config"
	"coedit/internal/dataset"
	"coedit/internal/editor"
	"coedit/internal/histogram"
	"coedit/internal/node"
	"coedit/internal/raster"
)

type sidebar int

const (
	noSidebar sidebar = iota
	filesSidebar
	colormapSidebar
)

// Options configure the host around the editor.
type Options struct {
	Config config.Config
	// Data and Column select the dataset loaded at launch; empty Data
	// uses synthetic samples.
	Data   string
	Column string
	// PNG is where the export key writes, at ExportW x ExportH pixels.
	PNG              string
	ExportW, ExportH int
	Logger           *slog.Logger
}

type Model struct {
	width  int
	height int

	sidebar   sidebar
	showTable bool

	status string

	cfg  config.Config
	opts Options
	keys keyMap
	help help.Model

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Colormap presets
	cm list.Model

	// Data
	samples []float64
	loadErr error
	ed      *editor.Editor
	journal *journal

	// node table
	tbl table.Model

	logger *slog.Logger
}

// journal collects edit notices from the editor callbacks. It is shared by
// every copy of the Model.
type journal struct {
	last string
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.PNG == "" {
		opts.PNG = "coedit.png"
	}
	if opts.ExportW <= 0 || opts.ExportH <= 0 {
		opts.ExportW, opts.ExportH = 512, 256
	}
	cfg := opts.Config
	m := Model{
		status:  "coedit ready",
		cfg:     cfg,
		opts:    opts,
		keys:    defaultKeys(),
		help:    help.New(),
		journal: &journal{},
		logger:  logger,
	}
	m.cwd, _ = os.Getwd()

	m.ed = editor.New(editor.Options{
		ID:                uuid.NewString(),
		XRange:            node.Range{Min: 0, Max: 1},
		HandleRadius:      cfg.HandleRadius,
		Shape:             cfg.BackgroundShape,
		ShowHistograms:    cfg.ShowHistograms,
		BackgroundOpacity: cfg.BackgroundOpacity,
		Logger:            logger,
	})
	m.ed.SetColormap(cfg.Colormaps[cfg.Colormap])
	j := m.journal
	m.ed.OnOpacityEdit = func(e node.Edit[float64]) {
		j.last = fmt.Sprintf("opacity %s node %d at %.3g", e.Kind, e.Index, e.Node.X)
	}
	m.ed.OnColorEdit = func(e node.Edit[node.RGB]) {
		j.last = fmt.Sprintf("color %s node %d at %.3g", e.Kind, e.Index, e.Node.X)
	}

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.cm = list.New(nil, d, 0, 0)
	m.cm.Title = "Colormaps"
	m.cm.SetShowHelp(false)
	m.cm.SetShowStatusBar(false)
	m.cm.SetFilteringEnabled(false)
	m.refreshColormaps()

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	if opts.Data != "" {
		m.loadPath(opts.Data)
	} else {
		m.setSamples(dataset.Synthetic(4096, 1))
		m.status = "synthetic dataset; Tab to open a file"
	}
	m.refreshDir()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Editor exposes the underlying editor for hosts that read the result.
func (m Model) Editor() *editor.Editor { return m.ed }

// LoadErr reports why the last dataset failed to load, if it did.
func (m Model) LoadErr() error { return m.loadErr }

// setSamples re-spans the editor over samples and rebuilds the histogram.
func (m *Model) setSamples(samples []float64) {
	m.samples = samples
	r := dataset.Range(samples)
	if r.Degenerate() {
		r = node.Range{Min: r.Min - 0.5, Max: r.Max + 0.5}
	}
	m.ed.SetRange(r)
	m.rebuildHistogram()
}

func (m *Model) rebuildHistogram() {
	h := histogram.ComputeRange(m.samples, m.cfg.Bins, m.ed.XRange)
	if m.cfg.LogHistogram {
		h = h.Log10()
	}
	m.ed.SetHistogram(h)
}

func (m *Model) export() {
	st := raster.FromConfig(m.cfg)
	if err := raster.Export(m.ed, m.opts.PNG, m.opts.ExportW, m.opts.ExportH, st); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = "exported " + m.opts.PNG
}
