package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"coedit/internal/dataset"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

type colormapItem struct {
	name  string
	count int
}

func (c colormapItem) Title() string       { return c.name }
func (c colormapItem) Description() string { return fmt.Sprintf("%d colors", c.count) }
func (c colormapItem) FilterValue() string { return c.name }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(name)
		if dataset.Supported(ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
}

func (m *Model) refreshColormaps() {
	names := m.cfg.ColormapNames()
	items := make([]list.Item, len(names))
	sel := 0
	for i, name := range names {
		items[i] = colormapItem{name: name, count: len(m.cfg.Colormaps[name])}
		if name == m.cfg.Colormap {
			sel = i
		}
	}
	m.cm.SetItems(items)
	m.cm.Select(sel)
}

// loadPath replaces the samples with the dataset at p.
func (m *Model) loadPath(p string) {
	samples, err := dataset.Load(p, m.opts.Column)
	m.loadErr = err
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setSamples(samples)
	r := m.ed.XRange
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  samples=%d range=[%g, %g]", len(samples), r.Min, r.Max)
	m.logger.Info("dataset loaded", "path", p, "samples", len(samples))
	if m.showTable {
		m.refreshTable()
	}
}

func (m *Model) applyColormap(name string) {
	rgbs, ok := m.cfg.Colormaps[name]
	if !ok {
		m.status = "unknown colormap: " + name
		return
	}
	m.ed.SetColormap(rgbs)
	m.status = "colormap: " + name
	if m.showTable {
		m.refreshTable()
	}
}
