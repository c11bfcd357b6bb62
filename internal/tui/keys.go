package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shape      key.Binding
	Opacity    key.Binding
	Histograms key.Binding
	LogScale   key.Binding
	Table      key.Binding
	Colormaps  key.Binding
	Files      key.Binding
	Open       key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Shape:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shape")),
		Opacity:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "bg opacity")),
		Histograms: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "histograms")),
		LogScale:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log scale")),
		Table:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "nodes")),
		Colormaps:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "colormaps")),
		Files:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "datasets")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Help:       key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shape, k.Opacity, k.Histograms, k.Colormaps, k.Files, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shape, k.Opacity, k.Histograms, k.LogScale},
		{k.Table, k.Colormaps, k.Files, k.Open},
		{k.Export, k.Help, k.Quit},
	}
}
