package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	colorful "github.com/lucasb-eyer/go-colorful"

	"coedit/internal/node"
)

var nodeColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "channel", Width: 9},
	{Title: "x", Width: 12},
	{Title: "value", Width: 12},
}

// refreshTable lists every node of both channels in data space.
func (m *Model) refreshTable() {
	op := m.ed.Store.Opacity()
	cs := m.ed.Store.Colors()
	rows := make([]table.Row, 0, len(op)+len(cs))
	for i, n := range op {
		rows = append(rows, table.Row{fmt.Sprintf("%d", i), "opacity", fmt.Sprintf("%.4g", n.X), fmt.Sprintf("%.3f", n.Value)})
	}
	for i, n := range cs {
		rows = append(rows, table.Row{fmt.Sprintf("%d", i), "color", fmt.Sprintf("%.4g", n.X), hex(n.Value)})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(nodeColumns)
	m.tbl.SetRows(rows)
}

func hex(c node.RGB) string {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped().Hex()
}
