package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/vec"

	"coedit/internal/editor"
	"coedit/internal/node"
)

// cellOf returns the cell holding viewport point (x, y).
func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / 2)), int(math.Floor(y / 4))
}

// cellColor is the gradient at cell column cx, blended over the panel.
func cellColor(f *editor.Frame, cx int) colorful.Color {
	c := f.ColorAt(float64(2*cx + 1))
	fg := colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped()
	bg, _ := colorful.Hex(string(panelBg))
	return bg.BlendRgb(fg, node.Range{Min: 0, Max: 1}.Clamp(c[3]))
}

// handleCells maps cells to the index of the node drawn there.
func handleCells(nodes []node.Opacity) map[[2]int]int {
	out := make(map[[2]int]int, len(nodes))
	for i, n := range nodes {
		cx, cy := cellOf(n.X, n.Value)
		out[[2]int{cx, cy}] = i
	}
	return out
}

func (m Model) renderOpacityPane(f *editor.Frame, w, h int) string {
	fill := newBrailleBuf(w, h)
	fill.fillPolygon(f.Background)
	curve := newBrailleBuf(w, h)
	if m.cfg.ShowLine {
		curve.polyline(opacityPoints(f.Opacity), false)
	}
	var hist *brailleBuf
	if f.Histogram != nil {
		hist = newBrailleBuf(w, h)
		hist.polyline(f.Histogram, true)
	}
	active := -1
	if f.Active >= 0 && f.ActivePane == editor.OpacityPane {
		active = f.Active
	}
	handles := handleCells(f.Opacity)

	lines := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			if i, ok := handles[[2]int{x, y}]; ok {
				sb.WriteString(handleGlyph(m.cfg.HandleBorderColor, i == active))
				continue
			}
			if mk := curve.mask(x, y); mk != 0 {
				sb.WriteString(lineGlyph.Render(string(glyph(mk))))
				continue
			}
			if hist != nil {
				if mk := hist.mask(x, y); mk != 0 {
					sb.WriteString(histGlyph.Render(string(glyph(mk))))
					continue
				}
			}
			if mk := fill.mask(x, y); mk != 0 {
				c := cellColor(f, x)
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(glyph(mk))))
				continue
			}
			sb.WriteByte(' ')
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// renderColorPane paints the strip as cell backgrounds with the flat line
// through its middle row.
func (m Model) renderColorPane(f *editor.Frame, w, h int) string {
	active := -1
	if f.Active >= 0 && f.ActivePane == editor.ColorPane {
		active = f.Active
	}
	handles := handleCells(f.Flat)
	lineRow := -1
	if len(f.Flat) > 0 {
		_, lineRow = cellOf(0, f.Flat[0].Value)
	}
	left, top := cellOf(f.ColorViewport.Left(), f.ColorViewport.Top())
	right, bottom := cellOf(f.ColorViewport.Right(), f.ColorViewport.Bottom())

	lines := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			if x < left || x > right || y < top || y > bottom {
				sb.WriteByte(' ')
				continue
			}
			bg := cellColor(f, x)
			st := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex())).Foreground(contrast(bg))
			switch i, ok := handles[[2]int{x, y}]; {
			case ok && i == active:
				sb.WriteString(st.Render("◉"))
			case ok:
				sb.WriteString(st.Render("●"))
			case y == lineRow:
				sb.WriteString(st.Render("─"))
			default:
				sb.WriteString(st.Render(" "))
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func opacityPoints(nodes []node.Opacity) []vec.Vec2 {
	pts := make([]vec.Vec2, len(nodes))
	for i, n := range nodes {
		pts[i] = vec.Vec2{X: n.X, Y: n.Value}
	}
	return pts
}

// contrast picks black or white text for legibility over bg.
func contrast(bg colorful.Color) lipgloss.Color {
	if l, _, _ := bg.Lab(); l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
