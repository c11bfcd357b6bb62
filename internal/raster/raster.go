// Package raster paints an editor frame into an RGBA image: the gradient
// filled background shape, the histogram outline, the opacity polyline, the
// color strip and the handles.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"coedit/internal/config"
	"coedit/internal/editor"
	"coedit/internal/node"
	"coedit/internal/shape"
)

type Style struct {
	LineWidth    float64
	HandleRadius float64
	Handle       color.Color
	HandleBorder color.Color
	Histogram    color.Color
	Background   color.Color
	ShowLine     bool
	Padding      node.Padding
}

func DefaultStyle() Style {
	return Style{
		LineWidth:    2,
		HandleRadius: 7,
		Handle:       color.NRGBA{0x20, 0x20, 0x20, 0xff},
		HandleBorder: color.NRGBA{0xbf, 0xbf, 0xbf, 0xff},
		Histogram:    color.Black,
		Background:   color.White,
		ShowLine:     true,
		Padding:      node.Uniform(8),
	}
}

// FromConfig builds a Style from the user's settings.
func FromConfig(cfg config.Config) Style {
	st := DefaultStyle()
	st.LineWidth = cfg.LineWidth
	st.HandleRadius = cfg.HandleRadius
	st.Handle = config.Color(cfg.HandleColor)
	st.HandleBorder = config.Color(cfg.HandleBorderColor)
	st.Histogram = config.Color(cfg.HistogramsColor)
	st.ShowLine = cfg.ShowLine
	st.Padding = cfg.NodePadding()
	return st
}

// StripHeight is the pixel height of the color pane in exported images.
const StripHeight = 40

// Layout splits a w x h image into the opacity pane on top and the color
// strip below it.
func Layout(w, h float64, pad node.Padding) (opacity, strip node.Viewport) {
	sh := math.Round(math.Min(StripHeight, h/3))
	opacity = node.Viewport{Width: w, Height: h - sh, Padding: pad}
	strip = node.Viewport{Width: w, Height: sh, Padding: node.Padding{
		Left: pad.Left, Right: pad.Right, Top: pad.Top / 2, Bottom: pad.Bottom / 2,
	}}
	return opacity, strip
}

// Export renders ed at w x h pixels into a PNG file at path. The editor's
// viewports are restored afterwards.
func Export(ed *editor.Editor, path string, w, h int, st Style) error {
	ov, cv := ed.Viewports()
	defer ed.Resize(ov, cv)
	ed.Resize(Layout(float64(w), float64(h), st.Padding))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, ed.Frame(), st); err != nil {
		f.Close()
		return fmt.Errorf("png %s: %w", path, err)
	}
	return f.Close()
}

// Render draws f with the opacity pane on top and the color pane directly
// below it.
func Render(f editor.Frame, st Style) *image.RGBA {
	ov, cv := f.OpacityViewport, f.ColorViewport
	w := int(math.Ceil(math.Max(ov.Width, cv.Width)))
	oh := int(math.Ceil(ov.Height))
	h := oh + int(math.Ceil(cv.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)

	grad := gradient(f, w, h)
	p := painter{img: img, z: vector.NewRasterizer(w, h)}

	p.fill(f.Background, 0, grad)
	if f.Histogram != nil {
		p.outline(f.Histogram, 0, st.LineWidth/2, image.NewUniform(st.Histogram))
	}
	if st.ShowLine {
		p.polyline(f.Opacity, 0, st.LineWidth, image.NewUniform(st.Handle))
	}
	p.handles(f.Opacity, 0, st, activeIndex(f, editor.OpacityPane))

	strip := float64(oh)
	p.fill(f.Strip, strip, grad)
	p.polyline(f.Flat, strip, st.LineWidth, image.NewUniform(st.Handle))
	p.handles(f.Flat, strip, st, activeIndex(f, editor.ColorPane))
	return img
}

// WritePNG encodes Render(f, st) to w.
func WritePNG(w io.Writer, f editor.Frame, st Style) error {
	return png.Encode(w, Render(f, st))
}

func activeIndex(f editor.Frame, pane editor.Pane) int {
	if f.Active >= 0 && f.ActivePane == pane {
		return f.Active
	}
	return -1
}

// gradient is a w x h image whose column px holds the merged color at px.
func gradient(f editor.Frame, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		c := f.ColorAt(float64(x) + 0.5)
		cc := colorful.Color{R: c[0], G: c[1], B: c[2]}.Clamped()
		r, g, b := cc.RGB255()
		px := color.NRGBA{r, g, b, uint8(math.Round(node.Range{Min: 0, Max: 1}.Clamp(c[3]) * 255))}
		for y := range h {
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

type painter struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func (p *painter) begin() {
	b := p.img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Over
}

func (p *painter) draw(src image.Image) {
	p.z.Draw(p.img, p.img.Bounds(), src, image.Point{})
}

func (p *painter) path(pts []vec.Vec2, dy float64) {
	if len(pts) == 0 {
		return
	}
	p.z.MoveTo(float32(pts[0].X), float32(pts[0].Y+dy))
	for _, q := range pts[1:] {
		p.z.LineTo(float32(q.X), float32(q.Y+dy))
	}
	p.z.ClosePath()
}

func (p *painter) fill(s shape.Shape, dy float64, src image.Image) {
	if len(s) < 3 {
		return
	}
	p.begin()
	p.path(s, dy)
	p.draw(src)
}

// segment adds a quad of width lw around a-b.
func (p *painter) segment(a, b vec.Vec2, lw float64) {
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	n := d.Normalize().Rot90().Mul(lw / 2)
	p.path([]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, 0)
}

func (p *painter) stroke(pts []vec.Vec2, closed bool, dy, lw float64, src image.Image) {
	if len(pts) < 2 || lw <= 0 {
		return
	}
	off := vec.Vec2{Y: dy}
	p.begin()
	for i := 1; i < len(pts); i++ {
		p.segment(pts[i-1].Add(off), pts[i].Add(off), lw)
	}
	if closed {
		p.segment(pts[len(pts)-1].Add(off), pts[0].Add(off), lw)
	}
	p.draw(src)
}

func (p *painter) outline(s shape.Shape, dy, lw float64, src image.Image) {
	p.stroke(s, true, dy, math.Max(lw, 1), src)
}

func (p *painter) polyline(nodes []node.Opacity, dy, lw float64, src image.Image) {
	pts := make([]vec.Vec2, len(nodes))
	for i, n := range nodes {
		pts[i] = vec.Vec2{X: n.X, Y: n.Value}
	}
	p.stroke(pts, false, dy, lw, src)
}

func (p *painter) circle(c vec.Vec2, r float64) {
	const steps = 24
	pts := make([]vec.Vec2, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / steps
		pts[i] = vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	p.path(pts, 0)
}

// handles draws one disc per node; the active one gets no border.
func (p *painter) handles(nodes []node.Opacity, dy float64, st Style, active int) {
	r := st.HandleRadius
	if r <= 0 {
		return
	}
	border := math.Max(st.LineWidth/2, 1)
	for i, n := range nodes {
		c := vec.Vec2{X: n.X, Y: n.Value + dy}
		if i != active {
			p.begin()
			p.circle(c, r)
			p.draw(image.NewUniform(st.HandleBorder))
		}
		p.begin()
		p.circle(c, math.Max(r-border, 1))
		p.draw(image.NewUniform(st.Handle))
	}
}
