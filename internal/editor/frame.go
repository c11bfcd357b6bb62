package editor

import (
	"coedit/internal/merge"
	"coedit/internal/node"
	"coedit/internal/scale"
	"coedit/internal/shape"
)

// Frame is everything a renderer needs to draw both panes. Node slices are
// in viewport pixels; Breakpoints are in data space.
type Frame struct {
	XRange node.Range

	OpacityViewport node.Viewport
	ColorViewport   node.Viewport

	Opacity []node.Opacity
	Colors  []node.Color
	// Flat is the color line drawn across the color pane.
	Flat []node.Opacity

	Breakpoints []merge.Breakpoint

	// Background is filled with the gradient in the opacity pane.
	Background shape.Shape
	// Histogram is the outline overlay, nil unless histograms are shown.
	Histogram shape.Shape
	// Strip is filled with the gradient in the color pane.
	Strip shape.Shape

	// Active is the index of the dragged node in Opacity or Flat, -1 if none.
	Active     int
	ActivePane Pane
}

// ColorAt samples the gradient at horizontal pixel px of the opacity pane.
func (f *Frame) ColorAt(px float64) node.RGBA {
	x := scale.PixelToX(px, f.XRange, f.OpacityViewport)
	return merge.At(f.Breakpoints, x)
}

// Frame snapshots the current state.
func (e *Editor) Frame() Frame {
	opacity := e.opacityScaler().ToViewport(e.Store.Opacity())

	f := Frame{
		XRange:          e.XRange,
		OpacityViewport: e.opacityVP,
		ColorViewport:   e.colorVP,
		Opacity:         opacity,
		Colors:          e.colorScaler().ColorsToViewport(e.Store.Colors()),
		Flat:            e.flatColors(),
		Breakpoints:     merge.Merge(e.Store.Colors(), e.gradientOpacity()),
		Strip:           shape.Rect(e.colorVP),
		Active:          -1,
	}

	bins := e.histogramBins()
	under := opacity
	if e.Shape == shape.Histograms {
		under = bins
	}
	f.Background = shape.Generate(e.Shape, under, e.opacityVP)
	if e.ShowHistograms {
		f.Histogram = shape.Histogram(bins, e.opacityVP)
	}
	if pane, i, ok := e.Active(); ok {
		f.Active, f.ActivePane = i, pane
	}
	return f
}

// gradientOpacity is the alpha channel fed to the merger, normalized to
// [0, 1]. It is nil unless the background shows opacity, which renders the
// gradient fully opaque.
func (e *Editor) gradientOpacity() []node.Opacity {
	if !e.BackgroundOpacity {
		return nil
	}
	op := e.Store.Opacity()
	if e.YRange == nil {
		return op
	}
	r := *e.YRange
	for i := range op {
		if r.Degenerate() {
			op[i].Value = 0
			continue
		}
		op[i].Value = (op[i].Value - r.Min) / r.Span()
	}
	return op
}

// histogramBins returns the histogram keyed by bin center in viewport
// pixels, scaled so the fullest bin reaches the top.
func (e *Editor) histogramBins() []node.Opacity {
	if len(e.hist.Buckets) == 0 {
		return nil
	}
	counts := e.hist.CountRange()
	s := scale.Scaler{X: e.XRange, Y: &counts, Viewport: e.opacityVP}
	return s.ToViewport(e.hist.Centers())
}
