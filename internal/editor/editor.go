// Package editor composes the node store, scalers, controls, merger,
// flattener and shape generator into a color/opacity transfer function
// editor with two panes: an opacity curve and a flattened color line.
package editor

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"coedit/internal/controls"
	"coedit/internal/flatten"
	"coedit/internal/histogram"
	"coedit/internal/node"
	"coedit/internal/scale"
	"coedit/internal/shape"
)

type Pane int

const (
	OpacityPane Pane = iota
	ColorPane
)

func (p Pane) String() string {
	if p == ColorPane {
		return "color"
	}
	return "opacity"
}

// Options configure a new Editor.
type Options struct {
	// ID distinguishes editors in logs; supplied by the host.
	ID     string
	XRange node.Range
	// YRange is the opacity value range; nil means [0, 1].
	YRange *node.Range

	HandleRadius      float64
	Shape             shape.Mode
	ShowHistograms    bool
	BackgroundOpacity bool

	Opacity []node.Opacity
	Colors  []node.Color

	Logger *slog.Logger
}

// Editor is not safe for concurrent use; all calls belong to the goroutine
// that handles input events.
type Editor struct {
	ID    string
	Store *node.Store

	XRange node.Range
	YRange *node.Range

	Shape             shape.Mode
	ShowHistograms    bool
	BackgroundOpacity bool

	// Edits in data space, after they reached the store.
	OnOpacityEdit func(node.Edit[float64])
	OnColorEdit   func(node.Edit[node.RGB])

	hist histogram.Histogram

	opacityVP node.Viewport
	colorVP   node.Viewport

	opacityCtl *controls.Controls
	colorCtl   *controls.Controls
	active     Pane

	// flat color line of the running color session
	flat []node.Opacity
	err  error

	logger *slog.Logger
}

func New(opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Opacity == nil {
		lo, hi := 0.0, 1.0
		if opts.YRange != nil {
			lo, hi = opts.YRange.Min, opts.YRange.Max
		}
		opts.Opacity = node.Linear([]float64{lo, hi}, opts.XRange)
	}
	e := &Editor{
		ID:                opts.ID,
		Store:             node.NewStore(opts.Opacity, opts.Colors),
		XRange:            opts.XRange,
		YRange:            opts.YRange,
		Shape:             opts.Shape,
		ShowHistograms:    opts.ShowHistograms,
		BackgroundOpacity: opts.BackgroundOpacity,
		logger:            logger.With("editor", opts.ID),
	}
	e.opacityCtl = &controls.Controls{
		HandleRadius: opts.HandleRadius,
		AllowInsert:  true,
		Logger:       e.logger,
		ID:           e.ID + "/opacity",
		OnEdit:       e.opacityEdit,
	}
	e.colorCtl = &controls.Controls{
		HandleRadius: opts.HandleRadius,
		AllowInsert:  true,
		LockY:        true,
		Logger:       e.logger,
		ID:           e.ID + "/color",
		OnEdit:       e.colorEdit,
	}
	return e
}

// Resize sets the pixel geometry of both panes.
func (e *Editor) Resize(opacity, color node.Viewport) {
	e.opacityVP = opacity
	e.colorVP = color
	e.opacityCtl.Viewport = opacity
	e.colorCtl.Viewport = color
}

func (e *Editor) Viewports() (opacity, color node.Viewport) {
	return e.opacityVP, e.colorVP
}

func (e *Editor) SetHandleRadius(r float64) {
	e.opacityCtl.HandleRadius = r
	e.colorCtl.HandleRadius = r
}

func (e *Editor) SetHistogram(h histogram.Histogram) { e.hist = h }
func (e *Editor) Histogram() histogram.Histogram     { return e.hist }

// SetColormap replaces the color nodes with rgbs spread evenly over the x
// range.
func (e *Editor) SetColormap(rgbs []node.RGB) {
	e.Store.SetColors(node.Linear(rgbs, e.XRange))
}

// SetRange moves every node so it keeps its relative position when the x
// range changes.
func (e *Editor) SetRange(r node.Range) {
	old := e.XRange
	e.XRange = r
	remap := func(x float64) float64 {
		if old.Degenerate() {
			return r.Min
		}
		return r.Min + (x-old.Min)/old.Span()*r.Span()
	}
	op := e.Store.Opacity()
	for i := range op {
		op[i].X = remap(op[i].X)
	}
	cs := e.Store.Colors()
	for i := range cs {
		cs[i].X = remap(cs[i].X)
	}
	e.Store.SetOpacity(op)
	e.Store.SetColors(cs)
}

func (e *Editor) opacityScaler() scale.Scaler {
	return scale.Scaler{X: e.XRange, Y: e.YRange, Viewport: e.opacityVP}
}

func (e *Editor) colorScaler() scale.Scaler {
	return scale.Scaler{X: e.XRange, Viewport: e.colorVP}
}

// lineY is the vertical position of the flattened color line.
func (e *Editor) lineY() float64 {
	return e.colorVP.Top() + e.colorVP.ContentHeight()/2
}

func (e *Editor) flatColors() []node.Opacity {
	return flatten.Flatten(e.colorScaler().ColorsToViewport(e.Store.Colors()), e.lineY())
}

func (e *Editor) ctl(p Pane) *controls.Controls {
	if p == ColorPane {
		return e.colorCtl
	}
	return e.opacityCtl
}

// Dragging reports whether a pointer session is active and on which pane.
func (e *Editor) Dragging() (Pane, bool) {
	if e.opacityCtl.State() != controls.Idle {
		return OpacityPane, true
	}
	if e.colorCtl.State() != controls.Idle {
		return ColorPane, true
	}
	return 0, false
}

// Active returns the pane and viewport index of the node being dragged.
func (e *Editor) Active() (Pane, int, bool) {
	pane, ok := e.Dragging()
	if !ok {
		return 0, 0, false
	}
	i, _ := e.ctl(pane).Active()
	return pane, i, true
}

// Down starts a pointer session on pane at pixel p. It reports whether a
// session started; a pointer-down during another session is ignored.
func (e *Editor) Down(pane Pane, p vec.Vec2) (bool, error) {
	if _, busy := e.Dragging(); busy {
		return false, nil
	}
	e.err = nil
	e.active = pane
	var started bool
	switch pane {
	case OpacityPane:
		started = e.opacityCtl.Down(p, e.opacityScaler().ToViewport(e.Store.Opacity()))
	case ColorPane:
		e.flat = e.flatColors()
		started = e.colorCtl.Down(p, e.flat)
	}
	return started, e.takeErr()
}

// Move drags the active node.
func (e *Editor) Move(p vec.Vec2) error {
	if _, ok := e.Dragging(); !ok {
		return nil
	}
	e.ctl(e.active).Move(p)
	return e.takeErr()
}

// Up commits the active session.
func (e *Editor) Up(p vec.Vec2) error {
	if _, ok := e.Dragging(); !ok {
		return nil
	}
	e.ctl(e.active).Up(p)
	if e.active == ColorPane {
		e.flat = nil
	}
	return e.takeErr()
}

// Remove deletes the node under p on pane. Removing a boundary node returns
// controls.ErrInvalidRemoval and changes nothing.
func (e *Editor) Remove(pane Pane, p vec.Vec2) error {
	e.err = nil
	var err error
	switch pane {
	case OpacityPane:
		err = e.opacityCtl.Remove(p, e.opacityScaler().ToViewport(e.Store.Opacity()))
	case ColorPane:
		e.flat = e.flatColors()
		err = e.colorCtl.Remove(p, e.flat)
		e.flat = nil
	}
	if err != nil {
		return err
	}
	return e.takeErr()
}

func (e *Editor) takeErr() error {
	err := e.err
	e.err = nil
	return err
}

func (e *Editor) opacityEdit(ev node.Edit[float64]) {
	data := node.Edit[float64]{
		Kind:  ev.Kind,
		Index: ev.Index,
		From:  ev.From,
		Node:  e.opacityScaler().NodeToData(ev.Node),
	}
	if ev.Kind == node.Removed {
		data.Node = e.Store.Opacity()[ev.Index]
	}
	if err := e.Store.ApplyOpacity(data); err != nil {
		e.fail(fmt.Errorf("opacity %s: %w", ev.Kind, err))
		return
	}
	if e.OnOpacityEdit != nil {
		e.OnOpacityEdit(data)
	}
}

func (e *Editor) colorEdit(ev node.Edit[float64]) {
	if e.flat == nil {
		e.fail(fmt.Errorf("color %s outside a session", ev.Kind))
		return
	}
	flat, err := node.Apply(e.flat, ev)
	if err != nil {
		e.fail(fmt.Errorf("color %s: %w", ev.Kind, err))
		return
	}
	s := e.colorScaler()
	paired, err := flatten.Replay(flat, s.ColorsToViewport(e.Store.Colors()), ev)
	if err != nil {
		e.fail(err)
		return
	}

	data := node.Edit[node.RGB]{Kind: ev.Kind, Index: ev.Index, From: ev.From}
	if ev.Kind == node.Removed {
		data.Node = e.Store.Colors()[ev.Index]
	} else {
		data.Node = node.Color{X: s.PixelToX(flat[ev.Index].X), Value: paired[ev.Index].Value}
	}
	if err := e.Store.ApplyColor(data); err != nil {
		e.fail(fmt.Errorf("color %s: %w", ev.Kind, err))
		return
	}
	e.flat = flat
	if e.OnColorEdit != nil {
		e.OnColorEdit(data)
	}
}

func (e *Editor) fail(err error) {
	e.logger.Error("edit rejected", "err", err)
	if e.err == nil {
		e.err = err
	}
}
