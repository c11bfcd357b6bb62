package tui

import (
	"math"
	"sort"

	"seehuhn.de/go/geom/vec"
)

// brailleBuf is a grid of braille cells, each holding 2x4 micro-pixels.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// micro rounds a viewport point down to its micro-pixel.
func micro(p vec.Vec2) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// polyline connects pts in order; closed also joins the last to the first.
func (b *brailleBuf) polyline(pts []vec.Vec2, closed bool) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := micro(pts[i-1])
		x1, y1 := micro(pts[i])
		b.drawLineMicro(x0, y0, x1, y1)
	}
	if closed && len(pts) > 2 {
		x0, y0 := micro(pts[len(pts)-1])
		x1, y1 := micro(pts[0])
		b.drawLineMicro(x0, y0, x1, y1)
	}
}

// fillPolygon fills pts with the even-odd rule, one scanline per micro row.
func (b *brailleBuf) fillPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	ring := make([][2]int, len(pts))
	for i, p := range pts {
		ring[i][0], ring[i][1] = micro(p)
	}
	hMic := b.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], c[1]
			x0, x1 := a[0], c[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

func (b *brailleBuf) mask(cx, cy int) uint8 {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return 0
	}
	return b.m[cy][cx]
}

func glyph(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
