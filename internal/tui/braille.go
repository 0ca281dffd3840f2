package tui

import (
	"strings"

	"quakemap/internal/geom"
)

// dotBits maps a dot position inside a braille cell, [row][column], to its bit in
// the U+2800 block.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// dotCanvas draws country outlines at 2x4 dots per terminal cell.
type dotCanvas struct {
	w, h  int
	cells []uint8 // row-major, one mask per cell
}

func newDotCanvas(w, h int) *dotCanvas {
	return &dotCanvas{w: w, h: h, cells: make([]uint8, w*h)}
}

// set lights dot (dx, dy). Dots off the canvas are dropped.
func (c *dotCanvas) set(dx, dy int) {
	if dx < 0 || dy < 0 || dx >= c.w*2 || dy >= c.h*4 {
		return
	}
	c.cells[(dy/4)*c.w+dx/2] |= dotBits[dy%4][dx%2]
}

// line joins two dots (Bresenham).
func (c *dotCanvas) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	for e := dx + dy; ; {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// outline projects every ring of s with toDot and draws it closed.
func (c *dotCanvas) outline(s geom.Shape, toDot func(geom.Point) (int, int, bool)) {
	for _, r := range s.Rings() {
		pts := r.Points()
		var firstX, firstY, prevX, prevY int
		drawn := false
		for _, p := range pts {
			x, y, ok := toDot(p)
			if !ok {
				continue
			}
			if drawn {
				c.line(prevX, prevY, x, y)
			} else {
				firstX, firstY, drawn = x, y, true
			}
			prevX, prevY = x, y
		}
		if drawn {
			c.line(prevX, prevY, firstX, firstY)
		}
	}
}

// lines renders the canvas, blank cells as spaces.
func (c *dotCanvas) lines() []string {
	out := make([]string, c.h)
	var sb strings.Builder
	for y := range out {
		sb.Reset()
		for _, mask := range c.cells[y*c.w : (y+1)*c.w] {
			if mask == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(0x2800) + rune(mask))
			}
		}
		out[y] = sb.String()
	}
	return out
}
