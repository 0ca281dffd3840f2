package tui

import (
	"strings"

	"quakemap/internal/geom"
	"quakemap/internal/quake"
)

const (
	sidebarWidth = 30
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen split shared by View (drawing) and Update (mouse mapping).
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	sidebarW := 0
	if m.showSidebar {
		sidebarW = sidebarWidth
	}
	contentH := max(4, m.height-headerHeight-footerHeight)
	contentW := max(10, m.width)
	mapX := sidebarW
	if m.showSidebar {
		mapX++
	}
	return layout{
		contentW: contentW,
		contentH: contentH,
		sidebarW: sidebarW,
		mapX:     mapX,
		mapY:     headerHeight,
		mapW:     max(10, contentW-sidebarW-1),
		mapH:     contentH,
	}
}

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

// screenXY maps a location to screen cell coordinates considering zoom and pan.
func (m Model) screenXY(p geom.Point, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (p.Lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (p.Lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)+0.5) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)+0.5) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps a location into the 2x4 braille microgrid.
func (m Model) screenXYMicro(p geom.Point, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (p.Lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (p.Lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// probeAt hit-tests markers against one map cell: a marker is under the cursor when
// it is drawn in that cell.
func (m Model) probeAt(cx, cy, w, h int) quake.Probe {
	return func(loc geom.Point) bool {
		sx, sy, ok := m.screenXY(loc, w, h)
		return ok && sx == cx && sy == cy
	}
}

func (m Model) renderMap(w, h int) string {
	canvas := newDotCanvas(w, h)
	if m.showBorders {
		toDot := func(p geom.Point) (int, int, bool) { return m.screenXYMicro(p, w, h) }
		for _, c := range m.countries {
			canvas.outline(c.Shape, toDot)
		}
	}

	cells := make([][]string, h)
	for y, row := range canvas.lines() {
		runes := []rune(row)
		cells[y] = make([]string, w)
		for x := 0; x < w; x++ {
			if x < len(runes) && runes[x] != ' ' {
				cells[y][x] = borderStyle.Render(string(runes[x]))
			} else {
				cells[y][x] = " "
			}
		}
	}
	put := func(p geom.Point, s string) {
		x, y, ok := m.screenXY(p, w, h)
		if !ok || x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		cells[y][x] = s
	}

	// Cities first so quakes, which win hit-testing, are drawn on top.
	for i, c := range m.agg.Cities() {
		if !m.sel.CityHidden(i) {
			put(c.Location, cityStyle.Render(cityGlyph))
		}
	}
	quakes := m.agg.Quakes()
	for i := len(quakes) - 1; i >= 0; i-- {
		if !m.sel.QuakeHidden(i) {
			q := quakes[i]
			put(q.Location, depthStyle(q.DepthClass()).Render(quakeGlyph(q)))
		}
	}

	switch hv := m.sel.Hovered; hv.Kind {
	case quake.QuakeMarker:
		q := quakes[hv.Index]
		put(q.Location, hoverStyle.Render(quakeGlyph(q)))
	case quake.CityMarker:
		put(m.agg.Cities()[hv.Index].Location, hoverStyle.Render(cityGlyph))
	}

	lines := make([]string, h)
	for y := range cells {
		lines[y] = strings.Join(cells[y], "")
	}
	return strings.Join(lines, "\n")
}

const cityGlyph = "▲"

func quakeGlyph(q quake.Earthquake) string {
	switch {
	case q.Age == quake.PastHour && q.OnLand:
		return "⊗"
	case q.Age == quake.PastHour:
		return "⊠"
	case q.OnLand:
		return "●"
	}
	return "■"
}
