package geom

// Point is a WGS84 location in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Pt is shorthand for Point{Lat: lat, Lon: lon}.
func Pt(lat, lon float64) Point { return Point{Lat: lat, Lon: lon} }

// BBox is an axis-aligned box in lon (X) / lat (Y) space.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// World covers the full lon/lat range.
var World = BBox{MinX: -180, MinY: -90, MaxX: 180, MaxY: 90}

// boundsOf returns the bbox of a non-empty point list.
func boundsOf(pts []Point) BBox {
	b := BBox{MinX: pts[0].Lon, MinY: pts[0].Lat, MaxX: pts[0].Lon, MaxY: pts[0].Lat}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return b
}

// Extend grows the box to include p.
func (b BBox) Extend(p Point) BBox {
	if p.Lon < b.MinX {
		b.MinX = p.Lon
	}
	if p.Lat < b.MinY {
		b.MinY = p.Lat
	}
	if p.Lon > b.MaxX {
		b.MaxX = p.Lon
	}
	if p.Lat > b.MaxY {
		b.MaxY = p.Lat
	}
	return b
}

// Union returns the smallest box covering both.
func (b BBox) Union(o BBox) BBox {
	b = b.Extend(Point{Lat: o.MinY, Lon: o.MinX})
	return b.Extend(Point{Lat: o.MaxY, Lon: o.MaxX})
}

// Covers reports whether p lies in the box, edges included.
func (b BBox) Covers(p Point) bool {
	return p.Lon >= b.MinX && p.Lon <= b.MaxX && p.Lat >= b.MinY && p.Lat <= b.MaxY
}

// Valid reports whether the box has a non-zero extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}
