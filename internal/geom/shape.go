// Package geom holds the planar geometry used to place quakes inside country borders.
//
// Coordinates are treated as a flat lon (x) / lat (y) plane. There is no geodesic
// correction; country borders are small enough that the approximation holds.
package geom

import "github.com/rotisserie/eris"

// ErrInvalidGeometry is returned when a ring cannot describe an area.
var ErrInvalidGeometry = eris.New("invalid geometry")

// Ring is a closed ring of at least three vertices. The closing edge from the last
// vertex back to the first is implicit.
type Ring struct {
	pts  []Point
	bbox BBox
}

// NewRing validates pts and builds a Ring. A trailing vertex equal to the first one
// (GeoJSON style closure) is dropped before counting.
func NewRing(pts []Point) (Ring, error) {
	n := len(pts)
	if n > 1 && pts[0] == pts[n-1] {
		n--
	}
	if n < 3 {
		return Ring{}, eris.Wrapf(ErrInvalidGeometry, "geom: ring has %d vertices, need 3", n)
	}
	own := make([]Point, n)
	copy(own, pts[:n])
	return Ring{pts: own, bbox: boundsOf(own)}, nil
}

// MustRing is NewRing for literals known to be valid. It panics otherwise.
func MustRing(pts ...Point) Ring {
	r, err := NewRing(pts)
	if err != nil {
		panic(err)
	}
	return r
}

// Points returns the ring vertices without the closing duplicate.
func (r Ring) Points() []Point { return r.pts }

// BBox returns the ring's bounding box.
func (r Ring) BBox() BBox { return r.bbox }

// Contains reports whether p is inside the ring using the even-odd rule.
// Points lying on an edge or a vertex count as inside.
func (r Ring) Contains(p Point) bool {
	if len(r.pts) < 3 || !r.bbox.Covers(p) {
		return false
	}
	x, y := p.Lon, p.Lat
	inside := false
	n := len(r.pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r.pts[j], r.pts[i]
		if onSegment(p, a, b) {
			return true
		}
		if (b.Lat > y) != (a.Lat > y) {
			xCross := (a.Lon-b.Lon)*(y-b.Lat)/(a.Lat-b.Lat) + b.Lon
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(p, a, b Point) bool {
	cross := (b.Lon-a.Lon)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lon-a.Lon)
	if cross != 0 {
		return false
	}
	return p.Lon >= min(a.Lon, b.Lon) && p.Lon <= max(a.Lon, b.Lon) &&
		p.Lat >= min(a.Lat, b.Lat) && p.Lat <= max(a.Lat, b.Lat)
}

// ShapeKind tags the variant held by a Shape.
type ShapeKind int

const (
	KindSimple ShapeKind = iota
	KindCompound
)

func (k ShapeKind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindCompound:
		return "compound"
	}
	return "unknown"
}

// Shape is either a single ring (Simple) or a set of rings whose union is the
// covered area (Compound, e.g. an archipelago). Shapes come from Simple or Compound;
// the zero Shape contains nothing.
type Shape struct {
	kind  ShapeKind
	rings []Ring
	bbox  BBox
}

// Simple wraps one ring. It fails with ErrInvalidGeometry when the ring has fewer
// than three vertices.
func Simple(r Ring) (Shape, error) {
	if err := r.check(); err != nil {
		return Shape{}, err
	}
	return Shape{kind: KindSimple, rings: []Ring{r}, bbox: r.bbox}, nil
}

// MustSimple is Simple for rings known to be valid. It panics otherwise.
func MustSimple(r Ring) Shape {
	s, err := Simple(r)
	if err != nil {
		panic(err)
	}
	return s
}

// Compound wraps one or more rings. It fails with ErrInvalidGeometry when empty or
// when any ring has fewer than three vertices.
func Compound(rings ...Ring) (Shape, error) {
	if len(rings) == 0 {
		return Shape{}, eris.Wrap(ErrInvalidGeometry, "geom: compound shape without rings")
	}
	for i, r := range rings {
		if err := r.check(); err != nil {
			return Shape{}, eris.Wrapf(err, "geom: compound ring %d", i)
		}
	}
	own := make([]Ring, len(rings))
	copy(own, rings)
	b := own[0].bbox
	for _, r := range own[1:] {
		b = b.Union(r.bbox)
	}
	return Shape{kind: KindCompound, rings: own, bbox: b}, nil
}

// check rejects rings that did not come from NewRing, such as the zero Ring.
func (r Ring) check() error {
	if len(r.pts) < 3 {
		return eris.Wrapf(ErrInvalidGeometry, "geom: ring has %d vertices, need 3", len(r.pts))
	}
	return nil
}

// Kind reports whether the shape is simple or compound.
func (s Shape) Kind() ShapeKind { return s.kind }

// Rings returns the shape's rings.
func (s Shape) Rings() []Ring { return s.rings }

// BBox returns the box covering every ring.
func (s Shape) BBox() BBox { return s.bbox }

// Contains reports whether p lies in the shape. For compound shapes p only has to
// fall inside one of the rings.
func (s Shape) Contains(p Point) bool {
	switch s.kind {
	case KindSimple:
		return len(s.rings) == 1 && s.rings[0].Contains(p)
	case KindCompound:
		if !s.bbox.Covers(p) {
			return false
		}
		for _, r := range s.rings {
			if r.Contains(p) {
				return true
			}
		}
	}
	return false
}
