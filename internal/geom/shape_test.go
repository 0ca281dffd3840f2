package geom

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(lat0, lon0, size float64) Ring {
	return MustRing(
		Pt(lat0, lon0),
		Pt(lat0, lon0+size),
		Pt(lat0+size, lon0+size),
		Pt(lat0+size, lon0),
	)
}

func TestNewRing_Rejects(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{name: "empty", pts: nil},
		{name: "one vertex", pts: []Point{Pt(1, 1)}},
		{name: "two vertices", pts: []Point{Pt(0, 0), Pt(1, 1)}},
		{name: "closed two vertices", pts: []Point{Pt(0, 0), Pt(1, 1), Pt(0, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRing(tt.pts)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrInvalidGeometry))
		})
	}
}

func TestNewRing_DropsClosingVertex(t *testing.T) {
	r, err := NewRing([]Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(0, 0)})
	require.NoError(t, err)
	assert.Len(t, r.Points(), 3)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, r.BBox())
}

func TestNewRing_CopiesInput(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0, 10), Pt(10, 10)}
	r, err := NewRing(pts)
	require.NoError(t, err)
	pts[0] = Pt(50, 50)
	assert.Equal(t, Pt(0, 0), r.Points()[0])
}

func TestRingContains(t *testing.T) {
	sq := square(0, 0, 10)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "center", p: Pt(5, 5), want: true},
		{name: "near corner", p: Pt(0.001, 9.999), want: true},
		{name: "far outside", p: Pt(50, 50), want: false},
		{name: "outside within lat band", p: Pt(5, 11), want: false},
		{name: "outside within lon band", p: Pt(-1, 5), want: false},
		{name: "on left edge", p: Pt(5, 0), want: true},
		{name: "on top edge", p: Pt(10, 5), want: true},
		{name: "on vertex", p: Pt(10, 10), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sq.Contains(tt.p))
		})
	}
}

func TestRingContains_Concave(t *testing.T) {
	// U shape opening north: notch spans lon 3..7 above lat 3.
	u := MustRing(
		Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 7),
		Pt(3, 7), Pt(3, 3), Pt(10, 3), Pt(10, 0),
	)
	assert.True(t, u.Contains(Pt(1, 5)))
	assert.True(t, u.Contains(Pt(8, 1)))
	assert.True(t, u.Contains(Pt(8, 9)))
	assert.False(t, u.Contains(Pt(8, 5)))
	assert.True(t, u.Contains(Pt(5, 3)), "notch edge counts as inside")
}

func TestShapeContains_Compound(t *testing.T) {
	islands, err := Compound(square(0, 0, 2), square(20, 20, 2))
	require.NoError(t, err)
	assert.Equal(t, KindCompound, islands.Kind())

	assert.True(t, islands.Contains(Pt(1, 1)))
	assert.True(t, islands.Contains(Pt(21, 21)))
	assert.False(t, islands.Contains(Pt(10, 10)), "between islands")
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 22, MaxY: 22}, islands.BBox())
}

func TestShapeContains_NestedRingsUnion(t *testing.T) {
	s, err := Compound(square(0, 0, 10), square(4, 4, 2))
	require.NoError(t, err)
	assert.True(t, s.Contains(Pt(5, 5)), "inner ring is part of the union, not a hole")
}

func TestShapeContains_Simple(t *testing.T) {
	s, err := Simple(square(0, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, "simple", s.Kind().String())
	assert.True(t, s.Contains(Pt(5, 5)))
	assert.False(t, s.Contains(Pt(50, 50)))
}

func TestCompound_Empty(t *testing.T) {
	_, err := Compound()
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidGeometry))
}

func TestShapes_RejectZeroRing(t *testing.T) {
	_, err := Simple(Ring{})
	assert.True(t, eris.Is(err, ErrInvalidGeometry))

	_, err = Compound(square(0, 0, 2), Ring{})
	assert.True(t, eris.Is(err, ErrInvalidGeometry))

	assert.Panics(t, func() { MustSimple(Ring{}) })
}

func TestCompound_CopiesRings(t *testing.T) {
	rings := []Ring{square(0, 0, 2), square(20, 20, 2)}
	s, err := Compound(rings...)
	require.NoError(t, err)

	rings[0] = square(50, 50, 2)
	assert.True(t, s.Contains(Pt(1, 1)))
	assert.False(t, s.Contains(Pt(51, 51)))
	assert.Len(t, s.Rings(), 2)
}

func TestZeroShapeContainsNothing(t *testing.T) {
	var s Shape
	assert.False(t, s.Contains(Pt(0, 0)))
}

func TestBBox(t *testing.T) {
	b := BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	assert.True(t, b.Valid())
	assert.True(t, b.Covers(Pt(1, 1)))
	assert.False(t, b.Covers(Pt(1.5, 0.5)))
	assert.Equal(t, BBox{MinX: -2, MinY: 0, MaxX: 1, MaxY: 3}, b.Extend(Pt(3, -2)))
	assert.False(t, BBox{}.Valid())
	assert.True(t, World.Valid())
}
