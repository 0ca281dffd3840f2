package quake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakemap/internal/geom"
)

// at hits only markers drawn exactly at p.
func at(p geom.Point) Probe {
	return func(loc geom.Point) bool { return loc == p }
}

var nowhere Probe = func(geom.Point) bool { return false }

func aged(lat, lon, mag float64, age Age) Earthquake {
	q := eq(lat, lon, mag)
	q.Age = age
	q.Title = "M " + string(rune('0'+int(mag))) + " " + age.String()
	return q
}

// cityFixture: city 0 at the origin with three nearby quakes (4, 5, 6) and two far
// ones; city 1 and 2 elsewhere.
func cityFixture() *Aggregator {
	quakes := []Earthquake{
		aged(0.1, 0.1, 4.0, PastDay),
		aged(60, 60, 5.0, PastHour),
		aged(-0.1, 0.2, 5.0, PastWeek),
		aged(-60, -60, 3.0, PastDay),
		aged(0.2, -0.1, 6.0, PastDay),
	}
	cities := []City{
		{Location: geom.Pt(0, 0), Name: "Origin"},
		{Location: geom.Pt(30, 30), Name: "Far"},
		{Location: geom.Pt(0.5, 0.5), Name: "Near"},
	}
	return NewAggregator(quakes, cities)
}

func visibleQuakes(st State, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if !st.QuakeHidden(i) {
			out = append(out, i)
		}
	}
	return out
}

func visibleCities(st State, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if !st.CityHidden(i) {
			out = append(out, i)
		}
	}
	return out
}

func TestClickCity_Aggregates(t *testing.T) {
	a := cityFixture()
	st, ok := a.ClickCity(a.Initial(), at(geom.Pt(0, 0)))
	require.True(t, ok)

	assert.Equal(t, Ref{Kind: CityMarker, Index: 0}, st.Clicked)
	assert.Equal(t, 3, st.Summary.QuakesNearby)
	assert.InDelta(t, 5.0, st.Summary.AverageMagnitude, 1e-12)
	assert.Equal(t, []int{0, 2, 4}, visibleQuakes(st, 5))
	assert.Equal(t, []int{0}, visibleCities(st, 3))
	// no nearby quake is from the past hour, so the first nearby one is kept
	assert.Equal(t, 0, st.Summary.MostRecent)

	info, ok := a.Info(st)
	require.True(t, ok)
	assert.Equal(t, Info{
		City:             "Origin",
		QuakesNearby:     3,
		AverageMagnitude: 5.0,
		MostRecentTitle:  a.Quakes()[0].Title,
		HasMostRecent:    true,
	}, info)
}

func TestClickCity_MostRecentPrefersLastPastHour(t *testing.T) {
	quakes := []Earthquake{
		aged(0.1, 0, 4, PastDay),
		aged(0.2, 0, 4, PastHour),
		aged(0.3, 0, 4, PastWeek),
		aged(80, 80, 4, PastHour), // outside, ignored
		aged(0.4, 0, 4, PastHour),
		aged(0.5, 0, 4, PastDay),
	}
	a := NewAggregator(quakes, []City{{Location: geom.Pt(0, 0), Name: "C"}})
	st := a.SelectCity(a.Initial(), 0)
	assert.Equal(t, 4, st.Summary.MostRecent)
	assert.Equal(t, 5, st.Summary.QuakesNearby)
}

func TestClickCity_NoNearbyQuakes(t *testing.T) {
	a := NewAggregator(
		[]Earthquake{aged(50, 50, 3, PastHour)},
		[]City{{Location: geom.Pt(0, 0), Name: "Quiet"}},
	)
	st, ok := a.ClickCity(a.Initial(), at(geom.Pt(0, 0)))
	require.True(t, ok)
	assert.Equal(t, 0, st.Summary.QuakesNearby)
	assert.Equal(t, 0.0, st.Summary.AverageMagnitude)
	assert.Equal(t, -1, st.Summary.MostRecent)
	assert.True(t, st.QuakeHidden(0))

	info, ok := a.Info(st)
	require.True(t, ok)
	assert.False(t, info.HasMostRecent)
	assert.Empty(t, info.MostRecentTitle)
}

func TestClickEarthquake_HidesOthersAndFarCities(t *testing.T) {
	quakes := []Earthquake{
		{Location: geom.Pt(0, 0), Magnitude: 5, Depth: 10, Title: "target"},
		{Location: geom.Pt(40, 40), Magnitude: 6, Depth: 10, Title: "other"},
	}
	cities := []City{
		{Location: geom.Pt(1, 1), Name: "Close"},
		{Location: geom.Pt(10, 10), Name: "Distant"},
		{Location: geom.Pt(-1, 0.5), Name: "AlsoClose"},
	}
	a := NewAggregator(quakes, cities)

	st, ok := a.ClickEarthquake(a.Initial(), at(geom.Pt(0, 0)))
	require.True(t, ok)
	assert.Equal(t, Ref{Kind: QuakeMarker, Index: 0}, st.Clicked)
	assert.Equal(t, []int{0}, visibleQuakes(st, 2))
	assert.Equal(t, []int{0, 2}, visibleCities(st, 3))
	assert.Equal(t, 0, st.Summary.QuakesNearby)
	assert.Equal(t, 0.0, st.Summary.AverageMagnitude)

	_, ok = a.Info(st)
	assert.False(t, ok, "no city panel after a quake click")
}

func TestClickEarthquake_ResetsPreviousCityAggregates(t *testing.T) {
	a := cityFixture()
	st := a.SelectCity(a.Initial(), 0)
	require.Equal(t, 3, st.Summary.QuakesNearby)

	st, ok := a.ClickEarthquake(st, at(geom.Pt(0.1, 0.1)))
	require.True(t, ok)
	assert.Equal(t, 0, st.Summary.QuakesNearby)
	assert.Equal(t, 0.0, st.Summary.AverageMagnitude)
	assert.Equal(t, -1, st.Summary.MostRecent)
}

func TestClick_QuakeBeatsCity(t *testing.T) {
	a := NewAggregator(
		[]Earthquake{{Location: geom.Pt(0, 0), Magnitude: 5, Depth: 10}},
		[]City{{Location: geom.Pt(0, 0), Name: "Epicenter"}},
	)
	st := a.Click(a.Initial(), at(geom.Pt(0, 0)))
	assert.Equal(t, QuakeMarker, st.Clicked.Kind)
}

func TestClick_HiddenMarkersAreNotClickable(t *testing.T) {
	a := cityFixture()
	st := a.Click(a.Initial(), at(geom.Pt(0, 0)))
	require.Equal(t, Ref{Kind: CityMarker, Index: 0}, st.Clicked)
	require.True(t, st.QuakeHidden(1))

	// the far quake at (60,60) is hidden, so this click lands on empty map
	st = a.Click(st, at(geom.Pt(60, 60)))
	assert.Equal(t, None, st.Clicked)
	assert.Len(t, visibleQuakes(st, 5), 5)
}

func TestClickEmpty_ResetsAndIsIdempotent(t *testing.T) {
	a := cityFixture()
	st := a.Click(a.Initial(), at(geom.Pt(0, 0)))
	require.Equal(t, CityMarker, st.Clicked.Kind)

	once := a.Click(st, nowhere)
	assert.Equal(t, None, once.Clicked)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visibleQuakes(once, 5))
	assert.Equal(t, []int{0, 1, 2}, visibleCities(once, 3))
	_, ok := a.Info(once)
	assert.False(t, ok)

	twice := a.ClickEmpty(once)
	assert.Equal(t, once, twice)
}

func TestClick_DoesNotMutateInputState(t *testing.T) {
	a := cityFixture()
	before := a.Initial()
	_ = a.Click(before, at(geom.Pt(0, 0)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visibleQuakes(before, 5))
	assert.Equal(t, None, before.Clicked)
}

func TestVisibilityDerivableFromClicked(t *testing.T) {
	a := cityFixture()
	st := a.Click(a.Initial(), at(geom.Pt(0, 0)))
	st = a.Hover(st, at(geom.Pt(0.1, 0.1)))
	assert.Equal(t, a.derive(State{Hovered: st.Hovered}, st.Clicked), st)
}

func TestHover(t *testing.T) {
	a := NewAggregator(
		[]Earthquake{
			{Location: geom.Pt(0, 0), Magnitude: 5, Depth: 10},
			{Location: geom.Pt(0, 0), Magnitude: 3, Depth: 10},
		},
		[]City{
			{Location: geom.Pt(0, 0), Name: "Same spot"},
			{Location: geom.Pt(20, 20), Name: "Elsewhere"},
		},
	)
	st := a.Initial()

	st = a.Hover(st, at(geom.Pt(0, 0)))
	assert.Equal(t, Ref{Kind: QuakeMarker, Index: 0}, st.Hovered, "first quake wins over later quake and city")

	st = a.Hover(st, at(geom.Pt(20, 20)))
	assert.Equal(t, Ref{Kind: CityMarker, Index: 1}, st.Hovered)

	st = a.Hover(st, nowhere)
	assert.Equal(t, None, st.Hovered)
	assert.Equal(t, None, st.Clicked)
}

func TestHover_SkipsHiddenAndKeepsVisibility(t *testing.T) {
	a := cityFixture()
	st := a.SelectCity(a.Initial(), 0)

	hovered := a.Hover(st, at(geom.Pt(60, 60)))
	assert.Equal(t, None, hovered.Hovered, "hidden quake cannot be hovered")

	hovered = a.Hover(st, at(geom.Pt(0.1, 0.1)))
	assert.Equal(t, Ref{Kind: QuakeMarker, Index: 0}, hovered.Hovered)
	assert.Equal(t, st.Summary, hovered.Summary)
	assert.Equal(t, visibleQuakes(st, 5), visibleQuakes(hovered, 5))
	assert.Equal(t, visibleCities(st, 3), visibleCities(hovered, 3))
}

func TestClick_DropsHoverOnHiddenMarker(t *testing.T) {
	a := cityFixture()
	st := a.Hover(a.Initial(), at(geom.Pt(30, 30)))
	require.Equal(t, Ref{Kind: CityMarker, Index: 1}, st.Hovered)

	st = a.SelectCity(st, 0)
	assert.Equal(t, None, st.Hovered)
}

func TestSelectCity_OutOfRange(t *testing.T) {
	a := cityFixture()
	st := a.Initial()
	assert.Equal(t, st, a.SelectCity(st, -1))
	assert.Equal(t, st, a.SelectCity(st, 3))
}

func TestZeroStateIsAllVisible(t *testing.T) {
	var st State
	assert.False(t, st.QuakeHidden(0))
	assert.False(t, st.CityHidden(7))
	assert.False(t, st.Hidden(None))
}
