package quake

import (
	"go.uber.org/zap"

	"quakemap/internal/geom"
)

// MarkerKind says which collection a Ref points into.
type MarkerKind int

const (
	NoMarker MarkerKind = iota
	QuakeMarker
	CityMarker
)

func (k MarkerKind) String() string {
	switch k {
	case QuakeMarker:
		return "quake"
	case CityMarker:
		return "city"
	}
	return "none"
}

// Ref identifies one marker by kind and index.
type Ref struct {
	Kind  MarkerKind
	Index int
}

// None is the empty Ref.
var None = Ref{}

// Probe is the caller's hit-test: it reports whether the marker drawn for loc is
// under the cursor.
type Probe func(loc geom.Point) bool

// Summary holds the aggregates shown for the last clicked city.
type Summary struct {
	QuakesNearby     int
	AverageMagnitude float64
	MostRecent       int // quake index, -1 when none
}

// State is the full interaction state. It is a value: handlers return a new State
// and never modify the one passed in. The zero State has everything visible.
type State struct {
	Hovered Ref
	Clicked Ref
	Summary Summary

	hiddenQuakes []bool
	hiddenCities []bool
}

// QuakeHidden reports whether quake i is hidden.
func (s State) QuakeHidden(i int) bool { return i < len(s.hiddenQuakes) && s.hiddenQuakes[i] }

// CityHidden reports whether city i is hidden.
func (s State) CityHidden(i int) bool { return i < len(s.hiddenCities) && s.hiddenCities[i] }

// Hidden reports whether the referenced marker is hidden.
func (s State) Hidden(r Ref) bool {
	switch r.Kind {
	case QuakeMarker:
		return s.QuakeHidden(r.Index)
	case CityMarker:
		return s.CityHidden(r.Index)
	}
	return false
}

// Info is the read-only panel content for the last clicked city.
type Info struct {
	City             string
	QuakesNearby     int
	AverageMagnitude float64
	MostRecentTitle  string
	HasMostRecent    bool
}

// Aggregator owns the marker arena and derives visibility and aggregates from a State.
// It is not safe for concurrent use; it is driven from a single UI loop.
type Aggregator struct {
	quakes []Earthquake
	cities []City
}

// NewAggregator takes classified quakes and cities. The slices must not be modified
// afterwards.
func NewAggregator(quakes []Earthquake, cities []City) *Aggregator {
	return &Aggregator{quakes: quakes, cities: cities}
}

func (a *Aggregator) Quakes() []Earthquake { return a.quakes }
func (a *Aggregator) Cities() []City       { return a.cities }

// Initial returns the state with nothing clicked and every marker visible.
func (a *Aggregator) Initial() State {
	return a.derive(State{}, None)
}

// Hover finds the first visible marker under the probe, quakes before cities, and
// makes it the only hovered marker. Visibility and aggregates are left alone.
func (a *Aggregator) Hover(st State, probe Probe) State {
	st.Hovered = None
	for i, q := range a.quakes {
		if !st.QuakeHidden(i) && probe(q.Location) {
			st.Hovered = Ref{Kind: QuakeMarker, Index: i}
			return st
		}
	}
	for i, c := range a.cities {
		if !st.CityHidden(i) && probe(c.Location) {
			st.Hovered = Ref{Kind: CityMarker, Index: i}
			return st
		}
	}
	return st
}

// Click resolves a click: a visible quake wins over a visible city; clicking neither
// resets the map.
func (a *Aggregator) Click(st State, probe Probe) State {
	if next, ok := a.ClickEarthquake(st, probe); ok {
		return next
	}
	if next, ok := a.ClickCity(st, probe); ok {
		return next
	}
	return a.ClickEmpty(st)
}

// ClickEarthquake selects the first visible quake under the probe. All other quakes
// are hidden and only cities inside its threat circle stay visible.
func (a *Aggregator) ClickEarthquake(st State, probe Probe) (State, bool) {
	for i, q := range a.quakes {
		if st.QuakeHidden(i) || !probe(q.Location) {
			continue
		}
		zap.L().Debug("quake: clicked", zap.Int("index", i), zap.String("title", q.Title))
		return a.derive(st, Ref{Kind: QuakeMarker, Index: i}), true
	}
	return st, false
}

// ClickCity selects the first visible city under the probe. All other cities are
// hidden, quakes whose threat circle misses the city are hidden, and the nearby
// aggregates are computed.
func (a *Aggregator) ClickCity(st State, probe Probe) (State, bool) {
	for i, c := range a.cities {
		if st.CityHidden(i) || !probe(c.Location) {
			continue
		}
		return a.SelectCity(st, i), true
	}
	return st, false
}

// SelectCity behaves like clicking city i, regardless of its current visibility.
func (a *Aggregator) SelectCity(st State, i int) State {
	if i < 0 || i >= len(a.cities) {
		return st
	}
	next := a.derive(st, Ref{Kind: CityMarker, Index: i})
	zap.L().Debug("quake: city selected",
		zap.String("city", a.cities[i].Name),
		zap.Int("nearby", next.Summary.QuakesNearby),
		zap.Float64("avg_magnitude", next.Summary.AverageMagnitude),
	)
	return next
}

// ClickEmpty shows every marker and clears the clicked marker.
func (a *Aggregator) ClickEmpty(st State) State {
	return a.derive(st, None)
}

// Info returns the panel content when a city is the clicked marker.
func (a *Aggregator) Info(st State) (Info, bool) {
	if st.Clicked.Kind != CityMarker || st.Clicked.Index >= len(a.cities) {
		return Info{}, false
	}
	info := Info{
		City:             a.cities[st.Clicked.Index].Name,
		QuakesNearby:     st.Summary.QuakesNearby,
		AverageMagnitude: st.Summary.AverageMagnitude,
	}
	if mr := st.Summary.MostRecent; mr >= 0 && mr < len(a.quakes) {
		info.MostRecentTitle = a.quakes[mr].Title
		info.HasMostRecent = true
	}
	return info, true
}

// derive rebuilds visibility and aggregates from scratch for the clicked marker.
// Fresh slices are allocated so earlier States stay valid.
func (a *Aggregator) derive(st State, clicked Ref) State {
	next := State{
		Hovered:      st.Hovered,
		Clicked:      clicked,
		Summary:      Summary{MostRecent: -1},
		hiddenQuakes: make([]bool, len(a.quakes)),
		hiddenCities: make([]bool, len(a.cities)),
	}

	switch clicked.Kind {
	case QuakeMarker:
		q := a.quakes[clicked.Index]
		for i := range a.quakes {
			next.hiddenQuakes[i] = i != clicked.Index
		}
		for i, c := range a.cities {
			next.hiddenCities[i] = !Threatens(q, c.Location)
		}
	case CityMarker:
		c := a.cities[clicked.Index]
		for i := range a.cities {
			next.hiddenCities[i] = i != clicked.Index
		}
		var sum float64
		for i, q := range a.quakes {
			if !Threatens(q, c.Location) {
				next.hiddenQuakes[i] = true
				continue
			}
			next.Summary.QuakesNearby++
			sum += q.Magnitude
			if next.Summary.MostRecent < 0 || q.Age == PastHour {
				next.Summary.MostRecent = i
			}
		}
		if next.Summary.QuakesNearby > 0 {
			next.Summary.AverageMagnitude = sum / float64(next.Summary.QuakesNearby)
		}
	}

	if next.Hidden(next.Hovered) {
		next.Hovered = None
	}
	return next
}
