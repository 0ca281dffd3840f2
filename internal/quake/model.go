// Package quake holds the earthquake and city records shown on the map, the threat
// circle model, land/ocean classification and the click-driven selection logic.
package quake

import (
	"math"
	"strings"
	"time"

	"quakemap/internal/geom"
)

// Age buckets an event by how long ago it happened.
type Age int

const (
	PastHour Age = iota
	PastDay
	PastWeek
	Older
)

func (a Age) String() string {
	switch a {
	case PastHour:
		return "Past Hour"
	case PastDay:
		return "Past Day"
	case PastWeek:
		return "Past Week"
	}
	return "Older"
}

// ParseAge maps a feed age label ("Past Hour", "past_day", ...) to an Age.
// Unknown labels fall into Older.
func ParseAge(s string) Age {
	norm := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s)))
	switch norm {
	case "past hour":
		return PastHour
	case "past day":
		return PastDay
	case "past week":
		return PastWeek
	}
	return Older
}

// AgeAt buckets an event time relative to now.
func AgeAt(event, now time.Time) Age {
	d := now.Sub(event)
	switch {
	case d < time.Hour:
		return PastHour
	case d < 24*time.Hour:
		return PastDay
	case d < 7*24*time.Hour:
		return PastWeek
	}
	return Older
}

// DepthClass groups hypocenter depths for display.
type DepthClass int

const (
	Shallow DepthClass = iota
	Intermediate
	Deep
)

// Depth thresholds (km).
const (
	shallowMaxKM      = 70.0
	intermediateMaxKM = 300.0
)

func (c DepthClass) String() string {
	switch c {
	case Shallow:
		return "Shallow"
	case Intermediate:
		return "Intermediate"
	}
	return "Deep"
}

// Earthquake is one event from the feed. Magnitude and Depth are NaN when the feed
// omitted them; Classify rejects such records. OnLand and Country are set by Classify.
type Earthquake struct {
	Location  geom.Point
	Magnitude float64
	Depth     float64 // km
	Age       Age
	Title     string
	Time      time.Time

	OnLand  bool
	Country string
}

// DepthClass returns the display bucket for the quake depth.
func (e Earthquake) DepthClass() DepthClass {
	switch {
	case e.Depth < shallowMaxKM:
		return Shallow
	case e.Depth < intermediateMaxKM:
		return Intermediate
	}
	return Deep
}

func (e Earthquake) valid() bool {
	return !math.IsNaN(e.Magnitude) && !math.IsNaN(e.Depth) &&
		!math.IsInf(e.Magnitude, 0) && !math.IsInf(e.Depth, 0)
}

// City is a named place that can be clicked to inspect nearby quakes.
type City struct {
	Location   geom.Point
	Name       string
	Country    string
	Population float64 // millions, 0 if unknown
}

// Country is a named region used to label land quakes.
type Country struct {
	Name  string
	Shape geom.Shape
}

// Contains reports whether p falls inside the country's borders.
func (c Country) Contains(p geom.Point) bool { return c.Shape.Contains(p) }
