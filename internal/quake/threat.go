package quake

import (
	"math"

	"quakemap/internal/geom"
)

const (
	earthRadiusKM = 6371.0

	// ThreatRadius = threatBaseKM * threatGrowth^(2*magnitude - 5) * e^(-depth/threatAttenuationKM)
	threatBaseKM        = 20.0
	threatGrowth        = 1.8
	threatAttenuationKM = 300.0
)

// ThreatRadius returns the distance (km) within which a place is considered affected
// by e. It grows with magnitude and shrinks with depth, and is always positive.
func ThreatRadius(e Earthquake) float64 {
	return threatBaseKM * math.Pow(threatGrowth, 2*e.Magnitude-5) * math.Exp(-e.Depth/threatAttenuationKM)
}

// ThreatRadius is the method form of the package-level ThreatRadius.
func (e Earthquake) ThreatRadius() float64 { return ThreatRadius(e) }

// Distance returns the great-circle (haversine) distance between a and b in km.
func Distance(a, b geom.Point) float64 {
	if a == b {
		return 0
	}
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon
	h = math.Min(1, math.Max(0, h))
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

// Threatens reports whether loc lies inside e's threat circle. The circle edge counts.
func Threatens(e Earthquake, loc geom.Point) bool {
	return Distance(loc, e.Location) <= ThreatRadius(e)
}
