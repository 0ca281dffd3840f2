package feed

import (
	"context"
	"math"
	"time"

	gogeom "github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"quakemap/internal/geom"
	"quakemap/internal/quake"
)

// LoadQuakes reads a USGS style GeoJSON summary feed: Point geometry
// [lon, lat, depth], properties mag, title, time (ms since epoch) and an optional
// age label. Missing magnitude or depth is kept as NaN so classification can
// reject the record.
func LoadQuakes(ctx context.Context, src string, now time.Time) ([]quake.Earthquake, error) {
	features, err := readFeatures(ctx, src)
	if err != nil {
		return nil, err
	}
	quakes := make([]quake.Earthquake, 0, len(features))
	for i, f := range features {
		p, ok := f.Geometry.(*gogeom.Point)
		if !ok || len(p.FlatCoords()) < 2 {
			zap.L().Debug("feed: skipping quake without point", zap.Int("feature", i), zap.String("id", f.ID))
			continue
		}
		quakes = append(quakes, quakeFrom(p.FlatCoords(), f.Properties, now))
	}
	zap.L().Debug("feed: loaded quakes", zap.String("src", src), zap.Int("count", len(quakes)))
	return quakes, nil
}

func quakeFrom(flat []float64, props map[string]interface{}, now time.Time) quake.Earthquake {
	q := quake.Earthquake{
		Location:  geom.Pt(flat[1], flat[0]),
		Magnitude: math.NaN(),
		Depth:     math.NaN(),
		Title:     stringProp(props, "title"),
		Age:       quake.Older,
	}
	if m, ok := floatProp(props, "mag"); ok {
		q.Magnitude = m
	} else if m, ok := floatProp(props, "magnitude"); ok {
		q.Magnitude = m
	}
	if len(flat) >= 3 {
		q.Depth = flat[2]
	} else if d, ok := floatProp(props, "depth"); ok {
		q.Depth = d
	}
	if ms, ok := floatProp(props, "time"); ok {
		q.Time = time.UnixMilli(int64(ms)).UTC()
	}
	switch label := stringProp(props, "age"); {
	case label != "":
		q.Age = quake.ParseAge(label)
	case !q.Time.IsZero():
		q.Age = quake.AgeAt(q.Time, now)
	}
	return q
}
