package feed

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	gogeom "github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"quakemap/internal/geom"
	"quakemap/internal/quake"
)

// LoadCities reads cities from a GeoJSON FeatureCollection of Points (properties
// name, country, population) or, for a .csv source, from a table with
// latitude/longitude/name columns.
func LoadCities(ctx context.Context, src string) ([]quake.City, error) {
	if strings.EqualFold(filepath.Ext(src), ".csv") {
		b, err := readAll(ctx, src)
		if err != nil {
			return nil, err
		}
		return parseCitiesCSV(b)
	}

	features, err := readFeatures(ctx, src)
	if err != nil {
		return nil, err
	}
	cities := make([]quake.City, 0, len(features))
	for i, f := range features {
		p, ok := f.Geometry.(*gogeom.Point)
		if !ok || len(p.FlatCoords()) < 2 {
			zap.L().Debug("feed: skipping non-point city", zap.Int("feature", i))
			continue
		}
		flat := p.FlatCoords()
		c := quake.City{
			Location: geom.Pt(flat[1], flat[0]),
			Name:     stringProp(f.Properties, "name"),
			Country:  stringProp(f.Properties, "country"),
		}
		if pop, ok := floatProp(f.Properties, "population"); ok {
			c.Population = pop
		}
		cities = append(cities, c)
	}
	zap.L().Debug("feed: loaded cities", zap.String("src", src), zap.Int("count", len(cities)))
	return cities, nil
}

// parseCitiesCSV detects columns by header name (case-insensitive):
// lat|latitude|y, lon|lng|long|longitude|x, name|city, country, population.
// Rows with unparsable coordinates are skipped.
func parseCitiesCSV(b []byte) ([]quake.City, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "feed: parse cities csv")
	}
	if len(recs) == 0 {
		return nil, eris.New("feed: empty cities csv")
	}
	idxLat, idxLon, idxName, idxCountry, idxPop := -1, -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "name", "city":
			if idxName == -1 {
				idxName = i
			}
		case "country":
			idxCountry = i
		case "population":
			idxPop = i
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, eris.New("feed: cities csv: latitude/longitude columns not found")
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var cities []quake.City
	for _, row := range recs[1:] {
		lat, ok1 := parseFloat(cell(row, idxLat))
		lon, ok2 := parseFloat(cell(row, idxLon))
		if !ok1 || !ok2 {
			continue
		}
		c := quake.City{
			Location: geom.Pt(lat, lon),
			Name:     cell(row, idxName),
			Country:  cell(row, idxCountry),
		}
		if pop, ok := parseFloat(cell(row, idxPop)); ok {
			c.Population = pop
		}
		cities = append(cities, c)
	}
	if len(cities) == 0 {
		return nil, eris.New("feed: cities csv: no valid rows")
	}
	return cities, nil
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
