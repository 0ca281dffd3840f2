package feed

import (
	"context"

	"github.com/rotisserie/eris"
	gogeom "github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"quakemap/internal/geom"
	"quakemap/internal/quake"
)

// LoadCountries reads a GeoJSON FeatureCollection of Polygon / MultiPolygon features
// with a "name" property. Only outer rings are kept. A ring with fewer than three
// vertices fails the whole load with geom.ErrInvalidGeometry.
func LoadCountries(ctx context.Context, src string) ([]quake.Country, error) {
	features, err := readFeatures(ctx, src)
	if err != nil {
		return nil, err
	}
	countries := make([]quake.Country, 0, len(features))
	for i, f := range features {
		name := stringProp(f.Properties, "name")
		if name == "" {
			name = f.ID
		}
		if name == "" {
			return nil, eris.Wrapf(quake.ErrInvalidCountry, "feed: country feature %d has neither name nor id", i)
		}
		if f.Geometry == nil {
			zap.L().Debug("feed: country without geometry", zap.Int("feature", i), zap.String("name", name))
			continue
		}
		shape, err := shapeOf(f.Geometry)
		if err != nil {
			return nil, eris.Wrapf(err, "feed: country %q (feature %d)", name, i)
		}
		countries = append(countries, quake.Country{Name: name, Shape: shape})
	}
	zap.L().Debug("feed: loaded countries", zap.String("src", src), zap.Int("count", len(countries)))
	return countries, nil
}

func shapeOf(g gogeom.T) (geom.Shape, error) {
	switch t := g.(type) {
	case *gogeom.Polygon:
		r, err := outerRing(t)
		if err != nil {
			return geom.Shape{}, err
		}
		return geom.Simple(r)
	case *gogeom.MultiPolygon:
		rings := make([]geom.Ring, 0, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			r, err := outerRing(t.Polygon(i))
			if err != nil {
				return geom.Shape{}, eris.Wrapf(err, "polygon %d", i)
			}
			rings = append(rings, r)
		}
		return geom.Compound(rings...)
	}
	return geom.Shape{}, eris.Wrapf(geom.ErrInvalidGeometry, "unsupported geometry %T", g)
}

func outerRing(p *gogeom.Polygon) (geom.Ring, error) {
	if p.NumLinearRings() == 0 {
		return geom.NewRing(nil)
	}
	coords := p.LinearRing(0).Coords()
	pts := make([]geom.Point, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, geom.Pt(c[1], c[0]))
	}
	return geom.NewRing(pts)
}
