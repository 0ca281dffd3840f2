package feed

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quakemap/internal/quake"
)

// Sources names where each input comes from. Each is a path or an http(s) URL.
type Sources struct {
	Countries string
	Cities    string
	Quakes    string
	Timeout   time.Duration
}

// Dataset is everything the map needs, with quakes already classified.
type Dataset struct {
	Countries []quake.Country
	Cities    []quake.City
	Quakes    []quake.Earthquake
}

// Load reads the three inputs concurrently, then classifies the quakes against the
// countries in file order.
func Load(ctx context.Context, src Sources, now time.Time) (*Dataset, error) {
	if src.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, src.Timeout)
		defer cancel()
	}

	var ds Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.Countries, err = LoadCountries(gctx, src.Countries)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Cities, err = LoadCities(gctx, src.Cities)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Quakes, err = LoadQuakes(gctx, src.Quakes, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := quake.Classify(ds.Quakes, ds.Countries); err != nil {
		return nil, err
	}
	zap.L().Info("feed: dataset ready",
		zap.Int("countries", len(ds.Countries)),
		zap.Int("cities", len(ds.Cities)),
		zap.Int("quakes", len(ds.Quakes)),
	)
	return &ds, nil
}
