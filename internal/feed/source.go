// Package feed turns country borders, city lists and earthquake feeds into the
// in-memory records used by the map.
package feed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// readAll fetches src, which is either a local path or an http(s) URL.
func readAll(ctx context.Context, src string) ([]byte, error) {
	if !isURL(src) {
		b, err := os.ReadFile(src)
		if err != nil {
			return nil, eris.Wrapf(err, "feed: read %s", src)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, eris.Wrapf(err, "feed: build request %s", src)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "feed: fetch %s", src)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("feed: fetch %s: status %d", src, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "feed: read body %s", src)
	}
	zap.L().Debug("feed: fetched", zap.String("src", src), zap.Int("bytes", len(b)))
	return b, nil
}

// readFeatures decodes a GeoJSON FeatureCollection from src.
func readFeatures(ctx context.Context, src string) ([]*geojson.Feature, error) {
	b, err := readAll(ctx, src)
	if err != nil {
		return nil, err
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(b, &fc); err != nil {
		return nil, eris.Wrapf(err, "feed: decode geojson %s", src)
	}
	return fc.Features, nil
}

// stringProp returns a string property or "".
func stringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// floatProp returns a numeric property. Numbers encoded as strings are accepted.
func floatProp(props map[string]interface{}, key string) (float64, bool) {
	switch v := props[key].(type) {
	case float64:
		return v, true
	case string:
		return parseFloat(v)
	}
	return 0, false
}
