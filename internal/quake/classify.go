package quake

import (
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrInvalidEarthquakeData is returned when a quake lacks the magnitude or depth
// needed for its threat radius.
var ErrInvalidEarthquakeData = eris.New("invalid earthquake data")

// ErrInvalidCountry is returned for a country without a name. Land quakes carry the
// country name, so an empty one would be indistinguishable from ocean.
var ErrInvalidCountry = eris.New("invalid country")

// Classify labels every quake as land (first containing country wins, in the given
// order) or ocean. All quakes and countries are validated before any quake is
// modified, so on error the slice is left untouched.
func Classify(quakes []Earthquake, countries []Country) error {
	for i, c := range countries {
		if c.Name == "" {
			return eris.Wrapf(ErrInvalidCountry, "quake: classify country #%d has no name", i)
		}
	}
	for i, q := range quakes {
		if !q.valid() {
			return eris.Wrapf(ErrInvalidEarthquakeData, "quake: classify #%d %q: magnitude=%v depth=%v",
				i, q.Title, q.Magnitude, q.Depth)
		}
	}

	land := 0
	for i := range quakes {
		q := &quakes[i]
		q.OnLand, q.Country = false, ""
		for _, c := range countries {
			if c.Contains(q.Location) {
				q.OnLand, q.Country = true, c.Name
				land++
				break
			}
		}
	}
	zap.L().Debug("quake: classified",
		zap.Int("quakes", len(quakes)),
		zap.Int("countries", len(countries)),
		zap.Int("land", land),
		zap.Int("ocean", len(quakes)-land),
	)
	return nil
}

// CountryCount is the number of land quakes attributed to one country.
type CountryCount struct {
	Country string
	Quakes  int
}

// Tally summarizes classified quakes per country.
type Tally struct {
	Countries []CountryCount // country order, zero counts omitted
	Ocean     int
}

// TallyByCountry counts classified quakes per country, keeping the order of
// countries. Countries without quakes are left out.
func TallyByCountry(quakes []Earthquake, countries []Country) Tally {
	perCountry := make(map[string]int)
	var t Tally
	for _, q := range quakes {
		if q.OnLand {
			perCountry[q.Country]++
		} else {
			t.Ocean++
		}
	}
	seen := make(map[string]bool)
	for _, c := range countries {
		n := perCountry[c.Name]
		if n == 0 || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		t.Countries = append(t.Countries, CountryCount{Country: c.Name, Quakes: n})
	}
	return t
}

// ByMagnitude returns indices of quakes ordered by magnitude, largest first. Ties
// keep feed order. n <= 0 or n > len(quakes) returns every index.
func ByMagnitude(quakes []Earthquake, n int) []int {
	idx := make([]int, len(quakes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return quakes[idx[a]].Magnitude > quakes[idx[b]].Magnitude
	})
	if n > 0 && n < len(idx) {
		idx = idx[:n]
	}
	return idx
}
