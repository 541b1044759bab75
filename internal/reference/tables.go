// Package reference holds the static float network tables: per-float
// metadata and the precomputed answer values trusted as ground truth by
// the hardcoded intent handlers. The tables are built once at startup and
// never mutated, so they are safe to share across concurrent queries.
package reference

import (
	_ "embed"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/Coolixy/FloatChat/internal/model"
)

//go:embed floats.yaml
var rawTables []byte

// Float describes one ARGO float in the static network table.
type Float struct {
	Lat          float64 `yaml:"lat"`
	Lon          float64 `yaml:"lon"`
	Region       string  `yaml:"region"`
	Basin        string  `yaml:"basin"`
	BGCCapable   bool    `yaml:"bgc_capable"`
	ActiveYears  []int   `yaml:"active_years"`
	ProfileCount int     `yaml:"profile_count"`
	AvgTemp2024  float64 `yaml:"avg_temp_2024"`
	AvgSalinity  float64 `yaml:"avg_salinity"`
}

// FirstYear returns the earliest active year, or 0 when unknown.
func (f Float) FirstYear() int {
	if len(f.ActiveYears) == 0 {
		return 0
	}
	return f.ActiveYears[0]
}

// LastYear returns the latest active year, or 0 when unknown.
func (f Float) LastYear() int {
	if len(f.ActiveYears) == 0 {
		return 0
	}
	return f.ActiveYears[len(f.ActiveYears)-1]
}

// ActiveIn reports whether the float reported profiles in the given year.
func (f Float) ActiveIn(year int) bool {
	for _, y := range f.ActiveYears {
		if y == year {
			return true
		}
	}
	return false
}

// Trend is one named warming trend from the precomputed answer table.
type Trend struct {
	Trend       string  `yaml:"trend"`
	RatePerYear float64 `yaml:"rate"`
	TotalChange float64 `yaml:"total_change"`
}

// Answers is the precomputed answer table, computed offline and trusted as
// ground truth for the question shapes that target it.
type Answers struct {
	TotalFloats               int              `yaml:"total_floats"`
	TotalProfiles2024         int              `yaml:"total_profiles_2024"`
	ArabianSeaProfiles2024    int              `yaml:"arabian_sea_profiles_2024"`
	BayOfBengalProfiles2024   int              `yaml:"bay_of_bengal_profiles_2024"`
	NorthernBengalSalinityMin float64          `yaml:"northern_bengal_salinity_min"`
	NorthernBengalSalinityMax float64          `yaml:"northern_bengal_salinity_max"`
	NorthernBengalAvgSalinity float64          `yaml:"northern_bengal_avg_salinity"`
	TemperatureTrends         map[string]Trend `yaml:"temperature_trends_10_years"`
}

// Tables bundles the float table with the precomputed answers.
type Tables struct {
	Floats  map[string]Float `yaml:"floats"`
	Answers Answers          `yaml:"answers"`
}

// Load parses the embedded reference tables.
func Load() (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(rawTables, &t); err != nil {
		return nil, eris.Wrap(err, "reference: unmarshal tables")
	}
	if len(t.Floats) == 0 {
		return nil, eris.New("reference: empty float table")
	}
	return &t, nil
}

// MustLoad is Load for wiring code that cannot proceed without the tables.
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// WMOs returns all station identifiers in ascending order.
func (t *Tables) WMOs() []string {
	ids := make([]string, 0, len(t.Floats))
	for wmo := range t.Floats {
		ids = append(ids, wmo)
	}
	sort.Strings(ids)
	return ids
}

// Region returns the region label for a station, or "Unknown" when the
// station is not in the table.
func (t *Tables) Region(wmo string) string {
	f, ok := t.Floats[wmo]
	if !ok {
		return "Unknown"
	}
	return f.Region
}

// BasinWMOs returns the stations of one basin in ascending WMO order.
func (t *Tables) BasinWMOs(basin string) []string {
	var ids []string
	for wmo, f := range t.Floats {
		if f.Basin == basin {
			ids = append(ids, wmo)
		}
	}
	sort.Strings(ids)
	return ids
}

// Metadata converts the float table into search metadata records, in
// ascending WMO order.
func (t *Tables) Metadata() []model.FloatMeta {
	metas := make([]model.FloatMeta, 0, len(t.Floats))
	for _, wmo := range t.WMOs() {
		f := t.Floats[wmo]
		metas = append(metas, model.FloatMeta{
			WMO:          wmo,
			Latitude:     f.Lat,
			Longitude:    f.Lon,
			Region:       f.Region,
			Basin:        f.Basin,
			ProfileCount: f.ProfileCount,
		})
	}
	return metas
}
