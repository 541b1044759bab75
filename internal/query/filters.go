package query

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Coolixy/FloatChat/internal/model"
)

var (
	// Decimal-degree pair with optional hemisphere letters, e.g.
	// "10.5 S, 78.1 E" or "17.3°N 89.7°E". First match in the text wins.
	coordRe = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*°?\s*([ns])?,?\s*(\d{1,3}(?:\.\d+)?)\s*°?\s*([ew])?`)

	// "last N day|week|month|year(s)" relative windows.
	relativeDateRe = regexp.MustCompile(`last\s+(\d+)\s+(day|week|month|year)s?`)

	// Calendar years the network has data for.
	yearRe = regexp.MustCompile(`\b(20(?:19|20|21|22|23|24))\b`)
)

const dateLayout = "2006-01-02"

// ExtractFilters builds a FilterSpec from whatever the query text yields.
// Malformed or absent pieces simply leave their field unset.
func ExtractFilters(q string) model.FilterSpec {
	return extractFiltersAt(q, time.Now())
}

func extractFiltersAt(q string, now time.Time) model.FilterSpec {
	lower := strings.ToLower(q)
	var f model.FilterSpec

	if m := coordRe.FindStringSubmatch(lower); m != nil {
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lon, lonErr := strconv.ParseFloat(m[3], 64)
		if latErr == nil && lonErr == nil {
			if m[2] == "s" {
				lat = -lat
			}
			if m[4] == "w" {
				lon = -lon
			}
			f.Coordinates = &model.Coordinates{Lat: lat, Lon: lon}
		}
	}

	if m := relativeDateRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			var start time.Time
			switch m[2] {
			case "day":
				start = now.AddDate(0, 0, -n)
			case "week":
				start = now.AddDate(0, 0, -7*n)
			case "month":
				start = now.AddDate(0, 0, -30*n)
			case "year":
				start = now.AddDate(0, 0, -365*n)
			}
			f.DateRange = &model.DateRange{
				Start: start.Format(dateLayout),
				End:   now.Format(dateLayout),
			}
		}
	}

	if strings.Contains(lower, "bgc") || strings.Contains(lower, "oxygen") {
		f.OxygenRequired = true
	}

	// Sort hints are plain substring checks; the last matching rule wins
	// when phrasings overlap.
	if strings.Contains(lower, "lowest salinity") {
		f.SortBy = &model.SortSpec{Parameter: model.ParamSalinity}
	}
	if strings.Contains(lower, "warmest") || strings.Contains(lower, "highest temp") {
		f.SortBy = &model.SortSpec{Parameter: model.ParamTemperature, Descending: true}
	}
	if strings.Contains(lower, "coldest") || strings.Contains(lower, "lowest temp") {
		f.SortBy = &model.SortSpec{Parameter: model.ParamTemperature}
	}

	return f
}

// analysisFilters extends the extracted filters with the coarse hints the
// analytical path uses: a named calendar year becomes a full-year window
// and the first mentioned parameter becomes the fetch focus.
func analysisFilters(q string) model.FilterSpec {
	lower := strings.ToLower(q)
	f := ExtractFilters(q)

	if f.DateRange == nil {
		if m := yearRe.FindStringSubmatch(lower); m != nil {
			f.DateRange = &model.DateRange{Start: m[1] + "-01-01", End: m[1] + "-12-31"}
		}
	}

	switch {
	case strings.Contains(lower, "temperature") || strings.Contains(lower, "temp"):
		f.ParameterFocus = model.ParamTemperature
	case strings.Contains(lower, "salinity") || strings.Contains(lower, "salt"):
		f.ParameterFocus = model.ParamSalinity
	case strings.Contains(lower, "oxygen"):
		f.ParameterFocus = model.ParamDissolvedOxygen
	}

	return f
}
