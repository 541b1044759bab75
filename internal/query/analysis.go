package query

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Coolixy/FloatChat/internal/model"
	"github.com/Coolixy/FloatChat/internal/reference"
)

// analysisKeywords maps query language to an analysis type. Checked in
// this order; the first hit wins.
var analysisKeywords = []struct {
	words []string
	typ   model.AnalysisType
}{
	{[]string{"worst", "dangerous", "bad", "avoid"}, model.AnalysisRisk},
	{[]string{"best", "good", "ideal", "safe"}, model.AnalysisFavorable},
	{[]string{"extreme", "highest", "lowest", "maximum", "minimum"}, model.AnalysisExtreme},
	{[]string{"compare", "difference", "vs"}, model.AnalysisComparison},
}

// ClassifyAnalysis determines what type of analysis a query wants.
func ClassifyAnalysis(q string) model.AnalysisType {
	lower := strings.ToLower(q)
	for _, entry := range analysisKeywords {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.typ
			}
		}
	}
	return model.AnalysisGeneral
}

// extremeLabels names the min/max ends of each parameter's extreme-location
// label.
var extremeLabels = map[string][2]string{
	model.ParamTemperature:     {"Coldest", "Hottest"},
	model.ParamSalinity:        {"Freshest", "Saltiest"},
	model.ParamPressure:        {"Lowest", "Highest"},
	model.ParamDissolvedOxygen: {"Lowest", "Highest"},
}

// parameterOrder fixes the iteration order over measurement parameters so
// context construction is deterministic.
var parameterOrder = []string{
	model.ParamTemperature,
	model.ParamSalinity,
	model.ParamPressure,
	model.ParamDissolvedOxygen,
}

func parameterValue(p model.Profile, param string) *float64 {
	switch param {
	case model.ParamTemperature:
		return p.Temperature
	case model.ParamSalinity:
		return p.Salinity
	case model.ParamPressure:
		return p.Pressure
	case model.ParamDissolvedOxygen:
		return p.DissolvedOxygen
	}
	return nil
}

// BuildContext turns fetched records into the statistical summary the
// answer assembler consumes. Nil measurement values are excluded from
// statistics, never coerced to zero. Given identical records the output
// is identical.
func BuildContext(records []model.Profile, q string, ref *reference.Tables) *model.AnalysisContext {
	ctx := &model.AnalysisContext{
		Query:        q,
		TotalRecords: len(records),
		Type:         ClassifyAnalysis(q),
		Parameters:   map[string]model.ParameterStats{},
		Regional:     map[string]model.StationRollup{},
	}

	seen := map[string]struct{}{}
	for _, r := range records {
		if r.WMO != "" {
			seen[r.WMO] = struct{}{}
		}
	}
	ctx.UniqueFloats = len(seen)

	for _, param := range parameterOrder {
		if stats, ok := parameterStats(records, param, ref); ok {
			ctx.Parameters[param] = stats
		}
	}

	for wmo := range seen {
		f, known := ref.Floats[wmo]
		if !known {
			continue
		}
		rollup := model.StationRollup{Region: f.Region}
		var tempSum, salSum float64
		var tempN, salN int
		for _, r := range records {
			if r.WMO != wmo {
				continue
			}
			rollup.Records++
			if r.Temperature != nil {
				tempSum += *r.Temperature
				tempN++
			}
			if r.Salinity != nil {
				salSum += *r.Salinity
				salN++
			}
		}
		if tempN > 0 {
			avg := tempSum / float64(tempN)
			rollup.AvgTemperature = &avg
		}
		if salN > 0 {
			avg := salSum / float64(salN)
			rollup.AvgSalinity = &avg
		}
		ctx.Regional[wmo] = rollup
	}

	return ctx
}

// parameterStats computes mean/min/max/stddev and the extreme-location
// label for one parameter. Returns ok=false when no record carries a
// value.
func parameterStats(records []model.Profile, param string, ref *reference.Tables) (model.ParameterStats, bool) {
	var (
		values         []float64
		sum            float64
		minVal, maxVal float64
		minWMO, maxWMO string
	)
	for _, r := range records {
		v := parameterValue(r, param)
		if v == nil {
			continue
		}
		// Strict comparisons keep the first occurrence of each extreme.
		if len(values) == 0 || *v < minVal {
			minVal = *v
			minWMO = r.WMO
		}
		if len(values) == 0 || *v > maxVal {
			maxVal = *v
			maxWMO = r.WMO
		}
		values = append(values, *v)
		sum += *v
	}
	if len(values) == 0 {
		return model.ParameterStats{}, false
	}

	stats := model.ParameterStats{
		Count: len(values),
		Min:   minVal,
		Max:   maxVal,
		Mean:  sum / float64(len(values)),
	}

	if len(values) > 1 {
		var ss float64
		for _, v := range values {
			d := v - stats.Mean
			ss += d * d
		}
		stats.StdDev = math.Sqrt(ss / float64(len(values)-1))
	}

	labels := extremeLabels[param]
	stats.ExtremeLocations = fmt.Sprintf("%s: %s, %s: %s",
		labels[1], ref.Region(maxWMO), labels[0], ref.Region(minWMO))

	return stats, true
}

// sortedRollupWMOs returns the rollup keys in ascending order for
// deterministic iteration.
func sortedRollupWMOs(ctx *model.AnalysisContext) []string {
	wmos := make([]string, 0, len(ctx.Regional))
	for wmo := range ctx.Regional {
		wmos = append(wmos, wmo)
	}
	sort.Strings(wmos)
	return wmos
}
