package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coolixy/FloatChat/internal/model"
)

func TestExtractCoordinates(t *testing.T) {
	f := ExtractFilters("profiles near 10.5s, 78.1e")
	require.NotNil(t, f.Coordinates)
	assert.InDelta(t, -10.5, f.Coordinates.Lat, 0.001)
	assert.InDelta(t, 78.1, f.Coordinates.Lon, 0.001)

	f = ExtractFilters("data at 17.3°N 89.7°E")
	require.NotNil(t, f.Coordinates)
	assert.InDelta(t, 17.3, f.Coordinates.Lat, 0.001)
	assert.InDelta(t, 89.7, f.Coordinates.Lon, 0.001)
}

func TestExtractCoordinatesWesternHemisphere(t *testing.T) {
	f := ExtractFilters("floats around 12n 45w")
	require.NotNil(t, f.Coordinates)
	assert.InDelta(t, 12, f.Coordinates.Lat, 0.001)
	assert.InDelta(t, -45, f.Coordinates.Lon, 0.001)
}

func TestExtractRelativeWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	f := extractFiltersAt("data from the last 2 weeks", now)
	require.NotNil(t, f.DateRange)
	assert.Equal(t, "2024-06-01", f.DateRange.Start)
	assert.Equal(t, "2024-06-15", f.DateRange.End)

	f = extractFiltersAt("show the last 1 month of salinity", now)
	require.NotNil(t, f.DateRange)
	assert.Equal(t, "2024-05-16", f.DateRange.Start)
}

func TestExtractOxygenFlag(t *testing.T) {
	assert.True(t, ExtractFilters("dissolved oxygen readings").OxygenRequired)
	assert.True(t, ExtractFilters("bgc float data").OxygenRequired)
	assert.False(t, ExtractFilters("temperature data").OxygenRequired)
}

func TestExtractSortHints(t *testing.T) {
	f := ExtractFilters("where is the lowest salinity")
	require.NotNil(t, f.SortBy)
	assert.Equal(t, model.ParamSalinity, f.SortBy.Parameter)
	assert.False(t, f.SortBy.Descending)

	f = ExtractFilters("warmest waters this year")
	require.NotNil(t, f.SortBy)
	assert.Equal(t, model.ParamTemperature, f.SortBy.Parameter)
	assert.True(t, f.SortBy.Descending)

	// When hints overlap, the later rule wins.
	f = ExtractFilters("warmest or coldest regions")
	require.NotNil(t, f.SortBy)
	assert.Equal(t, model.ParamTemperature, f.SortBy.Parameter)
	assert.False(t, f.SortBy.Descending)
}

func TestExtractFiltersEmpty(t *testing.T) {
	f := ExtractFilters("tell me about the ocean")
	assert.True(t, f.Empty())
}

func TestAnalysisFiltersYearWindow(t *testing.T) {
	f := analysisFilters("salinity in 2023")
	require.NotNil(t, f.DateRange)
	assert.Equal(t, "2023-01-01", f.DateRange.Start)
	assert.Equal(t, "2023-12-31", f.DateRange.End)
	assert.Equal(t, model.ParamSalinity, f.ParameterFocus)
}

func TestAnalysisFiltersParameterPrecedence(t *testing.T) {
	f := analysisFilters("temperature and salinity comparison")
	assert.Equal(t, model.ParamTemperature, f.ParameterFocus)

	f = analysisFilters("oxygen levels in the arabian sea")
	assert.Equal(t, model.ParamDissolvedOxygen, f.ParameterFocus)
	assert.True(t, f.OxygenRequired)
}
