package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coolixy/FloatChat/internal/model"
	"github.com/Coolixy/FloatChat/internal/reference"
)

func fptr(v float64) *float64 { return &v }

func profile(wmo string, temp, sal *float64) model.Profile {
	return model.Profile{WMO: wmo, Temperature: temp, Salinity: sal}
}

func TestClassifyAnalysis(t *testing.T) {
	tests := []struct {
		query string
		want  model.AnalysisType
	}{
		{"worst conditions for shipping", model.AnalysisRisk},
		{"best region for diving", model.AnalysisFavorable},
		{"highest temperature recorded", model.AnalysisExtreme},
		{"compare the two basins", model.AnalysisComparison},
		{"temperature overview", model.AnalysisGeneral},
		// Risk vocabulary outranks extreme vocabulary.
		{"worst extreme conditions", model.AnalysisRisk},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAnalysis(tt.query), "query %q", tt.query)
	}
}

func TestBuildContextStats(t *testing.T) {
	ref := reference.MustLoad()
	records := []model.Profile{
		profile("2902217", fptr(20), fptr(31.0)),
		profile("2900230", fptr(22), nil),
		profile("2900765", nil, fptr(33.5)),
		profile("2902210", fptr(24), fptr(36.0)),
	}

	c := BuildContext(records, "temperature analysis", ref)

	assert.Equal(t, 4, c.TotalRecords)
	assert.Equal(t, 4, c.UniqueFloats)

	temp, ok := c.Parameters[model.ParamTemperature]
	require.True(t, ok)
	assert.Equal(t, 3, temp.Count)
	assert.InDelta(t, 22.0, temp.Mean, 0.001)
	assert.InDelta(t, 20.0, temp.Min, 0.001)
	assert.InDelta(t, 24.0, temp.Max, 0.001)
	assert.InDelta(t, 2.0, temp.StdDev, 0.001)
	assert.Equal(t, "Hottest: Northern Arabian Sea, Coldest: Northern Bay of Bengal", temp.ExtremeLocations)

	sal, ok := c.Parameters[model.ParamSalinity]
	require.True(t, ok)
	assert.Equal(t, 3, sal.Count)
	assert.Equal(t, "Saltiest: Northern Arabian Sea, Freshest: Northern Bay of Bengal", sal.ExtremeLocations)
}

func TestBuildContextFirstExtremeWins(t *testing.T) {
	ref := reference.MustLoad()
	// Two records tie for the maximum; the first occurrence keeps the label.
	records := []model.Profile{
		profile("2900230", fptr(28), nil),
		profile("2902210", fptr(28), nil),
		profile("2902217", fptr(25), nil),
	}

	c := BuildContext(records, "temperature", ref)
	temp := c.Parameters[model.ParamTemperature]
	assert.Equal(t, "Hottest: Central Arabian Sea, Coldest: Northern Bay of Bengal", temp.ExtremeLocations)
}

func TestBuildContextRegionalRollups(t *testing.T) {
	ref := reference.MustLoad()
	records := []model.Profile{
		profile("2902217", fptr(28), fptr(32.0)),
		profile("2902217", fptr(30), fptr(33.0)),
		profile("2900230", fptr(29), nil),
	}

	c := BuildContext(records, "regional breakdown", ref)

	bengal, ok := c.Regional["2902217"]
	require.True(t, ok)
	assert.Equal(t, "Northern Bay of Bengal", bengal.Region)
	assert.Equal(t, 2, bengal.Records)
	require.NotNil(t, bengal.AvgTemperature)
	assert.InDelta(t, 29.0, *bengal.AvgTemperature, 0.001)
	require.NotNil(t, bengal.AvgSalinity)
	assert.InDelta(t, 32.5, *bengal.AvgSalinity, 0.001)

	arabian, ok := c.Regional["2900230"]
	require.True(t, ok)
	assert.Equal(t, 1, arabian.Records)
	assert.Nil(t, arabian.AvgSalinity)
}

func TestBuildContextUnknownStation(t *testing.T) {
	ref := reference.MustLoad()
	records := []model.Profile{profile("9999999", fptr(25), nil)}

	c := BuildContext(records, "temperature", ref)
	assert.Equal(t, 1, c.UniqueFloats)
	// Unknown stations contribute to statistics but not to rollups.
	assert.Empty(t, c.Regional)
	temp := c.Parameters[model.ParamTemperature]
	assert.Equal(t, 1, temp.Count)
}

func TestBuildContextEmpty(t *testing.T) {
	ref := reference.MustLoad()
	c := BuildContext(nil, "anything", ref)
	assert.Zero(t, c.TotalRecords)
	assert.Empty(t, c.Parameters)
	assert.Empty(t, c.Regional)
}
