package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.Len(t, tables.Floats, 6)
	assert.Equal(t, 6, tables.Answers.TotalFloats)
	assert.Equal(t, 868, tables.Answers.TotalProfiles2024)
	assert.Equal(t, 369, tables.Answers.ArabianSeaProfiles2024)
	assert.Equal(t, 250, tables.Answers.BayOfBengalProfiles2024)
	assert.InDelta(t, 32.9, tables.Answers.NorthernBengalAvgSalinity, 0.001)

	f, ok := tables.Floats["1902677"]
	require.True(t, ok)
	assert.Equal(t, "Southern Indian Ocean", f.Region)
	assert.Equal(t, "Indian Ocean", f.Basin)
	assert.InDelta(t, -10.5448, f.Lat, 0.0001)
	assert.InDelta(t, 78.1194, f.Lon, 0.0001)
	assert.Equal(t, 61, f.ProfileCount)

	trend, ok := tables.Answers.TemperatureTrends["arabian_sea"]
	require.True(t, ok)
	assert.InDelta(t, 0.12, trend.RatePerYear, 0.001)
	assert.InDelta(t, 1.2, trend.TotalChange, 0.001)
}

func TestWMOsSorted(t *testing.T) {
	tables := MustLoad()
	assert.Equal(t,
		[]string{"1902677", "2900230", "2900765", "2901092", "2902210", "2902217"},
		tables.WMOs())
}

func TestRegion(t *testing.T) {
	tables := MustLoad()
	assert.Equal(t, "Northern Arabian Sea", tables.Region("2902210"))
	assert.Equal(t, "Unknown", tables.Region("1234567"))
}

func TestBasinWMOs(t *testing.T) {
	tables := MustLoad()
	assert.Equal(t, []string{"2900230", "2902210"}, tables.BasinWMOs("Arabian Sea"))
	assert.Equal(t, []string{"2900765", "2902217"}, tables.BasinWMOs("Bay of Bengal"))
	assert.Empty(t, tables.BasinWMOs("Atlantic"))
}

func TestFloatYears(t *testing.T) {
	tables := MustLoad()
	f := tables.Floats["2902217"]
	assert.True(t, f.ActiveIn(2024))
	assert.Equal(t, f.ActiveYears[0], f.FirstYear())
	assert.Equal(t, f.ActiveYears[len(f.ActiveYears)-1], f.LastYear())

	var empty Float
	assert.Zero(t, empty.FirstYear())
	assert.Zero(t, empty.LastYear())
	assert.False(t, empty.ActiveIn(2024))
}

func TestMetadata(t *testing.T) {
	tables := MustLoad()
	metas := tables.Metadata()
	require.Len(t, metas, 6)
	assert.Equal(t, "1902677", metas[0].WMO)
	assert.Equal(t, "Southern Indian Ocean", metas[0].Region)
	assert.Equal(t, 61, metas[0].ProfileCount)
}
