package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Coolixy/FloatChat/internal/model"
)

func TestBuildProfileQueryBare(t *testing.T) {
	query, args := buildProfileQuery(nil, model.FilterSpec{}, 0, questionPlaceholders())
	assert.Equal(t,
		"SELECT wmo, cycle_number, date, latitude, longitude, temp, psal, pres, doxy_umolkg "+
			"FROM argo_profiles ORDER BY wmo, cycle_number",
		query)
	assert.Empty(t, args)
}

func TestBuildProfileQuerySQLite(t *testing.T) {
	f := model.FilterSpec{
		DateRange:      &model.DateRange{Start: "2024-01-01", End: "2024-12-31"},
		OxygenRequired: true,
		SortBy:         &model.SortSpec{Parameter: model.ParamSalinity},
	}
	query, args := buildProfileQuery([]string{"2902217", "2900765"}, f, 100, questionPlaceholders())

	assert.Equal(t,
		"SELECT wmo, cycle_number, date, latitude, longitude, temp, psal, pres, doxy_umolkg "+
			"FROM argo_profiles "+
			"WHERE wmo IN (?, ?) AND date BETWEEN ? AND ? AND doxy_umolkg IS NOT NULL "+
			"AND psal IS NOT NULL "+
			"ORDER BY psal ASC, wmo, cycle_number LIMIT ?",
		query)
	assert.Equal(t, []any{"2902217", "2900765", "2024-01-01", "2024-12-31", 100}, args)
}

func TestBuildProfileQueryPostgres(t *testing.T) {
	f := model.FilterSpec{
		SortBy: &model.SortSpec{Parameter: model.ParamTemperature, Descending: true},
	}
	query, args := buildProfileQuery([]string{"2900230"}, f, 50, dollarPlaceholders())

	assert.Equal(t,
		"SELECT wmo, cycle_number, date, latitude, longitude, temp, psal, pres, doxy_umolkg "+
			"FROM argo_profiles "+
			"WHERE wmo IN ($1) AND temp IS NOT NULL "+
			"ORDER BY temp DESC, wmo, cycle_number LIMIT $2",
		query)
	assert.Equal(t, []any{"2900230", 50}, args)
}

func TestBuildProfileQueryOxygenSortNotDuplicated(t *testing.T) {
	f := model.FilterSpec{
		OxygenRequired: true,
		SortBy:         &model.SortSpec{Parameter: model.ParamDissolvedOxygen, Descending: true},
	}
	query, _ := buildProfileQuery(nil, f, 0, questionPlaceholders())
	assert.Equal(t, 1, strings.Count(query, "doxy_umolkg IS NOT NULL"))
	assert.Contains(t, query, "ORDER BY doxy_umolkg DESC")
}

func TestBuildProfileQueryRejectsUnknownSortColumn(t *testing.T) {
	f := model.FilterSpec{
		SortBy: &model.SortSpec{Parameter: "latitude; DROP TABLE argo_profiles"},
	}
	query, _ := buildProfileQuery(nil, f, 0, questionPlaceholders())
	assert.NotContains(t, query, "DROP")
	assert.Contains(t, query, "ORDER BY wmo, cycle_number")
}
