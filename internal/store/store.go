// Package store persists ARGO profile measurements and chat history,
// backed by either SQLite or PostgreSQL.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Coolixy/FloatChat/internal/model"
)

// Store defines the persistence interface for the query pipeline.
type Store interface {
	// Profiles
	FetchProfiles(ctx context.Context, wmos []string, f model.FilterSpec, limit int) ([]model.Profile, error)
	InsertProfiles(ctx context.Context, profiles []model.Profile) (int64, error)

	// Float metadata
	SyncFloatMeta(ctx context.Context, metas []model.FloatMeta) (int64, error)

	// Chat history
	SaveInteraction(ctx context.Context, query, response string) (*model.Interaction, error)
	RecentInteractions(ctx context.Context, limit int) ([]model.Interaction, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

const profileColumns = "wmo, cycle_number, date, latitude, longitude, temp, psal, pres, doxy_umolkg"

// sortColumns maps filter parameter names onto real columns, and doubles
// as the allowlist that keeps user-derived sort hints out of raw SQL.
var sortColumns = map[string]string{
	model.ParamTemperature:     "temp",
	model.ParamSalinity:        "psal",
	model.ParamPressure:        "pres",
	model.ParamDissolvedOxygen: "doxy_umolkg",
}

// buildProfileQuery assembles the filtered SELECT shared by both backends.
// placeholder renders the next positional parameter ("?" for SQLite,
// "$n" for PostgreSQL).
func buildProfileQuery(wmos []string, f model.FilterSpec, limit int, placeholder func() string) (string, []any) {
	var b strings.Builder
	var args []any

	fmt.Fprintf(&b, "SELECT %s FROM argo_profiles", profileColumns)

	var conds []string
	if len(wmos) > 0 {
		marks := make([]string, len(wmos))
		for i, wmo := range wmos {
			marks[i] = placeholder()
			args = append(args, wmo)
		}
		conds = append(conds, fmt.Sprintf("wmo IN (%s)", strings.Join(marks, ", ")))
	}
	if f.DateRange != nil {
		conds = append(conds, fmt.Sprintf("date BETWEEN %s AND %s", placeholder(), placeholder()))
		args = append(args, f.DateRange.Start, f.DateRange.End)
	}
	if f.OxygenRequired {
		conds = append(conds, "doxy_umolkg IS NOT NULL")
	}
	// Rows missing the sort value would otherwise lead the ordering.
	var sortCol string
	if f.SortBy != nil {
		if col, ok := sortColumns[f.SortBy.Parameter]; ok {
			sortCol = col
			if col != "doxy_umolkg" || !f.OxygenRequired {
				conds = append(conds, col+" IS NOT NULL")
			}
		}
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	b.WriteString(" ORDER BY ")
	if sortCol != "" {
		b.WriteString(sortCol)
		if f.SortBy.Descending {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
		b.WriteString(", wmo, cycle_number")
	} else {
		b.WriteString("wmo, cycle_number")
	}

	if limit > 0 {
		fmt.Fprintf(&b, " LIMIT %s", placeholder())
		args = append(args, limit)
	}

	return b.String(), args
}

// questionPlaceholders yields "?" forever, for SQLite.
func questionPlaceholders() func() string {
	return func() string { return "?" }
}

// dollarPlaceholders yields "$1", "$2", ... for PostgreSQL.
func dollarPlaceholders() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}
}
