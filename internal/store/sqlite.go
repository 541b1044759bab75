package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/Coolixy/FloatChat/internal/model"
)

const sqliteDateLayout = "2006-01-02"

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS argo_profiles (
	wmo          TEXT NOT NULL,
	cycle_number INTEGER NOT NULL,
	date         TEXT,
	latitude     REAL,
	longitude    REAL,
	temp         REAL,
	psal         REAL,
	pres         REAL,
	doxy_umolkg  REAL,
	PRIMARY KEY (wmo, cycle_number)
);

CREATE TABLE IF NOT EXISTS argo_floats (
	wmo           TEXT PRIMARY KEY,
	avg_latitude  REAL NOT NULL,
	avg_longitude REAL NOT NULL,
	region        TEXT,
	basin         TEXT,
	n_profiles    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS chat_history (
	id         TEXT PRIMARY KEY,
	query      TEXT NOT NULL,
	response   TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_argo_profiles_date ON argo_profiles(date);
CREATE INDEX IF NOT EXISTS idx_argo_profiles_wmo ON argo_profiles(wmo);
CREATE INDEX IF NOT EXISTS idx_chat_history_created_at ON chat_history(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) FetchProfiles(ctx context.Context, wmos []string, f model.FilterSpec, limit int) ([]model.Profile, error) {
	query, args := buildProfileQuery(wmos, f, limit, questionPlaceholders())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: fetch profiles")
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, eris.Wrap(rows.Err(), "sqlite: fetch profiles iterate")
}

func (s *SQLiteStore) InsertProfiles(ctx context.Context, profiles []model.Profile) (int64, error) {
	if len(profiles) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO argo_profiles (`+profileColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare insert")
	}
	defer stmt.Close()

	var n int64
	for _, p := range profiles {
		var date any
		if p.Date != nil {
			date = p.Date.Format(sqliteDateLayout)
		}
		if _, err := stmt.ExecContext(ctx,
			p.WMO, derefInt(p.CycleNumber), date,
			p.Latitude, p.Longitude,
			p.Temperature, p.Salinity, p.Pressure, p.DissolvedOxygen,
		); err != nil {
			return n, eris.Wrapf(err, "sqlite: insert profile %s", p.WMO)
		}
		n++
	}

	return n, eris.Wrap(tx.Commit(), "sqlite: commit insert")
}

func (s *SQLiteStore) SyncFloatMeta(ctx context.Context, metas []model.FloatMeta) (int64, error) {
	if len(metas) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	var n int64
	for _, m := range metas {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO argo_floats (wmo, avg_latitude, avg_longitude, region, basin, n_profiles)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.WMO, m.Latitude, m.Longitude, m.Region, m.Basin, m.ProfileCount,
		); err != nil {
			return n, eris.Wrapf(err, "sqlite: sync float %s", m.WMO)
		}
		n++
	}

	return n, eris.Wrap(tx.Commit(), "sqlite: commit sync")
}

func (s *SQLiteStore) SaveInteraction(ctx context.Context, query, response string) (*model.Interaction, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (id, query, response, created_at) VALUES (?, ?, ?, ?)`,
		id, query, response, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert interaction")
	}

	return &model.Interaction{ID: id, Query: query, Response: response, CreatedAt: now}, nil
}

func (s *SQLiteStore) RecentInteractions(ctx context.Context, limit int) ([]model.Interaction, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, response, created_at FROM
		   (SELECT id, query, response, created_at FROM chat_history ORDER BY created_at DESC LIMIT ?)
		 ORDER BY created_at ASC`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: recent interactions")
	}
	defer rows.Close()

	var out []model.Interaction
	for rows.Next() {
		var it model.Interaction
		if err := rows.Scan(&it.ID, &it.Query, &it.Response, &it.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan interaction")
		}
		out = append(out, it)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: recent interactions iterate")
}

// helpers

func derefInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProfile(row scannable) (*model.Profile, error) {
	var p model.Profile
	var cycle sql.NullInt64
	var date sql.NullString
	var lat, lon, temp, psal, pres, doxy sql.NullFloat64

	if err := row.Scan(&p.WMO, &cycle, &date, &lat, &lon, &temp, &psal, &pres, &doxy); err != nil {
		return nil, eris.Wrap(err, "sqlite: scan profile")
	}

	if cycle.Valid {
		c := int(cycle.Int64)
		p.CycleNumber = &c
	}
	if date.Valid && date.String != "" {
		t, err := time.Parse(sqliteDateLayout, date.String)
		if err != nil {
			return nil, eris.Wrapf(err, "sqlite: parse profile date %q", date.String)
		}
		p.Date = &t
	}
	p.Latitude = nullFloat(lat)
	p.Longitude = nullFloat(lon)
	p.Temperature = nullFloat(temp)
	p.Salinity = nullFloat(psal)
	p.Pressure = nullFloat(pres)
	p.DissolvedOxygen = nullFloat(doxy)

	return &p, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
