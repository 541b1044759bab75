package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/Coolixy/FloatChat/internal/db"
	"github.com/Coolixy/FloatChat/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresFromPool wraps an existing pool, used by tests with pgxmock.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, closeFn: pool.Close}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS argo_profiles (
	wmo          TEXT NOT NULL,
	cycle_number INTEGER NOT NULL,
	date         DATE,
	latitude     DOUBLE PRECISION,
	longitude    DOUBLE PRECISION,
	temp         DOUBLE PRECISION,
	psal         DOUBLE PRECISION,
	pres         DOUBLE PRECISION,
	doxy_umolkg  DOUBLE PRECISION,
	PRIMARY KEY (wmo, cycle_number)
);

CREATE TABLE IF NOT EXISTS argo_floats (
	wmo           TEXT PRIMARY KEY,
	avg_latitude  DOUBLE PRECISION NOT NULL,
	avg_longitude DOUBLE PRECISION NOT NULL,
	region        TEXT,
	basin         TEXT,
	n_profiles    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS chat_history (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	query      TEXT NOT NULL,
	response   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_argo_profiles_date ON argo_profiles(date);
CREATE INDEX IF NOT EXISTS idx_argo_profiles_wmo ON argo_profiles(wmo);
CREATE INDEX IF NOT EXISTS idx_chat_history_created_at ON chat_history(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) FetchProfiles(ctx context.Context, wmos []string, f model.FilterSpec, limit int) ([]model.Profile, error) {
	query, args := buildProfileQuery(wmos, f, limit, dollarPlaceholders())

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: fetch profiles")
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(
			&p.WMO, &p.CycleNumber, &p.Date,
			&p.Latitude, &p.Longitude,
			&p.Temperature, &p.Salinity, &p.Pressure, &p.DissolvedOxygen,
		); err != nil {
			return nil, eris.Wrap(err, "postgres: scan profile")
		}
		profiles = append(profiles, p)
	}
	return profiles, eris.Wrap(rows.Err(), "postgres: fetch profiles iterate")
}

func (s *PostgresStore) InsertProfiles(ctx context.Context, profiles []model.Profile) (int64, error) {
	if len(profiles) == 0 {
		return 0, nil
	}

	rows := make([][]any, len(profiles))
	for i, p := range profiles {
		rows[i] = []any{
			p.WMO, p.CycleNumber, p.Date,
			p.Latitude, p.Longitude,
			p.Temperature, p.Salinity, p.Pressure, p.DissolvedOxygen,
		}
	}

	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table: "argo_profiles",
		Columns: []string{
			"wmo", "cycle_number", "date",
			"latitude", "longitude",
			"temp", "psal", "pres", "doxy_umolkg",
		},
		ConflictKeys: []string{"wmo", "cycle_number"},
	}, rows)
	return n, eris.Wrap(err, "postgres: insert profiles")
}

func (s *PostgresStore) SyncFloatMeta(ctx context.Context, metas []model.FloatMeta) (int64, error) {
	if len(metas) == 0 {
		return 0, nil
	}

	if _, err := s.pool.Exec(ctx, `TRUNCATE argo_floats`); err != nil {
		return 0, eris.Wrap(err, "postgres: truncate floats")
	}

	rows := make([][]any, len(metas))
	for i, m := range metas {
		rows[i] = []any{m.WMO, m.Latitude, m.Longitude, m.Region, m.Basin, m.ProfileCount}
	}

	n, err := db.CopyFrom(ctx, s.pool, "argo_floats",
		[]string{"wmo", "avg_latitude", "avg_longitude", "region", "basin", "n_profiles"},
		rows,
	)
	return n, eris.Wrap(err, "postgres: sync floats")
}

func (s *PostgresStore) SaveInteraction(ctx context.Context, query, response string) (*model.Interaction, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO chat_history (id, query, response, created_at) VALUES ($1, $2, $3, $4)`,
		id, query, response, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert interaction")
	}

	return &model.Interaction{ID: id, Query: query, Response: response, CreatedAt: now}, nil
}

func (s *PostgresStore) RecentInteractions(ctx context.Context, limit int) ([]model.Interaction, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, query, response, created_at FROM
		   (SELECT id, query, response, created_at FROM chat_history ORDER BY created_at DESC LIMIT $1) recent
		 ORDER BY created_at ASC`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: recent interactions")
	}
	defer rows.Close()

	var out []model.Interaction
	for rows.Next() {
		var it model.Interaction
		if err := rows.Scan(&it.ID, &it.Query, &it.Response, &it.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan interaction")
		}
		out = append(out, it)
	}
	return out, eris.Wrap(rows.Err(), "postgres: recent interactions iterate")
}
