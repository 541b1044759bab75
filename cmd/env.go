package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Coolixy/FloatChat/internal/generate"
	"github.com/Coolixy/FloatChat/internal/query"
	"github.com/Coolixy/FloatChat/internal/reference"
	"github.com/Coolixy/FloatChat/internal/search"
	"github.com/Coolixy/FloatChat/internal/store"
	anthropicpkg "github.com/Coolixy/FloatChat/pkg/anthropic"
	"github.com/Coolixy/FloatChat/pkg/ollama"
)

// appEnv holds all initialized collaborators needed by the serve/ask/import
// commands.
type appEnv struct {
	Store     store.Store
	Tables    *reference.Tables
	Index     *search.Index
	Generator generate.Generator // may be nil
	Engine    *query.Engine
}

// Close releases resources held by the environment.
func (e *appEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initApp sets up the store, reference tables, search index, and generator,
// then builds the query engine. Callers should defer env.Close().
func initApp(ctx context.Context) (*appEnv, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	tables, err := reference.Load()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	idx := search.NewIndex(tables)

	gen := initGenerator()

	engine := query.NewEngine(tables, idx, st, gen)
	engine.SetStationLimit(cfg.Search.MaxStations)

	return &appEnv{
		Store:     st,
		Tables:    tables,
		Index:     idx,
		Generator: gen,
		Engine:    engine,
	}, nil
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, eris.New("store.database_url required for postgres driver")
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	case "sqlite", "":
		return store.NewSQLite(cfg.Store.SQLitePath)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func initGenerator() generate.Generator {
	switch cfg.Generator.Backend {
	case "anthropic":
		if cfg.Anthropic.Key == "" {
			zap.L().Warn("FLOATCHAT_ANTHROPIC_KEY not set, answers will use statistical fallbacks")
			return nil
		}
		return generate.NewAnthropic(anthropicpkg.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model)
	case "none":
		return nil
	default:
		client := ollama.NewClient(
			ollama.WithBaseURL(cfg.Ollama.BaseURL),
			ollama.WithModel(cfg.Ollama.Model),
		)
		return generate.NewOllama(client, cfg.Ollama.Model)
	}
}
