// Package app wires configuration into the long-lived dependencies shared by
// the dashboard server and the report CLI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"catalogcmp/internal/cache"
	"catalogcmp/internal/catalog"
	"catalogcmp/internal/config"
	"catalogcmp/internal/dataset"
	"catalogcmp/internal/db"
	"catalogcmp/internal/repository"
)

// LoadDataset applies the optional sources file, opens Postgres when a source is
// a table, and runs the single load step.
func LoadDataset(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*dataset.Dataset, error) {
	if cfg.SourcesFile != "" {
		if err := cfg.ApplySourcesFile(cfg.SourcesFile); err != nil {
			return nil, err
		}
	}

	var conn *sql.DB
	if usesTables(cfg) {
		if cfg.DatabaseURL == "" {
			return nil, errors.New("a source reads from a table but DATABASE_URL is not set")
		}
		var err error
		conn, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
	}

	sources := dataset.FromConfig(cfg, func(table string) catalog.Reader {
		return &repository.RawRepository{DB: conn, Table: table}
	})
	d, err := dataset.Load(ctx, log, sources...)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	log.Info().
		Int("records", d.Table.Len()).
		Str("fingerprint", d.Fingerprint).
		Msg("dataset ready")
	return d, nil
}

func usesTables(cfg *config.Config) bool {
	for _, sc := range cfg.Sources {
		if sc.Table != "" {
			return true
		}
	}
	return false
}

// OpenCache returns the Redis report cache, or a no-op cache when Redis is not
// configured or unreachable. The returned close func is never nil.
func OpenCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (cache.Cache, func()) {
	if cfg.RedisURL == "" {
		return cache.Nop{}, func() {}
	}
	rc, err := cache.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("report cache disabled")
		return cache.Nop{}, func() {}
	}
	return rc, func() { rc.Close() }
}
