package database

import (
	"context"
	"fmt"
)

var migrations = []struct {
	name string
	sql  string
}{
	{"generation_runs", `
	CREATE TABLE IF NOT EXISTS generation_runs (
		id UUID PRIMARY KEY,
		kind VARCHAR(20) NOT NULL,
		brand_id VARCHAR(64) NOT NULL DEFAULT '',
		subject TEXT NOT NULL DEFAULT '',
		outcome VARCHAR(20) NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		raw_reply TEXT NOT NULL DEFAULT '',
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_generation_runs_kind ON generation_runs(kind);
	CREATE INDEX IF NOT EXISTS idx_generation_runs_created ON generation_runs(created_at DESC);
	`},
	{"image_jobs", `
	CREATE TABLE IF NOT EXISTS image_jobs (
		id VARCHAR(64) PRIMARY KEY,
		status VARCHAR(20) NOT NULL,
		prompt TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_image_jobs_status ON image_jobs(status);
	`},
}

// CreateTables creates the history tables. It is safe to run repeatedly.
func CreateTables(ctx context.Context, q Querier) error {
	for _, m := range migrations {
		if _, err := q.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("create %s: %w", m.name, err)
		}
	}
	return nil
}
