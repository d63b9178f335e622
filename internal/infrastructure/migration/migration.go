package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists every migration in the order it runs.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_resume_exports", Up: createResumeExports},
		{Name: "index_resume_exports_session", Up: indexResumeExportsSession},
	}
}

// RunMigrations executes all migrations on startup. Every statement is
// idempotent, so running them again is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	log.Info().Msg("starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		log.Info().Str("name", m.Name).Msg("migration completed")
	}

	log.Info().Msg("all migrations completed successfully")
	return nil
}

func createResumeExports(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_exports (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			file_name TEXT NOT NULL,
			status TEXT NOT NULL,
			pages INTEGER NOT NULL DEFAULT 0,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			font_base INTEGER NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			metadata JSONB DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func indexResumeExportsSession(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS resume_exports_session_created_idx
		ON resume_exports (session_id, created_at DESC);
	`)
	return err
}
