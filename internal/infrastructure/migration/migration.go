package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_resumes_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createResumesTable(ctx, pool)
			},
		},
		{
			Name: "add_resumes_user_idx",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addResumesUserIndex(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			template TEXT NOT NULL DEFAULT 'cosmos',
			ats_score INT NOT NULL DEFAULT 0,
			document JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating resumes table (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured resumes table")
	return nil
}

func addResumesUserIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS resumes_user_id_idx ON resumes (user_id);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating resumes user index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured resumes user index")
	return nil
}
