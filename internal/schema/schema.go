// Package schema owns the persisted table definitions. The SQL files under
// migrations/ are the source of truth; gorm models only map onto them.
package schema

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migration is one versioned SQL file.
type Migration struct {
	Version string
	SQL     string
}

// Migrations returns the embedded migrations in apply order.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migration files: %w", err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := migrationFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Version: name[len("migrations/"):],
			SQL:     string(body),
		})
	}
	return migrations, nil
}

// Migrate applies every pending migration against databaseURL. Each file runs
// in its own transaction together with its schema_migrations row.
func Migrate(ctx context.Context, databaseURL string, log *logger.Logger) error {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	migrations, err := Migrations()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		var exists bool
		err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version=$1)", m.Version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.Version, err)
		}
		if exists {
			continue
		}

		err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, m.SQL); err != nil {
				return fmt.Errorf("execute migration %s: %w", m.Version, err)
			}
			if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
				return fmt.Errorf("record migration %s: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Info("Applied migration", zap.String("version", m.Version))
	}

	return nil
}
