// Package migrations embeds the SQL schema and applies it with goose.
//
// Each supported backend has its own migration directory (sqlite, postgres)
// because the two dialects spell identity columns and timestamp defaults
// differently.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given goose dialect
// ("sqlite3" or "pgx").
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dirForDialect(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Reset rolls back every applied migration and re-applies the full schema,
// discarding all stored users and posts. Used by the init-db command.
func Reset(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := dirForDialect(dialect)
	if err := goose.Reset(db, dir); err != nil {
		return fmt.Errorf("migration reset error: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dirForDialect(dialect string) string {
	if dialect == "pgx" || dialect == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
