package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-blogr/internal/config"
	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/migrations"
)

// DB wraps the process-wide connection pool together with the goose dialect
// of the backend it talks to.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewConnect opens the database backend selected by the DSN: a
// "postgres://" or "postgresql://" URI selects PostgreSQL, any other value
// is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Recreate drops and re-applies the full schema, discarding all stored data.
// Backs the init-db command.
func (db *DB) Recreate() error {
	return migrations.Reset(db.DB, db.dialect)
}
