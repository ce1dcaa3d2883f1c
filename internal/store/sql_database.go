package store

import (
	"database/sql"

	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/migrations"
)

// DB wraps the database/sql connection handle together with the store
// logger. Repositories embed *DB to inherit the query methods.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations to the local database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
