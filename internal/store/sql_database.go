package store

import (
	"github.com/bachelormess/mess-manager/migrations"
)

// Migrate applies the embedded goose migrations to the server database.
// Only the PostgreSQL connection uses this; the client's SQLite schema is
// bootstrapped by the local storage layer itself.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
