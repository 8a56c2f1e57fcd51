package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSessions, downCreateSessions)
}

// The sessions table layout is dictated by the scs store adapter for each
// driver: BLOB/REAL for sqlite3store, BYTEA/TIMESTAMPTZ for postgresstore and
// BLOB/TIMESTAMP(6) for mysqlstore.
var createSessions = statements{
	sqlite: []string{
		`CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry REAL NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`,
	},
	postgres: []string{
		`CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BYTEA NOT NULL,
    expiry TIMESTAMPTZ NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry)`,
	},
	mysql: []string{
		`CREATE TABLE IF NOT EXISTS sessions (
    token  CHAR(43) PRIMARY KEY,
    data   BLOB NOT NULL,
    expiry TIMESTAMP(6) NOT NULL
)`,
		`CREATE INDEX sessions_expiry_idx ON sessions (expiry)`,
	},
}

func upCreateSessions(ctx context.Context, tx *sql.Tx) error {
	if err := execAll(ctx, tx, createSessions); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func downCreateSessions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS sessions`)
	return err
}
