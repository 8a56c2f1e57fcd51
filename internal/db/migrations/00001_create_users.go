package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsers, downCreateUsers)
}

// users.email is the identity key; the unique index is what makes
// find-or-create safe under concurrent requests.
var createUsers = statements{
	sqlite: []string{`CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    email      TEXT NOT NULL UNIQUE,
    first_name TEXT NOT NULL DEFAULT '',
    last_name  TEXT NOT NULL DEFAULT '',
    sex        TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
)`},
	postgres: []string{`CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    email      TEXT NOT NULL UNIQUE,
    first_name TEXT NOT NULL DEFAULT '',
    last_name  TEXT NOT NULL DEFAULT '',
    sex        TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL
)`},
	mysql: []string{`CREATE TABLE IF NOT EXISTS users (
    id         VARCHAR(36) PRIMARY KEY,
    email      VARCHAR(320) NOT NULL UNIQUE,
    first_name VARCHAR(255) NOT NULL DEFAULT '',
    last_name  VARCHAR(255) NOT NULL DEFAULT '',
    sex        VARCHAR(16) NOT NULL DEFAULT '',
    created_at DATETIME(6) NOT NULL
)`},
}

func upCreateUsers(ctx context.Context, tx *sql.Tx) error {
	if err := execAll(ctx, tx, createUsers); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func downCreateUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS users`)
	return err
}
