package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSpeeches, downCreateSpeeches)
}

// Speeches are append-only. slug is nullable so rows created before sharing
// existed stay valid, but every non-null slug is unique.
var createSpeeches = statements{
	sqlite: []string{
		`CREATE TABLE IF NOT EXISTS speeches (
    id            TEXT PRIMARY KEY,
    slug          TEXT UNIQUE,
    user_id       TEXT NOT NULL REFERENCES users(id),
    speech_type   TEXT NOT NULL,
    groom_name    TEXT NOT NULL,
    bride_name    TEXT NOT NULL,
    relationship  TEXT NOT NULL,
    stories       TEXT,
    tone          TEXT NOT NULL,
    speech_length TEXT NOT NULL,
    body          TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS speeches_user_created_idx ON speeches (user_id, created_at)`,
	},
	postgres: []string{
		`CREATE TABLE IF NOT EXISTS speeches (
    id            TEXT PRIMARY KEY,
    slug          TEXT UNIQUE,
    user_id       TEXT NOT NULL REFERENCES users(id),
    speech_type   TEXT NOT NULL,
    groom_name    TEXT NOT NULL,
    bride_name    TEXT NOT NULL,
    relationship  TEXT NOT NULL,
    stories       TEXT,
    tone          TEXT NOT NULL,
    speech_length TEXT NOT NULL,
    body          TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS speeches_user_created_idx ON speeches (user_id, created_at)`,
	},
	mysql: []string{
		`CREATE TABLE IF NOT EXISTS speeches (
    id            VARCHAR(36) PRIMARY KEY,
    slug          VARCHAR(32) UNIQUE,
    user_id       VARCHAR(36) NOT NULL,
    speech_type   VARCHAR(64) NOT NULL,
    groom_name    VARCHAR(255) NOT NULL,
    bride_name    VARCHAR(255) NOT NULL,
    relationship  TEXT NOT NULL,
    stories       TEXT,
    tone          VARCHAR(64) NOT NULL,
    speech_length VARCHAR(64) NOT NULL,
    body          MEDIUMTEXT NOT NULL,
    created_at    DATETIME(6) NOT NULL,
    CONSTRAINT speeches_user_fk FOREIGN KEY (user_id) REFERENCES users(id)
)`,
		`CREATE INDEX speeches_user_created_idx ON speeches (user_id, created_at)`,
	},
}

func upCreateSpeeches(ctx context.Context, tx *sql.Tx) error {
	if err := execAll(ctx, tx, createSpeeches); err != nil {
		return fmt.Errorf("create speeches table: %w", err)
	}
	return nil
}

func downCreateSpeeches(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS speeches`)
	return err
}
