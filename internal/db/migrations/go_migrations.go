// Package migrations contains the schema as dialect-aware Go migrations.
// Column types differ between SQLite, PostgreSQL and MySQL (unique TEXT keys
// need VARCHAR on MySQL, timestamps need TIMESTAMPTZ on PostgreSQL), so each
// migration picks its statements from the dialect set by the db package.
package migrations

import (
	"context"
	"database/sql"
)

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// statements holds the DDL for one migration direction per dialect.
type statements struct {
	sqlite   []string
	postgres []string
	mysql    []string
}

func (s statements) forDialect() []string {
	switch dialect {
	case "postgres":
		return s.postgres
	case "mysql":
		return s.mysql
	default: // sqlite3
		return s.sqlite
	}
}

func execAll(ctx context.Context, tx *sql.Tx, stmts statements) error {
	for _, stmt := range stmts.forDialect() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
