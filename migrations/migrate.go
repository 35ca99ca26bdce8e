// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when no connection is supplied.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration to db. dialect is a goose dialect
// name such as "postgres" or "sqlite3".
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
