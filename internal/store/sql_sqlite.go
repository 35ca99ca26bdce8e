package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/mattn/go-sqlite3"
)

const (
	sqliteMemory = ":memory:"
	sqliteParams = "_foreign_keys=1&_busy_timeout=5000"
)

// NewConnectSQLite opens the SQLite database named by a "sqlite://<path>" DSN.
// "sqlite://:memory:" yields a private in-memory database; it is pinned to a
// single connection so that every query sees the same schema.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path := strings.TrimPrefix(cfg.DSN, sqliteScheme)
	if path == "" {
		return nil, ErrUnsupportedDSN
	}

	conn, err := sql.Open("sqlite3", sqliteDataSource(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows a single writer; in-memory databases live per connection
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

func sqliteDataSource(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}

	return path + "?" + sqliteParams
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify reports SQLITE_BUSY and SQLITE_LOCKED as [Retryable], everything
// else as [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func (c *SQLiteErrorClassifier) IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
