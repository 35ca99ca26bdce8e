package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/migrations"
)

// Dialect names the SQL backend a [DB] talks to.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DSN scheme prefixes understood by [NewConnect].
const (
	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"
	sqliteScheme     = "sqlite://"
)

const (
	maxRetryAttempts    = 3
	initialRetryBackoff = 50 * time.Millisecond
)

// ErrorClassificator maps driver errors onto the categories the repositories
// care about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}

// DB wraps *sql.DB with the dialect specific pieces every repository needs:
// a statement builder with the right placeholder format and an error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	statementBuilder   sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the DSN scheme:
// "postgres://" (or "postgresql://") for PostgreSQL and "sqlite://" for SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, postgresScheme), strings.HasPrefix(cfg.DSN, postgresqlScheme):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		statementBuilder:   sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect returns the backend the connection was opened for.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies every pending schema migration.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// withRetry runs fn until it succeeds, fails with an error that is not
// classified as [Retryable], or maxRetryAttempts is reached. The backoff
// doubles after every failed attempt.
func (db *DB) withRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	var err error
	backoff := initialRetryBackoff
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxRetryAttempts {
			break
		}

		log.Warn().Err(err).
			Str("operation", operation).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("%w: %s: %w", ErrRetriesExhausted, operation, err)
}

// inTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
