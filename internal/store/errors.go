package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user cannot be stored
	// because another account already uses the same (normalised) email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAssigneeNotFound is returned when an assessment references a user
	// that does not exist.
	ErrAssigneeNotFound = errors.New("assigned user does not exist")

	// ErrUnsupportedDSN is returned by [NewConnect] for a DSN whose scheme is
	// neither postgres:// nor sqlite://.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrRetriesExhausted wraps the last error of an operation that kept
	// failing with retryable errors.
	ErrRetriesExhausted = errors.New("database operation retries exhausted")
)
