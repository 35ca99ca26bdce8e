package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Password
// hashes are never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new user record and returns it with the
// system-managed fields (UserID, CreatedAt, UpdatedAt) populated.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user = r.prepare(user)

	query, args, err := buildInsertUserQuery(r.db.statementBuilder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose normalised email equals the
// normalised input.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound];
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.statementBuilder, models.NormalizeEmail(email))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.withRetry(ctx, "find user by email", func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&foundUser.UserID,
			&foundUser.Email,
			&foundUser.PasswordHash,
			&foundUser.Role,
			&foundUser.Name,
			&foundUser.CreatedAt,
			&foundUser.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// ReplaceUser upserts the account keyed by email and returns the stored row.
func (r *userRepository) ReplaceUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user = r.prepare(user)

	query, args, err := buildUpsertUserQuery(r.db.statementBuilder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ReplaceUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.ReplaceUser").Msg("error upserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindUserByEmail(ctx, user.Email)
}

// prepare assigns the system-managed fields of a row about to be written.
func (r *userRepository) prepare(user models.User) models.User {
	now := time.Now().UTC()

	if user.UserID == "" {
		user.UserID = r.ids.Generate()
	}
	user.Email = models.NormalizeEmail(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	return user
}
