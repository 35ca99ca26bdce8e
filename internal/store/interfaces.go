package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/project-elevate/models"
)

// UserRepository persists user accounts.
//
// Emails are expected to be normalised with [models.NormalizeEmail] by the
// caller; the repository normalises them again before every write and lookup.
type UserRepository interface {
	// CreateUser inserts a new account. Returns [ErrEmailAlreadyExists] when
	// the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ReplaceUser inserts the account or, when the email is already taken,
	// overwrites its password hash, role and name. The existing ID is kept.
	ReplaceUser(ctx context.Context, user models.User) (models.User, error)
}

// AssessmentRepository persists assessments and the one-time seed marker.
type AssessmentRepository interface {
	// GetAssessmentsByUser returns every assessment assigned to userID in
	// insertion order.
	GetAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error)

	// SeedOnce atomically claims the seed marker named marker on behalf of
	// seededBy and, only if the claim succeeded, inserts assessments in the
	// same transaction. It reports whether this call performed the seeding.
	SeedOnce(ctx context.Context, marker, seededBy string, assessments []models.Assessment) (bool, error)
}
