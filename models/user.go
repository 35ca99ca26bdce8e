package models

import (
	"strings"
	"time"
)

// Role is the closed set of roles a user account can hold.
type Role string

const (
	RoleManager    Role = "manager"
	RoleConsultant Role = "consultant"
	RoleAdmin      Role = "admin"
)

// IsValid reports whether r belongs to the known role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleConsultant, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7).
	UserID string `json:"id"`

	// Email is the unique login identifier. It is stored lower-cased so that
	// lookups are case-insensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized and must never be logged.
	PasswordHash string `json:"-"`

	// Role controls what the user is allowed to do.
	Role Role `json:"role"`

	// Name is the display name of the user.
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info returns the public projection of the user returned to clients.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:    u.UserID,
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
	}
}

// NewUser carries the plain-text input needed to create an account.
// It is also the body of POST /api/users.
// Password is hashed by the service layer before it reaches storage.
type NewUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// NormalizeEmail trims surrounding whitespace and lower-cases email so that
// it can be compared case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
