// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/project-elevate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the context. The stored value has type string.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190c2b4-...")
var UserIDCtxKey = contextKey("userID")

// UserRoleCtxKey is the key used to store the authenticated user's role in
// the context. The stored value has type [models.Role].
var UserRoleCtxKey = contextKey("userRole")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true : value is found, has the correct type and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetUserRoleFromContext retrieves the user role from the context.
func GetUserRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(UserRoleCtxKey).(models.Role)
	return role, ok
}

// WithIdentity returns a copy of ctx carrying the authenticated user ID and role.
func WithIdentity(ctx context.Context, userID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, UserRoleCtxKey, role)
}
