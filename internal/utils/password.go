package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password computed with a fresh
// random salt at the given cost. A cost outside the range accepted by bcrypt
// falls back to [bcrypt.DefaultCost].
//
// bcrypt rejects passwords longer than 72 bytes; the error is returned wrapped.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password resolves to hash.
//
// The comparison is constant time as provided by bcrypt. A malformed hash is
// reported as a mismatch.
func ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// IsPasswordTooLong reports whether err was caused by a password exceeding
// the bcrypt input limit.
func IsPasswordTooLong(err error) bool {
	return errors.Is(err, bcrypt.ErrPasswordTooLong)
}
