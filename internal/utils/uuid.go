package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for persisted records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Consecutive values generated by one
// process sort in generation order, which the stores rely on for
// insertion-ordered listing. Falls back to a random UUIDv4 if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
