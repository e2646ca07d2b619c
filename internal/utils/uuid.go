package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUID v7 strings for note and
// attachment identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID v7, falling back to a random v4 if the v7
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
