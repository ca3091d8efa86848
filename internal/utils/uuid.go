package utils

import "github.com/google/uuid"

// UUIDGenerator produces the order identifiers minted by the submission
// pipeline. Version 7 UUIDs are preferred because they are time-ordered,
// which keeps downstream status records roughly insertion-ordered; the
// random v4 form is a fallback when the system clock misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh UUID string. Collisions are treated as
// practically impossible; the value doubles as the queue dedup key.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
