package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for newly created records. It prefers
// version 7 UUIDs, which sort by creation time and keep index inserts
// append-mostly.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh UUID string, falling back to a random v4 when
// the v7 clock source is unavailable.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
