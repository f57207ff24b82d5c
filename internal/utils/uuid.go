package utils

import "github.com/google/uuid"

// UUIDGenerator issues job ids. UUIDv7 keeps ids roughly ordered by
// creation time, which keeps Redis key scans readable.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random v4 if v7 cannot be produced.
func (UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
