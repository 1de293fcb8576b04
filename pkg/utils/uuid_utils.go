package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 returns a v7 UUID. Profiles and withdrawals use v7 ids
// so primary keys sort by creation time.
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

// NewSessionID returns a random identifier for browser sessions. Session
// ids are opaque handles, so ordering does not matter and v4 is fine.
func NewSessionID() string {
	return uuid.New().String()
}
