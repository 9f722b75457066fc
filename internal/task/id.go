package task

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces a unique opaque identifier.
type IDGenerator func() string

// NewID returns a random (version 4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// isIdentifier reports whether s can reference another task.
// Identifiers are opaque, so only emptiness is rejected.
func isIdentifier(s string) bool {
	return strings.TrimSpace(s) != ""
}
