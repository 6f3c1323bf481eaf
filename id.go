package psx

import "github.com/google/uuid"

// NewID returns a new globally unique identifier for a document or layer.
// Identifiers are random (version 4) UUIDs in canonical string form.
func NewID() string {
	return uuid.NewString()
}
