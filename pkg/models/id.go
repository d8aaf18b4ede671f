package models

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

// idPattern matches a UUID with the dashes stripped, the id convention used
// throughout a space export.
var idPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NewID generates a dashless lowercase UUID (32 hex characters).
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// ValidID reports whether id is exactly 32 lowercase hex characters.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
