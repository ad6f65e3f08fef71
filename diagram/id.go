package diagram

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a random 16 character hex identifier.
func NewID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "error-id"
	}
	return hex.EncodeToString(b)
}
