package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns a hex SHA-256 of b, used as a download ETag.
func ContentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
