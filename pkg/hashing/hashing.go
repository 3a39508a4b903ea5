// Package hashing provides the SHA-256 primitive used for block hashes.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the SHA-256 digest of b.
func Sum(b []byte) []byte {
	digest := sha256.Sum256(b)
	return digest[:]
}

// SumHex returns the SHA-256 digest of b as 64 lowercase hex characters.
func SumHex(b []byte) string {
	return hex.EncodeToString(Sum(b))
}
