package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// hashPassword returns the Base64-encoded SHA-256 digest of a password.
// The digest is deterministic; stored hashes are compared byte-for-byte
// against freshly computed ones. This matches the format of hashes
// already present in the usuarios table.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// verifyPassword compares a plaintext password against a stored digest
// in constant time.
func verifyPassword(password, storedHash string) bool {
	computed := hashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
