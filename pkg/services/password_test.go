package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	assert.Equal(t, hashPassword("secret"), hashPassword("secret"))
	assert.NotEqual(t, hashPassword("secret"), hashPassword("Secret"))
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	for _, pw := range []string{"a", "secret", "admin123", "correct horse battery staple"} {
		assert.NotEqual(t, pw, hashPassword(pw))
	}
}

func TestHashPassword_Format(t *testing.T) {
	hash := hashPassword("admin123")

	// Base64 of a SHA-256 digest is always 44 characters.
	assert.Len(t, hash, 44)

	decoded, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestVerifyPassword(t *testing.T) {
	stored := hashPassword("secret")

	assert.True(t, verifyPassword("secret", stored))
	assert.False(t, verifyPassword("wrong", stored))
	assert.False(t, verifyPassword("", stored))
}
