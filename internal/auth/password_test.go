package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abcd123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcd123!", hash)

	assert.True(t, VerifyPassword("Abcd123!", hash))
	assert.False(t, VerifyPassword("abcd123!", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyCorruptHashIsJustFalse(t *testing.T) {
	// A corrupt secret must be indistinguishable from a wrong password.
	assert.False(t, VerifyPassword("Abcd123!", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("Abcd123!", ""))
}
