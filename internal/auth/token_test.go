package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue("account-1")
	require.NoError(t, err)

	uid, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", uid)
}

func TestTokenExpired(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)
	token, err := ts.Issue("account-1")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue("account-1")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Verify(tok)
		assert.Error(t, err, "token %q should fail", tok)
	}
}
