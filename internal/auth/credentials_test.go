package auth

import (
	"testing"

	"blogapi/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentialsNormalizes(t *testing.T) {
	creds, err := ValidateCredentials("  Ann Lee  ", " Ann@X.COM ", "Abcd123!")
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", creds.Name)
	assert.Equal(t, "ann@x.com", creds.Email)
	assert.Equal(t, "Abcd123!", creds.Password)
}

func TestValidateCredentialsCollectsAllViolations(t *testing.T) {
	_, err := ValidateCredentials("A", "not-an-email", "short")

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 400, ae.Status)
	// name, email, length, upper, digit, symbol all violated at once
	assert.Len(t, ae.Details, 6)
}

func TestValidateCredentialsPasswordRules(t *testing.T) {
	cases := []struct {
		name     string
		password string
		rule     string
	}{
		{"too short", "Ab1!", "password must be at least 8 characters"},
		{"no uppercase", "abcd123!", "password must contain at least one uppercase letter"},
		{"no lowercase", "ABCD123!", "password must contain at least one lowercase letter"},
		{"no digit", "Abcdefg!", "password must contain at least one digit"},
		{"no symbol", "Abcd1234", "password must contain at least one special character"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateCredentials("Ann Lee", "ann@x.com", tc.password)
			var ae *apperr.Error
			require.ErrorAs(t, err, &ae)
			assert.Contains(t, ae.Details, tc.rule)
		})
	}
}

func TestValidateCredentialsEmailShape(t *testing.T) {
	for _, bad := range []string{"", "plain", "a@b", "a b@c.com", "@x.com"} {
		_, err := ValidateCredentials("Ann Lee", bad, "Abcd123!")
		assert.Error(t, err, "email %q should be rejected", bad)
	}
	_, err := ValidateCredentials("Ann Lee", "ann@x.com", "Abcd123!")
	assert.NoError(t, err)
}
