package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies stateless HS256 identity tokens. There is
// no server-side revocation: logout only discards the client's copy and a
// token stays verifiable until its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid token")

func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify returns the embedded account id. Malformed, mis-signed and expired
// tokens all fail with the same error; callers must not differentiate.
func (s *TokenService) Verify(token string) (string, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || c.UserID == "" {
		return "", errInvalidToken
	}
	return c.UserID, nil
}
