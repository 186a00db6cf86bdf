package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogapi/internal/api/httpx"
	"blogapi/internal/apperr"
	"blogapi/internal/auth"
	"blogapi/internal/metrics"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, principalKey{}, u)
}

// Principal returns the authenticated account stored by SessionResolver.
func Principal(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(principalKey{}).(models.User)
	return u, ok
}

// TokenCookie is the fallback credential source; the Authorization header
// takes precedence when both are present.
const TokenCookie = "token"

// SessionResolver turns a request's credential material into a principal.
// Every failure path (no token, bad signature, expired, account deleted
// after issuance) produces the identical 401 so the response never reveals
// which check tripped.
type SessionResolver struct {
	tokens *auth.TokenService
	users  repository.Users
}

func NewSessionResolver(tokens *auth.TokenService, users repository.Users) *SessionResolver {
	return &SessionResolver{tokens: tokens, users: users}
}

func extractToken(r *http.Request) string {
	if ah := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return strings.TrimSpace(ah[len("Bearer "):])
	}
	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func (m *SessionResolver) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			m.reject(w)
			return
		}
		uid, err := m.tokens.Verify(token)
		if err != nil {
			m.reject(w)
			return
		}
		u, err := m.users.GetByID(r.Context(), uid)
		if err != nil {
			// Account gone since issuance; the token is as good as invalid.
			m.reject(w)
			return
		}
		metrics.AuthResolutions.WithLabelValues("ok").Inc()
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), u)))
	})
}

func (m *SessionResolver) reject(w http.ResponseWriter) {
	metrics.AuthResolutions.WithLabelValues("rejected").Inc()
	httpx.WriteErr(w, apperr.Unauthenticated("not authorized"))
}
