package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/internal/auth"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFixture struct {
	handler http.Handler
	user    models.User
	tokens  *auth.TokenService
	store   *memory.Store
}

func newResolverFixture(t *testing.T) resolverFixture {
	t.Helper()
	store := memory.New()
	u, err := store.UserRepo().Create(context.Background(), "Ann Lee", "ann@x.com", "hash", models.RoleUser)
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	resolver := middleware.NewSessionResolver(tokens, store.UserRepo())

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.Principal(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(p.ID))
	})
	return resolverFixture{handler: resolver.Require(echo), user: u, tokens: tokens, store: store}
}

func (f resolverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestResolverBearerHeader(t *testing.T) {
	f := newResolverFixture(t)
	token, err := f.tokens.Issue(f.user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, f.user.ID, rec.Body.String())
}

func TestResolverCookieFallback(t *testing.T) {
	f := newResolverFixture(t)
	token, err := f.tokens.Issue(f.user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, f.user.ID, rec.Body.String())
}

func TestResolverHeaderTakesPrecedence(t *testing.T) {
	f := newResolverFixture(t)
	token, err := f.tokens.Issue(f.user.ID)
	require.NoError(t, err)

	// a good cookie does not rescue a bad header
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResolverFailuresAreUniform(t *testing.T) {
	f := newResolverFixture(t)

	expired, err := auth.NewTokenService("test-secret", -time.Minute).Issue(f.user.ID)
	require.NoError(t, err)
	misSigned, err := auth.NewTokenService("other-secret", time.Hour).Issue(f.user.ID)
	require.NoError(t, err)

	// token for an account deleted after issuance
	orphaned, err := f.tokens.Issue(f.user.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.UserRepo().Delete(context.Background(), f.user.ID))

	var bodies []string
	for name, set := range map[string]func(*http.Request){
		"no credentials":  func(*http.Request) {},
		"malformed token": func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") },
		"expired":         func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) },
		"wrong signature": func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+misSigned) },
		"deleted account": func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+orphaned) },
	} {
		req := httptest.NewRequest("GET", "/", nil)
		set(req)
		rec := f.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		bodies = append(bodies, rec.Body.String())
	}

	// every rejection is byte-identical: no oracle on which check failed
	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}
