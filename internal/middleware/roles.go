package middleware

import (
	"net/http"

	"blogapi/internal/apperr"
	"blogapi/internal/api/httpx"
)

// RequireAdmin allows only admin principals through. Must sit behind the
// session resolver.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := Principal(r.Context())
		if !ok {
			httpx.WriteErr(w, apperr.Unauthenticated("not authorized"))
			return
		}
		if !p.IsAdmin() {
			httpx.WriteErr(w, apperr.Forbidden())
			return
		}
		next.ServeHTTP(w, r)
	})
}
