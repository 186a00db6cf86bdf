package middleware

import (
	"log/slog"
	"net/http"

	"blogapi/internal/apperr"
	"blogapi/internal/api/httpx"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "path", r.URL.Path)
				httpx.WriteJSON(w, http.StatusInternalServerError, &apperr.Error{
					Code: "internal_error", Message: "internal error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
