package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

type reqIDKey struct{}

func RequestIDFrom(ctx context.Context) string {
	if s, ok := ctx.Value(reqIDKey{}).(string); ok {
		return s
	}
	return ""
}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strconv.FormatInt(time.Now().UnixNano(), 36)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), reqIDKey{}, id)))
	})
}
