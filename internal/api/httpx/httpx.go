package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogapi/internal/apperr"
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErr maps an application error onto the wire. Errors outside the
// apperr taxonomy are logged and returned as an opaque 500.
func WriteErr(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		WriteJSON(w, ae.Status, ae)
		return
	}
	slog.Error("internal error", "err", err)
	WriteJSON(w, http.StatusInternalServerError, &apperr.Error{
		Code:    "internal_error",
		Message: "internal error",
	})
}
