// Package apperr defines the error taxonomy surfaced by the API. Everything
// returned to a client goes through one of these constructors; anything else
// is reported as an opaque internal error.
package apperr

import "net/http"

type Error struct {
	Status  int      `json:"-"`
	Code    string   `json:"code"`
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// Validation reports all violated input rules at once.
func Validation(rules ...string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "validation_failed", Message: "validation failed", Details: rules}
}

func Duplicate(msg string) *Error {
	return &Error{Status: http.StatusConflict, Code: "duplicate", Message: msg}
}

// Unauthenticated covers missing, malformed, expired and otherwise invalid
// credentials with a single indistinguishable response.
func Unauthenticated(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "unauthenticated", Message: msg}
}

func Forbidden() *Error {
	return &Error{Status: http.StatusForbidden, Code: "forbidden", Message: "forbidden"}
}

func NotFound(what string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "not_found", Message: what + " not found"}
}
