package auth

import (
	"regexp"
	"strings"
	"unicode"

	"blogapi/internal/apperr"
)

// Credentials is a normalized registration input: name trimmed, email
// lower-cased and trimmed. Produced only when every rule passes.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidateCredentials checks registration input and collects every violated
// rule instead of stopping at the first, so the caller can show all problems
// at once. Pure: no lookups, no side effects.
func ValidateCredentials(name, email, password string) (Credentials, error) {
	var rules []string

	name = strings.TrimSpace(name)
	if len(name) < 2 {
		rules = append(rules, "name must be at least 2 characters")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		rules = append(rules, "email must be a valid address")
	}

	if len(password) < 8 {
		rules = append(rules, "password must be at least 8 characters")
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !upper {
		rules = append(rules, "password must contain at least one uppercase letter")
	}
	if !lower {
		rules = append(rules, "password must contain at least one lowercase letter")
	}
	if !digit {
		rules = append(rules, "password must contain at least one digit")
	}
	if !symbol {
		rules = append(rules, "password must contain at least one special character")
	}

	if len(rules) > 0 {
		return Credentials{}, apperr.Validation(rules...)
	}
	return Credentials{Name: name, Email: email, Password: password}, nil
}
