package lead

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidEmail indicates the submitted string is not an email address.
var ErrInvalidEmail = errors.New("invalid email address")

// emailRegex accepts local@domain.tld: exactly one @, at least one dot in
// the domain, no whitespace anywhere. Deliberately loose beyond that; the
// provider is the final arbiter of deliverability.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims surrounding whitespace, lowercases, and validates
// the result. It is pure and idempotent: normalizing an already normalized
// address returns it unchanged.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}
