package store

import (
	"fmt"
	"strings"
)

// ParseError describes why a single field's value was rejected.
// It is the error type staged fields carry in this package's
// generation unit.
type ParseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ParseError) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return e.Code + ": " + e.Message
}

// Email is a validated e-mail address. Validation lives here, not in
// the generator: staged fields only carry this type's outcome.
type Email string

// ParseEmail validates the raw address.
func ParseEmail(raw string) (Email, error) {
	at := strings.IndexByte(raw, '@')
	if at <= 0 || at == len(raw)-1 {
		return "", ParseError{Code: "email", Message: fmt.Sprintf("invalid format: %q", raw)}
	}

	return Email(raw), nil
}

// Account is a record whose fields are individually parsed. Its
// staging companion lives in examples/basic.
type Account struct {
	ID    int64 `json:"id"`
	Email Email `json:"email"`
}

// Signup is a wider record used to exercise multi-field aggregation.
type Signup struct {
	Name    string `json:"name"`
	Age     uint8  `json:"age"`
	Email   Email  `json:"email"`
	Consent bool   `json:"consent"`
}
