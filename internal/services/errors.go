package services

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 6

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newValidationError returns nil when there are no failures.
func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// userFieldViolations collects failures for the required user attributes.
func userFieldViolations(firstName, lastName, email string) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(firstName) == "" {
		fields["first_name"] = "must not be empty"
	}
	if strings.TrimSpace(lastName) == "" {
		fields["last_name"] = "must not be empty"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}

	return fields
}

// validateUserFields checks the required user attributes plus the plaintext
// password and returns a ValidationError listing every failed field.
func validateUserFields(firstName, lastName, email, password string) error {
	fields := userFieldViolations(firstName, lastName, email)
	if len(password) < MinPasswordLength {
		fields["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}
	return newValidationError(fields)
}
