// Package validation holds the pure input checks run before any
// credential touches the store.
package validation

import "regexp"

const (
	MinPasswordLength = 6
	MaxPasswordLength = 100
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// ValidationError describes a user-correctable input problem. Its message
// is shown to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateEmail checks that the candidate string looks like a conventional
// email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	return nil
}

// ValidatePassword checks the password length constraints. Length is the
// only policy; strength rules are out of scope.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return &ValidationError{Message: "Password must be at least 6 characters long"}
	}
	if len(password) > MaxPasswordLength {
		return &ValidationError{Message: "Password must be no more than 100 characters long"}
	}
	return nil
}
