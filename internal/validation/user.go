package validation

import (
	"fmt"
	"net/mail"
	"regexp"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)

// ValidateUsername checks username length and character set.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 100 {
		return fmt.Errorf("username must not exceed 100 characters")
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, underscores and dots")
	}
	return nil
}

// ValidateEmail checks that the email parses as an RFC 5322 address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}
