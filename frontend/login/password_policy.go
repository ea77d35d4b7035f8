package login

import (
	"errors"
	"unicode"
)

const MinPasswordLength = 8

// ValidatePasswordPolicy enforces the console's own password rule, checked
// before the content API is called: at least MinPasswordLength characters
// with at least one letter and one digit. The API may accept weaker ones.
func ValidatePasswordPolicy(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return errors.New("this console requires passwords of at least 8 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("this console requires passwords that mix letters and digits")
	}
	return nil
}
