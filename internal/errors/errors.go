package errors

import (
	"errors"
)

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrEmailRequired     = errors.New("email is required")
	ErrInvalidEmail      = errors.New("email is malformed")
	ErrPasswordRequired  = errors.New("password is required")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidRole       = errors.New("unknown role")
	ErrInvalidAgeBracket = errors.New("unknown age bracket")
)

// IsValidation reports whether err is one of the input validation errors,
// as opposed to an authentication or storage failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrEmailRequired,
		ErrInvalidEmail,
		ErrPasswordRequired,
		ErrNameRequired,
		ErrInvalidRole,
		ErrInvalidAgeBracket,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
