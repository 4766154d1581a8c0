package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-courses-api/models"
)

// Field name constants used to scope user validation.
const (
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmailAddress = "email_address"
	FieldPassword     = "password"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// UserValidator validates models.User values submitted for registration.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks the registration fields of a models.User. All fields are
// validated unless a subset is named.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmailAddress, FieldPassword}
	}

	verr := NewValidationError()
	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(u.FirstName) == "" {
				verr.add(ProblemFirstNameRequired)
			}
		case FieldLastName:
			if strings.TrimSpace(u.LastName) == "" {
				verr.add(ProblemLastNameRequired)
			}
		case FieldEmailAddress:
			email := strings.TrimSpace(u.EmailAddress)
			if email == "" {
				verr.add(ProblemEmailAddressRequired)
				continue
			}
			if !isEmailAddress(email) {
				verr.add(ProblemEmailAddressInvalid)
			}
		case FieldPassword:
			// passwords are not trimmed: whitespace is a legal character
			if u.Password == "" {
				verr.add(ProblemPasswordRequired)
			}
			if len(u.Password) > MaxPasswordBytes {
				verr.add(ProblemPasswordTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// isEmailAddress accepts a bare RFC 5322 address without a display name.
func isEmailAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
