package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is the sentinel every [ValidationError] unwraps to.
	ErrValidationFailed = errors.New("validation failed")
)

// Problem messages reported inside a ValidationError.
const (
	ProblemTitleRequired       = "title is required"
	ProblemDescriptionRequired = "description is required"
	ProblemOwnerRequired       = "userId is required"
	ProblemNothingToUpdate     = "at least one field must be provided for update"

	ProblemFirstNameRequired    = "firstName is required"
	ProblemLastNameRequired     = "lastName is required"
	ProblemEmailAddressRequired = "emailAddress is required"
	ProblemEmailAddressInvalid  = "emailAddress must be a valid email address"
	ProblemEmailAddressTaken    = "emailAddress is already in use"
	ProblemPasswordRequired     = "password is required"
	ProblemPasswordTooLong      = "password must be at most 72 bytes"
)

// ValidationError lists every problem found in a single input value.
type ValidationError struct {
	Problems []string
}

// NewValidationError builds a ValidationError from the given problems.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// add records a problem; it is a no-op on duplicates.
func (e *ValidationError) add(problem string) {
	for _, p := range e.Problems {
		if p == problem {
			return
		}
	}
	e.Problems = append(e.Problems, problem)
}

// orNil returns e as an error only when at least one problem was recorded.
func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
