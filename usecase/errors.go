package usecase

import "errors"

// ErrValidation groups all user-input rejections so handlers can map them
// to a 400 without matching message strings.
var ErrValidation = errors.New("validation failed")

type fieldError struct {
	msg string
}

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a validation error with a user-facing message.
func Invalid(msg string) error {
	return &fieldError{msg: msg}
}
