package errors

import "errors"

// ErrValidation reports malformed or out-of-range input on a specific field.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalidState reports an operation requested against a record whose
// current state forbids it (e.g. collecting on a settled loan).
type ErrInvalidState struct {
	Message string
}

func (e *ErrInvalidState) Error() string {
	return e.Message
}

// ErrNotFound reports a lookup for an id that does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

func IsValidation(err error) bool {
	var target *ErrValidation
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target *ErrInvalidState
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}
