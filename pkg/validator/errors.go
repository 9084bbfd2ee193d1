package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidTarget is returned by Struct for values that are not structs.
	ErrInvalidTarget = errors.New("validation target must be a struct or pointer to struct")
)
