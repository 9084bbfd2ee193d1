package binder

import "errors"

var (
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)
