package preset

import "errors"

var (
	ErrNotFound      = errors.New("preset not found")
	ErrDuplicateName = errors.New("duplicate preset name")
	ErrInvalidPreset = errors.New("invalid preset")
	ErrLoadFailed    = errors.New("failed to load presets")
)
