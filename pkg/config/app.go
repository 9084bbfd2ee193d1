package config

import (
	"fmt"
	"log/slog"
)

// App holds the settings of the decimald service.
type App struct {
	Name     string     `env:"APP_NAME" envDefault:"decimald"`
	Env      string     `env:"APP_ENV" envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// PresetsFile is an optional YAML file of named option presets.
	PresetsFile string `env:"PRESETS_FILE"`

	// DefaultDigits is the fractional-digit limit applied to requests that
	// set neither digits nor a preset. A negative value means no limit.
	DefaultDigits int `env:"DEFAULT_DIGITS" envDefault:"2"`

	// MaxInputLength caps the raw field value read from a request, counted in
	// runes.
	MaxInputLength int `env:"MAX_INPUT_LENGTH" envDefault:"256"`
}

// Validate reports settings the service cannot run with.
func (a App) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: APP_NAME is empty", ErrInvalidApp)
	}
	if a.MaxInputLength <= 0 {
		return fmt.Errorf("%w: MAX_INPUT_LENGTH must be positive, got %d", ErrInvalidApp, a.MaxInputLength)
	}
	return nil
}

// Digits returns DefaultDigits as an optional limit.
func (a App) Digits() *int {
	if a.DefaultDigits < 0 {
		return nil
	}
	d := a.DefaultDigits
	return &d
}
