package preset

import (
	"errors"
	"fmt"
	"math"

	decimalinput "github.com/didley/decimal-input"
	"github.com/didley/decimal-input/pkg/validator"
)

// MaxDigits is the largest fractional-digit limit a preset may set.
const MaxDigits = 20

// Preset is a named set of field constraints, such as "money" or "percent".
type Preset struct {
	Name        string   `json:"name" yaml:"name" validate:"required,max=64"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"max=256"`
	Min         *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Digits      *int     `json:"digits,omitempty" yaml:"digits,omitempty" validate:"omitempty,gte=0,lte=20"`
}

// Options returns the constraints as decimalinput.Options.
func (p Preset) Options() decimalinput.Options {
	return decimalinput.NewOptions(decimalinput.WithOptions(decimalinput.Options{
		Min:    p.Min,
		Max:    p.Max,
		Digits: p.Digits,
	}))
}

// Validate checks the tagged fields and that the bounds are finite and
// ordered.
func (p Preset) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(p); err != nil {
		fieldErrs := validator.ExtractValidationErrors(err)
		if fieldErrs == nil {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	var rules []validator.Rule
	if p.Min != nil {
		rules = append(rules, validator.Finite("min", *p.Min))
	}
	if p.Max != nil {
		rules = append(rules, validator.Finite("max", *p.Max))
	}
	if p.Min != nil && p.Max != nil && !math.IsNaN(*p.Min) && !math.IsNaN(*p.Max) {
		rules = append(rules, validator.MaxNum("min", *p.Min, *p.Max))
	}
	if err := validator.Apply(rules...); err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (p Preset) clone() Preset {
	out := p
	if p.Min != nil {
		v := *p.Min
		out.Min = &v
	}
	if p.Max != nil {
		v := *p.Max
		out.Max = &v
	}
	if p.Digits != nil {
		v := *p.Digits
		out.Digits = &v
	}
	return out
}

func invalid(name string, err error) error {
	return errors.Join(fmt.Errorf("%w: %q", ErrInvalidPreset, name), err)
}

func ptr[T any](v T) *T { return &v }

// Defaults returns the presets served when no presets file is configured.
func Defaults() []Preset {
	return []Preset{
		{Name: "money", Description: "Non-negative amount with cents", Min: ptr(0.0), Digits: ptr(2)},
		{Name: "percent", Description: "Percentage from 0 to 100", Min: ptr(0.0), Max: ptr(100.0), Digits: ptr(2)},
		{Name: "quantity", Description: "Whole non-negative count", Min: ptr(0.0), Digits: ptr(0)},
		{Name: "signed", Description: "Any finite decimal, four digits", Digits: ptr(4)},
	}
}
