package decimalfield

import (
	"errors"

	decimalinput "github.com/didley/decimal-input"
	"github.com/didley/decimal-input/pkg/validator"
	"github.com/didley/decimal-input/svc/preset"
)

// resolve builds the options of a request: the preset's constraints,
// overridden by explicit ones, then the default digit limit if still unset.
// The merged bounds must be ordered.
func (s *Service) resolve(presetName string, explicit decimalinput.Options) (decimalinput.Options, error) {
	var opts []decimalinput.Option

	if presetName != "" {
		p, err := s.lookup(presetName)
		if err != nil {
			return decimalinput.Options{}, err
		}
		opts = append(opts, decimalinput.WithOptions(p.Options()))
	}
	opts = append(opts, decimalinput.WithOptions(explicit))

	o := decimalinput.NewOptions(opts...)
	if o.Digits == nil && s.cfg.DefaultDigits != nil {
		o = decimalinput.NewOptions(decimalinput.WithOptions(o), decimalinput.WithDigits(*s.cfg.DefaultDigits))
	}

	if o.Min != nil && o.Max != nil {
		if err := validator.Apply(validator.MaxNum("min", *o.Min, *o.Max)); err != nil {
			return decimalinput.Options{}, err
		}
	}
	return o, nil
}

func (s *Service) lookup(name string) (preset.Preset, error) {
	if s.presets == nil {
		return preset.Preset{}, unknownPreset(name)
	}
	p, err := s.presets.Get(name)
	if errors.Is(err, preset.ErrNotFound) {
		return preset.Preset{}, unknownPreset(name)
	}
	return p, err
}

func unknownPreset(name string) error {
	return validator.ValidationErrors{{
		Field:          "preset",
		Message:        "unknown preset",
		TranslationKey: "validation.preset",
		TranslationValues: map[string]any{
			"field": "preset",
			"value": name,
		},
	}}
}

// firstMessage is the message shown under the field.
func firstMessage(err error) string {
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		return errs[0].Message
	}
	if err != nil {
		return "invalid value"
	}
	return ""
}
