package decimalfield

import (
	"github.com/didley/decimal-input/pkg/validator"
	"github.com/didley/decimal-input/svc/preset"
)

// ValidateRequest is the query of GET /validate. Explicit bounds and digits
// override those of the preset.
type ValidateRequest struct {
	Value  string   `query:"value"`
	Preset string   `query:"preset"`
	Min    *float64 `query:"min"`
	Max    *float64 `query:"max"`
	Digits *int     `query:"digits" validate:"omitempty,gte=0,lte=20"`
}

// Validate checks the option parameters. The value itself is never an
// error: an unacceptable value is a normal, invalid result.
func (r ValidateRequest) Validate(maxInputLength int) error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs := validator.ExtractValidationErrors(err)
		if fieldErrs == nil {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	rules := []validator.Rule{validator.MaxLenString("value", r.Value, maxInputLength)}
	if r.Min != nil {
		rules = append(rules, validator.Finite("min", *r.Min))
	}
	if r.Max != nil {
		rules = append(rules, validator.Finite("max", *r.Max))
	}
	if err := validator.Apply(rules...); err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// FieldSignals are the datastar signals POST /field reads. Accepted is the
// last value the server accepted; a rejected keystroke restores it.
type FieldSignals struct {
	Value    string `json:"value"`
	Accepted string `json:"accepted"`
	Preset   string `json:"preset"`
}

// FieldPatch is the signal patch POST /field answers with.
type FieldPatch struct {
	Value    string   `json:"value"`
	Accepted string   `json:"accepted"`
	Valid    bool     `json:"valid"`
	Number   *float64 `json:"number"`
	Error    string   `json:"error"`
}

// Presets is the preset lookup the module needs. *preset.Service
// implements it.
type Presets interface {
	Get(name string) (preset.Preset, error)
	List() []preset.Preset
}
