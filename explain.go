package decimalinput

import "github.com/didley/decimal-input/pkg/validator"

// ExplainField is the field name Explain reports failures under.
const ExplainField = "value"

// Explain re-runs the checks behind Parse one by one and returns the ones
// that fail as validator.ValidationErrors, or nil when Parse accepts raw.
// Parse itself never says why it rejected an input; Explain is for callers
// that need a message to show.
func Explain(raw string, opts ...Option) error {
	o := NewOptions(opts...)
	normalized := Normalize(raw)
	n := number(normalized)

	shapeOK := func(s string) bool {
		return IsStructurallyValid(s, nil) && isSafeDecimal(n, nil)
	}
	rules := []validator.Rule{
		validator.DecimalFormat(ExplainField, normalized, shapeOK),
	}
	if !shapeOK(normalized) {
		return validator.Apply(rules...)
	}

	if o.Digits != nil {
		rules = append(rules, validator.MaxFractionDigits(ExplainField, normalized, *o.Digits))
		if s, ok := FractionDigits(normalized); !ok || len(s) <= *o.Digits {
			// The text fits; the number's own shortest form must fit too.
			rules = append(rules, validator.Rule{
				Check: func() bool { return isSafeDecimal(n, o.Digits) },
				Error: validator.MaxFractionDigits(ExplainField, SafeDecimal(n).String(), *o.Digits).Error,
			})
		}
	}
	if o.Min != nil {
		rules = append(rules, validator.MinNum(ExplainField, n, *o.Min))
	}
	if o.Max != nil {
		rules = append(rules, validator.MaxNum(ExplainField, n, *o.Max))
	}

	return validator.Apply(rules...)
}
