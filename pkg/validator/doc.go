// Package validator provides composable, translation-friendly validation
// rules and a bridge to struct-tag validation.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error and matches ErrValidationFailed
// under errors.Is.
//
// # Rules
//
//   - MinNum, MaxNum            inclusive numeric bounds
//   - Finite                    rejects NaN and infinities
//   - MaxFractionDigits         character count after the decimal point
//   - DecimalFormat             caller-supplied shape check for decimal text
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Finite("amount", n),
//	    validator.MinNum("amount", n, 0),
//	    validator.MaxFractionDigits("amount", text, 2),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("amount"), verrs.Map(), ...
//	}
//
// # Struct tags
//
// Struct runs github.com/go-playground/validator/v10 over a tagged struct
// and returns the failures as ValidationErrors, so option records decoded
// from YAML or query strings report errors in the same shape as rules.
// Field names are taken from json, yaml, query or form tags.
//
// Rules hold no global state. The struct validator is built once and is
// safe for concurrent use.
package validator
