package decimalinput

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"

	"github.com/govalues/decimal"
)

// Result is the outcome of Parse. A valid result carries the normalized
// text and its number; an invalid result carries neither.
type Result struct {
	Valid  bool
	Value  string
	Number SafeDecimal
}

// Get returns the normalized text and number with ok reporting validity.
func (r Result) Get() (value string, number SafeDecimal, ok bool) {
	return r.Value, r.Number, r.Valid
}

// Decimal returns Value as an exact decimal, keeping the scale the user
// typed: "1.10" has scale 2. An empty Value is zero.
func (r Result) Decimal() (decimal.Decimal, error) {
	if !r.Valid {
		return decimal.Decimal{}, ErrInvalidResult
	}
	if r.Value == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.Parse(r.Value)
}

type resultJSON struct {
	Valid  bool         `json:"valid"`
	Value  *string      `json:"value"`
	Number *SafeDecimal `json:"number"`
}

// MarshalJSON renders an invalid result with null value and number.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Valid: r.Valid}
	if r.Valid {
		out.Value = &r.Value
		out.Number = &r.Number
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the shape produced by MarshalJSON. A payload that
// claims validity without both fields decodes as invalid.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = Result{}
	if in.Valid && in.Value != nil && in.Number != nil {
		*r = Result{Valid: true, Value: *in.Value, Number: *in.Number}
	}
	return nil
}

// Parse normalizes raw and validates it against opts. It accepts the
// intermediate states of a field being typed, such as "", "." or "00.",
// while enforcing the bounds and digit limit on the number they denote.
//
// An unset digit limit places no limit on fractional digits.
//
//	r := decimalinput.Parse(".5", decimalinput.WithDigits(2))
//	// r.Valid == true, r.Value == "0.5", r.Number == 0.5
func Parse(raw string, opts ...Option) Result {
	o := NewOptions(opts...)

	normalized := Normalize(raw)
	n := number(normalized)

	if IsStructurallyValid(normalized, o.Digits) && isSafeDecimal(n, o.Digits) && o.inRange(n) {
		return Result{Valid: true, Value: normalized, Number: SafeDecimal(n)}
	}
	return Result{}
}

// Validate reports whether input is a number that satisfies opts. It is
// meant for values that are already parsed, so it never looks at strings:
// any input that is not a Go integer or float, including strings and
// bools, is rejected.
//
// Unlike Parse, an unset digit limit defaults to DefaultValidateDigits.
func Validate(input any, opts ...Option) bool {
	n, ok := numericValue(input)
	if !ok {
		return false
	}

	o := NewOptions(opts...)
	digits := DefaultValidateDigits
	if o.Digits != nil {
		digits = *o.Digits
	}

	return o.inRange(n) && WithinDigits(n, &digits) && IsSafeDecimal(n)
}

func numericValue(input any) (float64, bool) {
	if input == nil {
		return 0, false
	}
	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32:
		// Widen through the shortest float32 text so 0.1 stays 0.1.
		f, err := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'f', -1, 32), 64)
		return f, err == nil || errors.Is(err, strconv.ErrRange)
	case reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
