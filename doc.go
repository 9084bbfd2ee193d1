// Package decimalinput turns the raw text of a decimal input field into a
// canonical string and a validated number, or an explicit rejection.
//
// Text fields are validated while the user types, so the package tolerates
// the intermediate states a user passes through ("", ".", ".5", "00.")
// while still enforcing the final constraints: inclusive bounds and a
// maximum number of fractional digits.
//
// # Pipeline
//
// Parse runs four steps, each also exported for reuse:
//
//   - Normalize trims the text, expands a leading decimal point and drops
//     redundant leading zeros.
//   - IsStructurallyValid checks the shape of the normalized text.
//   - IsSafeDecimal checks that the number is finite and, optionally, that
//     it fits a fractional-digit limit counted by WithinDigits.
//   - the bounds from Options are applied.
//
// The result is either valid, with both Value and Number set, or invalid,
// with neither:
//
//	func handleChange(text string) {
//	    r := decimalinput.Parse(text, decimalinput.WithDigits(2), decimalinput.WithMin(0))
//	    if value, number, ok := r.Get(); ok {
//	        field.SetText(value)
//	        model.Amount = number
//	    }
//	}
//
// # Already-parsed numbers
//
// Validate applies the same bounds and safety checks to a Go number without
// going through text. Note the different default: Validate limits values to
// DefaultValidateDigits fractional digits when Options.Digits is unset,
// while Parse places no limit.
//
// # Errors
//
// Nothing in the pipeline returns an error or panics. Rejection is the
// invalid Result, with no reason attached. Explain re-runs the individual
// checks and reports failures as validator.ValidationErrors for callers
// that need to show a message.
//
// # Exact values
//
// Result.Decimal and SafeDecimal.Decimal convert an accepted value to a
// github.com/govalues/decimal Decimal for arithmetic that must not pick up
// binary floating-point error.
//
// Every function is pure and safe for concurrent use.
package decimalinput
