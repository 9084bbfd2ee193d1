// Package sanitizer provides small, stateless string transformations used to
// canonicalise user input before it is validated.
//
// Every helper has the signature func(string) string, or can be adapted to
// it with a closure, so helpers combine into pipelines with Apply and
// Compose:
//
//	normalize := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ExpandLeadingPoint,
//	    sanitizer.CollapseLeadingZeros,
//	)
//
//	normalize("  007.5 ") // "7.5"
//	normalize(".5")       // "0.5"
//
// # Decimal helpers
//
// ExpandLeadingPoint and CollapseLeadingZeros rewrite the shape of a decimal
// string the way a text field shows it while the user types. They never
// parse the number and never reject input: signs, interior digits and the
// decimal point pass through untouched.
//
// # Error handling
//
// None of the helpers returns an error. Input that does not match what a
// helper rewrites is returned unchanged.
//
// The package has no global state and is safe for concurrent use.
package sanitizer
