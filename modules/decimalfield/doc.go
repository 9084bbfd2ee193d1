// Package decimalfield serves live validation for decimal text fields.
//
// A page binds its input to datastar signals and posts every keystroke to
// /field. The handler parses the raw text with decimalinput.Parse and
// patches the signals back: an accepted keystroke replaces the value with
// its normalized form, a rejected one restores the last accepted value and
// sets an error message. API clients use /validate, which returns the
// Result as JSON with the reasons for a rejection in meta.errors.
//
// Constraints come from a named preset, from explicit request parameters,
// or from Config.DefaultDigits, in that order of increasing precedence for
// the first two and as a fallback for the digit limit.
//
//	svc := decimalfield.NewService(cfg, presets, decimalfield.Views{}, log)
//	r.Mount("/", svc.Handle())
package decimalfield
