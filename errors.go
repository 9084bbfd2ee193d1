package decimalinput

import "errors"

// ErrInvalidResult is returned when an exact decimal is requested from a
// rejected Result.
var ErrInvalidResult = errors.New("decimalinput: result is not valid")
