package datemath

import "errors"

// ErrUnparsable marks date/time text the parser could not understand. It is
// a caller-facing "please rephrase" condition, not an internal failure.
var ErrUnparsable = errors.New("could not understand date/time text")
