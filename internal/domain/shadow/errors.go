package shadow

import "errors"

// Errors returned by the construction and serialization paths.
var (
	ErrUnknownClass = errors.New("unknown widget class")
	ErrMissingInfo  = errors.New("missing widget")
)
