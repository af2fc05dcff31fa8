package usecase

import "errors"

// Errors shared by the interface editing use cases.
var (
	ErrNodeNotFound     = errors.New("widget not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrUnknownSection   = errors.New("unknown config section")
)
