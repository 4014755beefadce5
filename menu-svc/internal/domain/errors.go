package domain

import "errors"

// Callers match these with errors.Is; the operations wrap them with detail.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateItem   = errors.New("item already on menu")
	ErrNotFound        = errors.New("item not on menu")
	ErrInvalidScore    = errors.New("rating score must be between 1 and 5")
	ErrFileFormat      = errors.New("malformed restaurant file")
	ErrIO              = errors.New("restaurant file could not be accessed")
)
