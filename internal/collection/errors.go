package collection

import "errors"

// Sentinel errors for the collection package.
var (
	ErrIO           = errors.New("collection: io error")
	ErrInvalidText  = errors.New("collection: source is not valid UTF-8 text")
	ErrNotDirectory = errors.New("collection: not a directory")
	ErrInvalidEntry = errors.New("collection: invalid entry")
)
