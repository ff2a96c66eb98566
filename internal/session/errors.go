package session

import "errors"

// Sentinel errors for the session package.
var (
	ErrNoWords      = errors.New("session: collection has no words")
	ErrInvalidCount = errors.New("session: requested word count must be positive")
	ErrInvalidMode  = errors.New("session: unknown work mode")
	ErrEmptyAnswer  = errors.New("session: empty answer")
	ErrWrongPhase   = errors.New("session: command not allowed in current phase")
	ErrIO           = errors.New("session: io error")
)
