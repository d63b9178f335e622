package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidAction   = errors.New("invalid action")

	// ErrExportFailed is the only error export callers see; causes are logged.
	ErrExportFailed = errors.New("failed to generate PDF, please try again")
)
