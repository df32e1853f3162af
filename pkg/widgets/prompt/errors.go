package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrEmpty is reported when a required field is left blank.
	ErrEmpty = errors.New("prompt: a value is required")
	// ErrUnparsable is reported when typed text does not convert.
	ErrUnparsable = errors.New("prompt: value cannot be converted")
)
