package terminal

import "errors"

// ErrAborted is returned when the user leaves a program without resolving the
// form.
var ErrAborted = errors.New("terminal: aborted by user")
