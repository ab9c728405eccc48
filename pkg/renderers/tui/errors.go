package tui

import "errors"

// ErrAborted indicates the user interrupted the prompt session.
var ErrAborted = errors.New("tui: session aborted")
