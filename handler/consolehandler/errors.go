package consolehandler

import "errors"

// ErrClosed is returned by Handle after the handler has been closed.
var ErrClosed = errors.New("consolehandler: handler closed")
