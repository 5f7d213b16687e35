package gate

import "errors"

// Sentinel kinds for gate errors.
var (
	ErrBusy = errors.New("command gate busy")
)
