package consent

import "errors"

// Sentinel kinds for consent protocol errors. These are user-facing
// conditions, not failures: handlers translate them into explanatory
// messages with no state change.
var (
	ErrSelfTarget     = errors.New("interaction targets self")
	ErrTargetBusy     = errors.New("target already has a pending request")
	ErrNothingPending = errors.New("nothing pending")
)
