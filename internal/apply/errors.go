package apply

import "errors"

var (
	// ErrNoActions is returned when the confirmed action list is empty.
	ErrNoActions = errors.New("no actions to apply")
)
