package assistant

import "errors"

var (
	// ErrEmptyMessage is returned when the utterance is blank after trimming.
	ErrEmptyMessage = errors.New("message is empty")
)
