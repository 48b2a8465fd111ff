package intent

import "errors"

var (
	// ErrNoSuggestion is returned by Confirm when no candidate intent is
	// pending.
	ErrNoSuggestion = errors.New("no suggestion pending")
	// ErrAlreadyLocked is returned by Confirm once the intent is locked;
	// only the explicit override may change a locked intent.
	ErrAlreadyLocked = errors.New("intent already locked")
)
