package listsync

import "errors"

var (
	// ErrNoteNotInList is returned in strict mode when a delete names an id
	// the list does not hold.
	ErrNoteNotInList = errors.New("note is not in the list")

	ErrUnknownEvent = errors.New("unknown note event")
)
