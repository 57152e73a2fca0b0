package quiz

import "errors"

// Guarded session operations return one of these errors, wrapped with
// context, and leave the session state untouched.
var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current phase.
	ErrInvalidTransition = errors.New("invalid quiz transition")

	// ErrNoSelection is returned by Confirm when no option is selected.
	ErrNoSelection = errors.New("no option selected")

	// ErrOptionOutOfRange is returned by SelectOption for an index the
	// current question does not have.
	ErrOptionOutOfRange = errors.New("option index out of range")
)
