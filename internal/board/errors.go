package board

import "errors"

var (
	// ErrNotFound is returned when a task or column id does not exist
	ErrNotFound = errors.New("not found")
	// ErrNoOpEdit is returned when an edit resolves to empty text and the prior value is kept
	ErrNoOpEdit = errors.New("empty edit discarded")
	// ErrInvalidDrag is returned when a drop arrives with no drag in progress
	ErrInvalidDrag = errors.New("no drag in progress")
	// ErrNoPendingDeletion is returned when confirming with nothing staged
	ErrNoPendingDeletion = errors.New("no deletion pending")
	// ErrUnknownMember is returned when assigning someone outside the roster
	ErrUnknownMember = errors.New("not a project member")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
