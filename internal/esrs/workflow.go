package esrs

import "errors"

// Entry workflow states. Every entry starts in progress; approval and
// rejection are terminal.
const (
	EntryInProgress = "In Progress"
	EntryApproved   = "Approved"
	EntryRejected   = "Rejected"
)

// ErrInvalidTransition is returned when a status change is not allowed
// by the workflow.
var ErrInvalidTransition = errors.New("status transition not allowed")

var transitions = map[string][]string{
	EntryInProgress: {EntryApproved, EntryRejected},
	EntryApproved:   {},
	EntryRejected:   {},
}

// IsEntryStatus reports whether s is a known workflow state.
func IsEntryStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether an entry may move from one workflow
// state to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
