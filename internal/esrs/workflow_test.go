package esrs

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{EntryInProgress, EntryApproved, true},
		{EntryInProgress, EntryRejected, true},
		{EntryInProgress, EntryInProgress, false},
		{EntryApproved, EntryRejected, false},
		{EntryApproved, EntryInProgress, false},
		{EntryRejected, EntryApproved, false},
		{EntryRejected, EntryInProgress, false},
		{"Draft", EntryApproved, false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsEntryStatus(t *testing.T) {
	for _, s := range []string{EntryInProgress, EntryApproved, EntryRejected} {
		if !IsEntryStatus(s) {
			t.Errorf("IsEntryStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Draft", "approved"} {
		if IsEntryStatus(s) {
			t.Errorf("IsEntryStatus(%q) = true, want false", s)
		}
	}
}
