package models

import "testing"

func TestMatchTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{MatchStatusPending, MatchStatusVerified},
		{MatchStatusVerified, MatchStatusReturnedToOwner},
		{MatchStatusVerified, MatchStatusReturnedByFinder},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	forbidden := []struct{ from, to string }{
		// No skipping verification.
		{MatchStatusPending, MatchStatusReturnedToOwner},
		{MatchStatusPending, MatchStatusReturnedByFinder},
		// No reverting.
		{MatchStatusVerified, MatchStatusPending},
		{MatchStatusReturnedToOwner, MatchStatusVerified},
		// Terminal states absorb.
		{MatchStatusReturnedToOwner, MatchStatusReturnedByFinder},
		{MatchStatusReturnedByFinder, MatchStatusReturnedToOwner},
	}
	for _, tr := range forbidden {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be rejected", tr.from, tr.to)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if IsTerminalStatus(MatchStatusPending) || IsTerminalStatus(MatchStatusVerified) {
		t.Error("open statuses must not be terminal")
	}
	if !IsTerminalStatus(MatchStatusReturnedToOwner) || !IsTerminalStatus(MatchStatusReturnedByFinder) {
		t.Error("returned statuses must be terminal")
	}
}

func TestReturnedStatusFor(t *testing.T) {
	if got := ReturnedStatusFor(RoleOwner); got != MatchStatusReturnedToOwner {
		t.Errorf("owner confirmation: got %s", got)
	}
	if got := ReturnedStatusFor(RoleFinder); got != MatchStatusReturnedByFinder {
		t.Errorf("finder confirmation: got %s", got)
	}
}

func TestRoleOf(t *testing.T) {
	m := Match{
		LostItem:  Item{ReporterID: 7},
		FoundItem: Item{ReporterID: 9},
	}

	if got := m.RoleOf(7); got != RoleOwner {
		t.Errorf("lost reporter: got %q", got)
	}
	if got := m.RoleOf(9); got != RoleFinder {
		t.Errorf("found reporter: got %q", got)
	}
	if got := m.RoleOf(3); got != "" {
		t.Errorf("non-participant: got %q", got)
	}
}
