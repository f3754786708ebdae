package domain

import "testing"

func TestEditable(t *testing.T) {
	cases := []struct {
		status   TicketStatus
		unlocked bool
		want     bool
	}{
		{TicketStatusOpen, false, true},
		{TicketStatusInProgress, false, true},
		{TicketStatusOnHold, false, true},
		{TicketStatusResolved, false, true},
		{TicketStatusVerified, false, false},
		{TicketStatusVerified, true, true},
		{TicketStatusClosed, false, false},
		{TicketStatusClosed, true, false},
	}
	for _, tc := range cases {
		ticket := Ticket{Status: tc.status, EditUnlocked: tc.unlocked}
		if got := ticket.Editable(); got != tc.want {
			t.Errorf("Editable(%s, unlocked=%v) = %v, want %v", tc.status, tc.unlocked, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusOnHold, TicketStatusResolved} {
		if status.IsTerminal() {
			t.Errorf("%s reported terminal", status)
		}
	}
	for _, status := range []TicketStatus{TicketStatusVerified, TicketStatusClosed} {
		if !status.IsTerminal() {
			t.Errorf("%s reported non-terminal", status)
		}
	}
}

func TestDefaultPermissionsWithinCatalog(t *testing.T) {
	known := make(map[Permission]bool)
	for _, perm := range PermissionCatalog() {
		known[perm] = true
	}
	defaults := DefaultPermissions()
	for role, perms := range defaults {
		for _, perm := range perms {
			if !known[perm] {
				t.Errorf("default for %s includes unknown permission %s", role, perm)
			}
		}
	}
	if len(defaults[RoleAdmin]) != len(PermissionCatalog()) {
		t.Error("admin defaults must cover the full catalog")
	}
}
