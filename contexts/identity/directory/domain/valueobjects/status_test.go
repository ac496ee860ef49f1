package valueobjects

import "testing"

func TestUserStatusTransitions(t *testing.T) {
	cases := []struct {
		from    UserStatus
		to      UserStatus
		allowed bool
	}{
		{UserStatusInactive, UserStatusActive, true},
		{UserStatusInactive, UserStatusSuspended, false},
		{UserStatusInactive, UserStatusDisabled, false},
		{UserStatusActive, UserStatusSuspended, true},
		{UserStatusSuspended, UserStatusActive, true},
		{UserStatusActive, UserStatusDisabled, true},
		{UserStatusSuspended, UserStatusDisabled, true},
		{UserStatusDisabled, UserStatusActive, false},
		{UserStatusInactive, UserStatusClosed, true},
		{UserStatusActive, UserStatusClosed, true},
		{UserStatusSuspended, UserStatusClosed, true},
		{UserStatusDisabled, UserStatusClosed, true},
		{UserStatusClosed, UserStatusActive, false},
		{UserStatusClosed, UserStatusInactive, false},
		{UserStatusActive, UserStatusActive, true},
		{UserStatusClosed, UserStatusClosed, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestParseUserStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseUserStatus("FROZEN"); err == nil {
		t.Fatalf("expected unknown status to be rejected")
	}
	if status, err := ParseUserStatus("ACTIVE"); err != nil || status != UserStatusActive {
		t.Fatalf("expected ACTIVE to parse, got %v %v", status, err)
	}
}
