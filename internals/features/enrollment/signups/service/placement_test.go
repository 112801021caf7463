package service

import (
	"testing"

	m "playgroupku_backend/internals/features/enrollment/signups/model"
)

func intptr(v int) *int { return &v }

func TestDecideInitialStatus(t *testing.T) {
	cases := []struct {
		name      string
		capacity  *int
		waitlist  bool
		confirmed int64
		want      m.SignupStatus
	}{
		{"unlimited", nil, false, 999, m.SignupStatusConfirmed},
		{"slot tersedia", intptr(10), false, 9, m.SignupStatusConfirmed},
		{"penuh dengan waitlist", intptr(10), true, 10, m.SignupStatusWaitlisted},
		{"penuh tanpa waitlist", intptr(10), false, 10, m.SignupStatusPending},
		{"over penuh dengan waitlist", intptr(5), true, 12, m.SignupStatusWaitlisted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecideInitialStatus(tc.capacity, tc.waitlist, tc.confirmed)
			if got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestPartitionByStatus(t *testing.T) {
	rows := []m.SignupModel{
		{SignupChildName: "Andi", SignupStatus: m.SignupStatusConfirmed},
		{SignupChildName: "Budi", SignupStatus: m.SignupStatusWaitlisted},
		{SignupChildName: "Citra", SignupStatus: m.SignupStatusConfirmed},
	}

	parts := PartitionByStatus(rows)
	if len(parts[m.SignupStatusConfirmed]) != 2 {
		t.Fatalf("confirmed = %d, want 2", len(parts[m.SignupStatusConfirmed]))
	}
	if len(parts[m.SignupStatusWaitlisted]) != 1 {
		t.Fatalf("waitlisted = %d, want 1", len(parts[m.SignupStatusWaitlisted]))
	}
	if len(parts[m.SignupStatusPending]) != 0 || len(parts[m.SignupStatusWithdrawn]) != 0 {
		t.Fatal("empty groups should exist but be empty")
	}
	if parts[m.SignupStatusConfirmed][0].SignupChildName != "Andi" {
		t.Fatal("partition should preserve input order")
	}
}
