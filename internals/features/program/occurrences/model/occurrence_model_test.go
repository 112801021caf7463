package model

import "testing"

func strptr(s string) *string { return &s }

func TestCancelReinstateRoundTrip(t *testing.T) {
	var occ OccurrenceModel

	occ.Cancel(strptr("guru sakit"))
	if !occ.OccurrenceIsCanceled {
		t.Fatal("expected cancelled")
	}
	if occ.OccurrenceCancellationReason == nil || *occ.OccurrenceCancellationReason != "guru sakit" {
		t.Fatalf("reason = %v", occ.OccurrenceCancellationReason)
	}

	occ.Reinstate()
	if occ.OccurrenceIsCanceled {
		t.Fatal("expected active after reinstate")
	}
	if occ.OccurrenceCancellationReason != nil {
		t.Fatalf("reason should be cleared, got %q", *occ.OccurrenceCancellationReason)
	}
}

func TestCancelTwiceKeepsLatestReason(t *testing.T) {
	var occ OccurrenceModel

	occ.Cancel(strptr("banjir"))
	occ.Cancel(strptr("gedung dipakai"))

	if !occ.OccurrenceIsCanceled {
		t.Fatal("expected still cancelled")
	}
	if occ.OccurrenceCancellationReason == nil || *occ.OccurrenceCancellationReason != "gedung dipakai" {
		t.Fatalf("reason = %v, want latest", occ.OccurrenceCancellationReason)
	}
}
