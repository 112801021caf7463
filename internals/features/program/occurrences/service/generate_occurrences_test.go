package service

import (
	"testing"
	"time"
)

func TestMissingDates_SkipsExisting(t *testing.T) {
	loc := mustLoc(t, "Asia/Jakarta")
	candidates := []time.Time{
		date(loc, 2026, time.January, 7),
		date(loc, 2026, time.January, 21),
		date(loc, 2026, time.January, 28),
	}
	existing := map[string]struct{}{
		"2026-01-07": {},
		"2026-01-28": {},
	}

	got := missingDates(candidates, existing)
	if len(got) != 1 || DateKey(got[0]) != "2026-01-21" {
		t.Fatalf("missing = %v, want [2026-01-21]", keys(got))
	}
}

func TestMissingDates_AllExisting(t *testing.T) {
	loc := mustLoc(t, "Asia/Jakarta")
	candidates := []time.Time{date(loc, 2026, time.January, 7)}
	existing := map[string]struct{}{"2026-01-07": {}}

	// Run kedua generator: tidak ada yang baru
	if got := missingDates(candidates, existing); len(got) != 0 {
		t.Fatalf("expected nothing missing, got %v", keys(got))
	}
}

func TestWindowFor_PicksContainingBlock(t *testing.T) {
	jakarta := mustLoc(t, "Asia/Jakarta")
	sydney := mustLoc(t, "Australia/Sydney")
	wins := []BlockWindow{
		{Start: date(jakarta, 2026, time.January, 1), End: date(jakarta, 2026, time.March, 31), Loc: jakarta},
		{Start: date(sydney, 2026, time.April, 1), End: date(sydney, 2026, time.June, 30), Loc: sydney},
	}

	w := windowFor(date(jakarta, 2026, time.May, 4), wins)
	if w == nil || w.Loc != sydney {
		t.Fatalf("expected sydney window, got %+v", w)
	}
	if w := windowFor(date(jakarta, 2026, time.December, 25), wins); w != nil {
		t.Fatalf("expected no window, got %+v", w)
	}
}
