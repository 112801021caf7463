package service

import (
	"testing"
	"time"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func date(loc *time.Location, y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func keys(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, DateKey(d))
	}
	return out
}

func TestResolveSessionDates_ExclusionRemovesMatchingWednesday(t *testing.T) {
	loc := mustLoc(t, "Asia/Jakarta")
	blocks := []BlockWindow{{
		Start: date(loc, 2026, time.January, 1),
		End:   date(loc, 2026, time.January, 31),
		Loc:   loc,
	}}
	excluded := map[string]struct{}{"2026-01-14": {}}

	got := keys(ResolveSessionDates(time.Wednesday, blocks, excluded))
	want := []string{"2026-01-07", "2026-01-21", "2026-01-28"}

	if len(got) != len(want) {
		t.Fatalf("dates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates[%d] = %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestResolveSessionDates_UnionAcrossBlocksNoDuplicates(t *testing.T) {
	loc := mustLoc(t, "Asia/Jakarta")
	// Dua block berbagi tanggal batas 2026-03-02 (Senin)
	blocks := []BlockWindow{
		{Start: date(loc, 2026, time.February, 2), End: date(loc, 2026, time.March, 2), Loc: loc},
		{Start: date(loc, 2026, time.March, 2), End: date(loc, 2026, time.March, 30), Loc: loc},
	}

	got := keys(ResolveSessionDates(time.Monday, blocks, nil))
	want := []string{
		"2026-02-02", "2026-02-09", "2026-02-16", "2026-02-23",
		"2026-03-02", "2026-03-09", "2026-03-16", "2026-03-23", "2026-03-30",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d dates %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dates[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveSessionDates_EmptyBlocks(t *testing.T) {
	if got := ResolveSessionDates(time.Friday, nil, nil); len(got) != 0 {
		t.Fatalf("expected no dates, got %v", keys(got))
	}
}

func TestResolveSessionDates_InvertedBlockYieldsNothing(t *testing.T) {
	loc := mustLoc(t, "Asia/Jakarta")
	blocks := []BlockWindow{{
		Start: date(loc, 2026, time.May, 31),
		End:   date(loc, 2026, time.May, 1),
		Loc:   loc,
	}}
	if got := ResolveSessionDates(time.Monday, blocks, nil); len(got) != 0 {
		t.Fatalf("inverted block should yield nothing, got %v", keys(got))
	}
}

func TestParseTODString(t *testing.T) {
	h, m, s, err := parseTODString("09:30:15")
	if err != nil || h != 9 || m != 30 || s != 15 {
		t.Fatalf("parse 09:30:15 = %d:%d:%d err=%v", h, m, s, err)
	}
	h, m, s, err = parseTODString("16:45")
	if err != nil || h != 16 || m != 45 || s != 0 {
		t.Fatalf("parse 16:45 = %d:%d:%d err=%v", h, m, s, err)
	}
	if _, _, _, err := parseTODString("siang"); err == nil {
		t.Fatal("expected error for bad time-of-day")
	}
}

func TestCombineLocalDateAndTOD(t *testing.T) {
	loc := mustLoc(t, "Asia/Jakarta")
	d := date(loc, 2026, time.January, 7)

	got, err := combineLocalDateAndTOD(d, "09:30", loc)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	// Asia/Jakarta = UTC+7
	wantUTC := time.Date(2026, time.January, 7, 2, 30, 0, 0, time.UTC)
	if !got.UTC().Equal(wantUTC) {
		t.Fatalf("combined = %s, want %s", got.UTC(), wantUTC)
	}
}
