// file: internals/features/program/occurrences/service/calendar_resolver.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

/* =========================================================
 * Calendar Resolver — murni, tanpa DB
 * Walk tanggal per block, cocokkan weekday, kurangi libur.
 * ========================================================= */

const dateKeyLayout = "2006-01-02"

// BlockWindow = rentang tanggal inklusif satu block, sudah di timezone block
type BlockWindow struct {
	Start time.Time // tengah malam di Loc
	End   time.Time // tengah malam di Loc (inklusif)
	Loc   *time.Location
}

// DateKey membentuk kunci kalender "YYYY-MM-DD"
func DateKey(t time.Time) string { return t.Format(dateKeyLayout) }

// ResolveSessionDates menghasilkan tanggal-tanggal kandidat (ascending, unik)
// untuk session dengan weekday tertentu:
//   - per block: jalan dari start..end inklusif, ambil yang weekday-nya cocok
//   - block dengan end < start menghasilkan kosong (bukan error)
//   - tanggal yang ada di excluded dibuang
//   - union antar block, dedup per tanggal kalender
func ResolveSessionDates(weekday time.Weekday, blocks []BlockWindow, excluded map[string]struct{}) []time.Time {
	seen := make(map[string]time.Time)

	for _, b := range blocks {
		loc := b.Loc
		if loc == nil {
			loc = time.UTC
		}
		cur := startOfDayInLoc(b.Start, loc)
		end := startOfDayInLoc(b.End, loc)
		for !cur.After(end) {
			if cur.Weekday() == weekday {
				key := DateKey(cur)
				if _, skip := excluded[key]; !skip {
					if _, dup := seen[key]; !dup {
						seen[key] = cur
					}
				}
			}
			cur = cur.AddDate(0, 0, 1)
		}
	}

	out := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return DateKey(out[i]) < DateKey(out[j]) })
	return out
}

/* =========================================================
 * Helper tanggal & jam
 * ========================================================= */

func startOfDayInLoc(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// parseTODString menerima "HH:MM:SS" atau "HH:MM"
func parseTODString(s string) (h, m, sec int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, fmt.Errorf("time-of-day kosong")
	}
	if t, e := time.Parse("15:04:05", s); e == nil {
		return t.Hour(), t.Minute(), t.Second(), nil
	}
	if t, e := time.Parse("15:04", s); e == nil {
		return t.Hour(), t.Minute(), 0, nil
	}
	return 0, 0, 0, fmt.Errorf("format time-of-day tidak dikenal: %q", s)
}

// combineLocalDateAndTOD menggabungkan tanggal kalender dengan jam "HH:MM[:SS]"
// di timezone loc, lalu hasilnya dipakai sebagai timestamp penuh.
func combineLocalDateAndTOD(date time.Time, tod string, loc *time.Location) (time.Time, error) {
	h, m, s, err := parseTODString(tod)
	if err != nil {
		return time.Time{}, err
	}
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, loc), nil
}
