package slabcache

import "time"

// MonthLabelLayout is the fixed month label format, "MMM yy" (e.g. "Jan 26").
const MonthLabelLayout = "Jan 06"

// MonthlyEntry is one month of transaction summary data.
//
// Position is 1-based and reassigned on every normalization pass - it is an
// ordering aid, not a stable identity. Two entries describe the same month
// iff their labels parse to the same (year, calendar month) pair.
type MonthlyEntry struct {
	Position   int    `json:"position"`
	Month      string `json:"month"`
	Settled    int64  `json:"settled"`
	Authorized int64  `json:"authorized"`
}

// Window is a sequence of monthly entries. On the derive path it is gapless,
// chronologically ascending and exactly slab+1 entries long; on the fetch
// path it carries whatever the collaborator returned, unmodified.
type Window []MonthlyEntry

// TryParseMonthLabel parses the fixed "MMM yy" month label. ok is false for
// anything else, including verbose month names and trailing text.
func TryParseMonthLabel(label string) (time.Time, bool) {
	t, err := time.Parse(MonthLabelLayout, label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type monthKey struct {
	year  int
	month time.Month
}

// Derive normalizes raw into a dense window of exactly months+1 entries:
// months complete calendar months strictly before ref's month, plus ref's
// month itself, oldest first. Raw entries whose labels do not parse are
// ignored; target months with no matching raw entry get zero totals.
// Positions are reassigned 1..months+1 in output order.
//
// Derive is pure: it never mutates raw, never fails, and is idempotent for a
// fixed (months, ref) - normalizing an already-normalized window returns an
// equal result.
func Derive(raw Window, months int, ref time.Time) Window {
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	byMonth := make(map[monthKey]MonthlyEntry, len(raw))
	for _, e := range raw {
		t, ok := TryParseMonthLabel(e.Month)
		if !ok {
			continue // malformed label: treated as absent, never an error
		}
		k := monthKey{t.Year(), t.Month()}
		if _, dup := byMonth[k]; !dup {
			byMonth[k] = e
		}
	}

	out := make(Window, 0, months+1)
	for i := 0; i <= months; i++ {
		// first-of-month anchors make AddDate safe from day overflow
		m := anchor.AddDate(0, i-months, 0)
		e := MonthlyEntry{
			Position: i + 1,
			Month:    m.Format(MonthLabelLayout),
		}
		if src, ok := byMonth[monthKey{m.Year(), m.Month()}]; ok {
			e.Settled = src.Settled
			e.Authorized = src.Authorized
		}
		out = append(out, e)
	}
	return out
}
