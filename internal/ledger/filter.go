package ledger

import (
	"time"

	"pizzapos-backend/internal/domain"
)

const civilDateLayout = "2006-01-02"

// CivilDate projects an instant into the business timezone and returns its
// calendar date as YYYY-MM-DD. Window comparisons are made on these strings,
// never on raw instants, so an entry a minute before local midnight lands on
// the correct day.
func CivilDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(civilDateLayout)
}

// Filter selects entries by an inclusive civil-date window and an optional
// type. An empty Type matches everything, including voided entries; the
// pseudo-type domain.FilterVoided matches only voided entries regardless of
// their stored type; any concrete type matches active entries of that type.
type Filter struct {
	Start string // YYYY-MM-DD, inclusive
	End   string // YYYY-MM-DD, inclusive
	Type  domain.EntryType
}

// Match reports whether a single entry falls inside the filter.
func (f Filter) Match(e *domain.LedgerEntry, loc *time.Location) bool {
	day := CivilDate(e.OccurredAt, loc)
	if f.Start != "" && day < f.Start {
		return false
	}
	if f.End != "" && day > f.End {
		return false
	}
	switch f.Type {
	case "":
		return true
	case domain.FilterVoided:
		return e.Voided()
	default:
		return e.Type == f.Type && !e.Voided()
	}
}

// Apply returns the entries matching the filter, preserving input order.
func Apply(entries []domain.LedgerEntry, f Filter, loc *time.Location) []domain.LedgerEntry {
	var out []domain.LedgerEntry
	for i := range entries {
		if f.Match(&entries[i], loc) {
			out = append(out, entries[i])
		}
	}
	return out
}
