package openf1

import (
	"sort"
	"time"

	"f1insights/internal/models"
)

// RacesForYear filters sessions down to races starting in the given
// calendar year (in the timestamp's own offset) and orders them
// chronologically. Sessions without a usable start date are skipped,
// not treated as errors. The sort is stable: the API documents no
// secondary ordering, so input order is the only tie-break.
func RacesForYear(sessions []models.Session, year int, now time.Time) []models.CalendarEntry {
	entries := make([]models.CalendarEntry, 0, len(sessions))
	for _, s := range sessions {
		if s.SessionType != models.SessionTypeRace {
			continue
		}
		if s.DateStart.IsZero() || s.DateStart.Year() != year {
			continue
		}
		entries = append(entries, models.CalendarEntry{
			Session: s,
			// A race starting exactly now counts as past.
			IsPast: !s.DateStart.After(now),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DateStart.Before(entries[j].DateStart)
	})
	return entries
}
