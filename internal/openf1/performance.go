package openf1

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"f1insights/internal/models"
)

// SessionLookup resolves a session by key. The session reference on a
// result is non-owning: this lookup can fail independently of the
// result fetch having succeeded.
type SessionLookup func(ctx context.Context, sessionKey int64) (*models.Session, error)

// PerformancePoint is one plotted race in a driver's season.
type PerformancePoint struct {
	Label    string
	Date     time.Time
	Position int
}

// sentinelDate orders entries whose resolved session carries no start
// date. Such entries sort first. Long-standing dashboard behavior,
// kept as is; see DESIGN.md before changing the sort key.
var sentinelDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// PerformanceSeries builds the chronological (race, finishing
// position) series for a set of results. Only classified finishes in
// Race sessions survive. A result whose session lookup fails is
// dropped with a warning instead of failing the series: availability
// over completeness.
func PerformanceSeries(ctx context.Context, results []models.Result, lookup SessionLookup) []PerformancePoint {
	points := make([]PerformancePoint, 0, len(results))
	for _, r := range results {
		if r.Position == nil {
			continue
		}

		session, err := lookup(ctx, r.SessionKey)
		if err != nil {
			slog.WarnContext(ctx, "skipping result, session lookup failed",
				"session_key", r.SessionKey, "err", err)
			continue
		}
		if session == nil || session.SessionType != models.SessionTypeRace {
			continue
		}

		date := session.DateStart
		if date.IsZero() {
			date = sentinelDate
		}

		name := session.SessionName
		if name == "" {
			name = "Unknown Race"
		}
		label := name
		if !session.DateStart.IsZero() {
			label = fmt.Sprintf("%s (%s)", name, session.DateStart.Format("2006-01-02"))
		}

		points = append(points, PerformancePoint{
			Label:    label,
			Date:     date,
			Position: *r.Position,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
