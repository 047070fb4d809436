package insights

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"f1insights/internal/models"
)

// maxPromptResults caps how many results feed a comparison prompt.
const maxPromptResults = 10

// formatDriverData renders a driver's recent results as the plain-text
// block embedded in comparison prompts. Unknown numerics render as
// "N/A" so the model is not fed misleading zeros. Session lookups that
// fail leave the race name and date unknown but keep the row.
func (s *Service) formatDriverData(ctx context.Context, name string, results []models.Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No recent result data available for %s.", name)
	}

	if len(results) > maxPromptResults {
		results = results[:maxPromptResults]
	}

	lines := []string{fmt.Sprintf("Latest Results for %s (limited to %d):", name, maxPromptResults)}
	for _, r := range results {
		raceName := "Unknown Race"
		raceDate := "Unknown Date"

		session, err := s.OpenF1.Session(ctx, r.SessionKey)
		if err == nil && session != nil {
			if session.SessionName != "" {
				raceName = session.SessionName
			}
			if !session.DateStart.IsZero() {
				raceDate = session.DateStart.Format("02/01/2006")
			}
		}

		lines = append(lines, fmt.Sprintf(
			"- %s (%s): Position %s, Points %s, Laps Completed %s, Status: %s",
			raceName, raceDate,
			fmtInt(r.Position), fmtFloat(r.Points), fmtInt(r.Laps), fmtString(r.Status)))
	}
	return strings.Join(lines, "\n")
}

func fmtInt(n *int) string {
	if n == nil {
		return "N/A"
	}
	return strconv.Itoa(*n)
}

func fmtFloat(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func fmtString(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
