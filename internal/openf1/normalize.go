package openf1

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"f1insights/internal/models"
)

// The raw* types mirror the wire records. The API reports numeric
// fields inconsistently (absent, null, quoted, fractional), so they
// decode through json.RawMessage and convert defensively: anything
// unparsable becomes nil, never a misleading zero. Normalization is
// the only place where "missing" is decided.

type rawDriver struct {
	DriverNumber json.RawMessage `json:"driver_number"`
	FullName     string          `json:"full_name"`
	CountryCode  string          `json:"country_code"`
	HeadshotURL  string          `json:"headshot_url"`
}

type rawSession struct {
	SessionKey       json.RawMessage `json:"session_key"`
	SessionName      string          `json:"session_name"`
	SessionType      string          `json:"session_type"`
	DateStart        string          `json:"date_start"`
	CircuitShortName string          `json:"circuit_short_name"`
	Location         string          `json:"location"`
}

type rawResult struct {
	DriverNumber json.RawMessage `json:"driver_number"`
	SessionKey   json.RawMessage `json:"session_key"`
	Position     json.RawMessage `json:"position"`
	Points       json.RawMessage `json:"points"`
	Laps         json.RawMessage `json:"laps"`
	Status       string          `json:"status"`
}

// normalizeDrivers drops records missing a full name or driver number
// and preserves the relative order of the survivors.
func normalizeDrivers(raw []rawDriver) []models.Driver {
	drivers := make([]models.Driver, 0, len(raw))
	for _, r := range raw {
		number := parseInt(r.DriverNumber)
		if r.FullName == "" || number == nil {
			continue
		}
		drivers = append(drivers, models.Driver{
			DriverNumber: *number,
			FullName:     r.FullName,
			CountryCode:  r.CountryCode,
			HeadshotURL:  r.HeadshotURL,
		})
	}
	return drivers
}

func normalizeSession(r rawSession) models.Session {
	var key int64
	if k := parseInt64(r.SessionKey); k != nil {
		key = *k
	}
	return models.Session{
		SessionKey:       key,
		SessionName:      r.SessionName,
		SessionType:      r.SessionType,
		DateStart:        parseStartDate(r.DateStart),
		CircuitShortName: r.CircuitShortName,
		Location:         r.Location,
	}
}

func normalizeResult(r rawResult) models.Result {
	var driverNumber int
	if n := parseInt(r.DriverNumber); n != nil {
		driverNumber = *n
	}
	var sessionKey int64
	if k := parseInt64(r.SessionKey); k != nil {
		sessionKey = *k
	}
	return models.Result{
		DriverNumber: driverNumber,
		SessionKey:   sessionKey,
		Position:     parseInt(r.Position),
		Points:       parseFloat(r.Points),
		Laps:         parseInt(r.Laps),
		Status:       r.Status,
	}
}

// parseStartDate accepts ISO-8601 with 'Z' or an explicit offset, or a
// bare local timestamp which the API sometimes emits; the original
// offset is preserved. A zero time marks an unusable date.
func parseStartDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func parseFloat(raw json.RawMessage) *float64 {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(raw json.RawMessage) *int {
	f := parseFloat(raw)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func parseInt64(raw json.RawMessage) *int64 {
	f := parseFloat(raw)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}
