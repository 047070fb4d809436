package models

import "time"

// Driver is a single entrant as reported by the statistics API.
// DriverNumber is the stable identity within a season.
type Driver struct {
	DriverNumber int    `json:"driver_number"`
	FullName     string `json:"full_name"`
	CountryCode  string `json:"country_code,omitempty"`
	HeadshotURL  string `json:"headshot_url,omitempty"`
}

// Session is a discrete on-track event (practice, qualifying, race)
// identified by a stable key. DateStart keeps the UTC offset reported
// by the API; a zero DateStart means the API did not provide a
// parseable start date.
type Session struct {
	SessionKey       int64     `json:"session_key"`
	SessionName      string    `json:"session_name"`
	SessionType      string    `json:"session_type"`
	DateStart        time.Time `json:"date_start"`
	CircuitShortName string    `json:"circuit_short_name,omitempty"`
	Location         string    `json:"location,omitempty"`
}

// SessionTypeRace marks the sessions that make up the race calendar.
const SessionTypeRace = "Race"

// Circuit returns the best available display name for where the
// session takes place.
func (s Session) Circuit() string {
	if s.CircuitShortName != "" {
		return s.CircuitShortName
	}
	if s.Location != "" {
		return s.Location
	}
	return "Unknown Location"
}

// Result is a driver's outcome in a single session. The session is
// referenced by key, not embedded: resolving it is a separate lookup
// that can fail on its own. Numeric fields are pointers because the
// API reports them inconsistently; nil means unknown, which is
// distinct from zero.
type Result struct {
	DriverNumber int      `json:"driver_number"`
	SessionKey   int64    `json:"session_key"`
	Position     *int     `json:"position"`
	Points       *float64 `json:"points"`
	Laps         *int     `json:"laps"`
	Status       string   `json:"status,omitempty"`
}

// CalendarEntry is a Race session tagged with whether it has already
// started. IsPast is derived at query time, never stored.
type CalendarEntry struct {
	Session
	IsPast bool
}

// Article is a news item discovered on the listing page. Body stays
// empty until analysis of this specific article is requested.
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// Analysis is the transient output of the three text-analysis tasks
// for one article. It is produced per request and never cached.
type Analysis struct {
	Summary   string   `json:"summary"`
	Entities  []string `json:"entities"`
	Sentiment string   `json:"sentiment"`
}
