package openf1

import (
	"context"
	"strconv"
	"time"

	"f1insights/internal/httpx"
	"f1insights/internal/models"
)

// Per-endpoint timeouts mirror the upstream API's observed latency:
// the unfiltered race-session listing is slow, single-key lookups are
// not.
const (
	driversTimeout  = 15 * time.Second
	resultsTimeout  = 15 * time.Second
	sessionTimeout  = 10 * time.Second
	calendarTimeout = 30 * time.Second
)

// Client wraps the OpenF1 REST API. Responses are memoized by the
// underlying HTTP client, so repeated identical lookups within the
// cache TTL cost no network round-trips.
type Client struct {
	http *httpx.Client
}

func NewClient(http *httpx.Client) *Client {
	return &Client{http: http}
}

// Drivers lists drivers, optionally filtered by exact full name.
// Records without a usable name or number are dropped before they
// reach the caller.
func (c *Client) Drivers(ctx context.Context, fullName string) ([]models.Driver, error) {
	params := map[string]string{}
	if fullName != "" {
		params["full_name"] = fullName
	}

	var raw []rawDriver
	if err := c.http.GetJSON(ctx, "/drivers", params, driversTimeout, &raw); err != nil {
		return nil, err
	}
	return normalizeDrivers(raw), nil
}

// Results lists a driver's results, optionally restricted to a season.
// An empty slice is a valid answer, not a failure.
func (c *Client) Results(ctx context.Context, driverNumber, year int) ([]models.Result, error) {
	params := map[string]string{"driver_number": strconv.Itoa(driverNumber)}
	if year > 0 {
		params["session_year"] = strconv.Itoa(year)
	}

	var raw []rawResult
	if err := c.http.GetJSON(ctx, "/results", params, resultsTimeout, &raw); err != nil {
		return nil, err
	}

	results := make([]models.Result, 0, len(raw))
	for _, r := range raw {
		results = append(results, normalizeResult(r))
	}
	return results, nil
}

// Session resolves a single session by key. A nil session with a nil
// error means the API knows no session under that key, which is
// distinct from a fetch failure.
func (c *Client) Session(ctx context.Context, sessionKey int64) (*models.Session, error) {
	params := map[string]string{"session_key": strconv.FormatInt(sessionKey, 10)}

	var raw []rawSession
	if err := c.http.GetJSON(ctx, "/sessions", params, sessionTimeout, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	session := normalizeSession(raw[0])
	return &session, nil
}

// RaceSessions lists every session of type Race known to the API.
// Year filtering happens client-side; the API's own year filter has
// proven unreliable.
func (c *Client) RaceSessions(ctx context.Context) ([]models.Session, error) {
	params := map[string]string{"session_type": models.SessionTypeRace}

	var raw []rawSession
	if err := c.http.GetJSON(ctx, "/sessions", params, calendarTimeout, &raw); err != nil {
		return nil, err
	}

	sessions := make([]models.Session, 0, len(raw))
	for _, r := range raw {
		sessions = append(sessions, normalizeSession(r))
	}
	return sessions, nil
}
