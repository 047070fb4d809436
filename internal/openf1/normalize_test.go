package openf1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"f1insights/internal/httpx"
)

func TestNormalizeDriversDropsInvalidRecords(t *testing.T) {
	raw := []rawDriver{
		{FullName: "Max Verstappen", DriverNumber: json.RawMessage(`1`)},
		{FullName: "", DriverNumber: json.RawMessage(`44`)},
		{FullName: "Nameless Number", DriverNumber: nil},
		{FullName: "Charles Leclerc", DriverNumber: json.RawMessage(`16`)},
	}

	drivers := normalizeDrivers(raw)

	require.Len(t, drivers, 2)
	require.Equal(t, "Max Verstappen", drivers[0].FullName)
	require.Equal(t, 1, drivers[0].DriverNumber)
	require.Equal(t, "Charles Leclerc", drivers[1].FullName, "relative order must survive filtering")
}

func TestNormalizeDriversOutputNeverExceedsInput(t *testing.T) {
	raw := []rawDriver{
		{FullName: "A", DriverNumber: json.RawMessage(`2`)},
		{FullName: "B", DriverNumber: json.RawMessage(`"not a number"`)},
	}

	drivers := normalizeDrivers(raw)
	require.LessOrEqual(t, len(drivers), len(raw))
	for _, d := range drivers {
		require.NotEmpty(t, d.FullName)
		require.NotZero(t, d.DriverNumber)
	}
}

func TestNormalizeResultDefensiveNumerics(t *testing.T) {
	r := normalizeResult(rawResult{
		DriverNumber: json.RawMessage(`1`),
		SessionKey:   json.RawMessage(`9158`),
		Position:     json.RawMessage(`"3"`),
		Points:       json.RawMessage(`null`),
		Laps:         json.RawMessage(`garbage`),
		Status:       "Finished",
	})

	require.Equal(t, 1, r.DriverNumber)
	require.Equal(t, int64(9158), r.SessionKey)
	require.NotNil(t, r.Position)
	require.Equal(t, 3, *r.Position, "quoted numbers still parse")
	require.Nil(t, r.Points, "null must become unknown, not zero")
	require.Nil(t, r.Laps, "unparsable must become unknown, not zero")
}

func TestNormalizeResultFractionalPoints(t *testing.T) {
	r := normalizeResult(rawResult{Points: json.RawMessage(`12.5`)})
	require.NotNil(t, r.Points)
	require.Equal(t, 12.5, *r.Points)
}

func TestParseStartDate(t *testing.T) {
	zulu := parseStartDate("2024-03-02T15:00:00Z")
	require.False(t, zulu.IsZero())
	require.Equal(t, 2024, zulu.Year())

	offset := parseStartDate("2024-03-02T19:00:00+04:00")
	require.False(t, offset.IsZero())
	_, off := offset.Zone()
	require.Equal(t, 4*60*60, off, "original offset must be preserved")

	bare := parseStartDate("2024-03-02T15:00:00")
	require.False(t, bare.IsZero())

	require.True(t, parseStartDate("").IsZero())
	require.True(t, parseStartDate("03/02/2024").IsZero())
}

func TestSessionAbsenceIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "12345", r.URL.Query().Get("session_key"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(httpx.New(srv.URL, nil))

	session, err := client.Session(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, session)
}

func TestSessionNormalizesRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"session_key": 9158,
			"session_name": "Bahrain Grand Prix",
			"session_type": "Race",
			"date_start": "2024-03-02T15:00:00Z",
			"circuit_short_name": "Sakhir"
		}]`))
	}))
	defer srv.Close()

	client := NewClient(httpx.New(srv.URL, nil))

	session, err := client.Session(context.Background(), 9158)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, int64(9158), session.SessionKey)
	require.Equal(t, "Race", session.SessionType)
	require.Equal(t, "Sakhir", session.Circuit())
	require.Equal(t, time.March, session.DateStart.Month())
}

func TestDriversScenarioFromStub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"full_name":"Max Verstappen","driver_number":1},
			{"full_name":"","driver_number":44}
		]`))
	}))
	defer srv.Close()

	client := NewClient(httpx.New(srv.URL, nil))

	drivers, err := client.Drivers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	require.Equal(t, "Max Verstappen", drivers[0].FullName)
}
