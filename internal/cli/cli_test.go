package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"f1insights/internal/config"
	"f1insights/internal/insights"
)

func newTestService(t *testing.T, openf1Handler http.HandlerFunc) *insights.Service {
	t.Helper()

	openf1URL := "http://127.0.0.1:1"
	if openf1Handler != nil {
		srv := httptest.NewServer(openf1Handler)
		t.Cleanup(srv.Close)
		openf1URL = srv.URL
	}

	svc := insights.New(&config.Config{
		OpenF1BaseURL: openf1URL,
		NewsBaseURL:   "http://127.0.0.1:1",
		CacheTTL:      time.Hour,
	})
	t.Cleanup(svc.Close)
	return svc
}

func run(t *testing.T, svc *insights.Service, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := New(svc)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestDataLayerFailureIsANoticeNotAnError(t *testing.T) {
	svc := newTestService(t, nil) // every fetch hits a closed port

	stdout, stderr, err := run(t, svc, "drivers")
	require.NoError(t, err, "a failed fetch must not fail the command")
	require.Empty(t, stdout)
	require.Contains(t, stderr, "could not fetch drivers")
}

func TestSessionSurvivesConsecutiveFailures(t *testing.T) {
	svc := newTestService(t, nil)

	_, _, err := run(t, svc, "calendar", "--year", "2024")
	require.NoError(t, err)

	// The same service keeps working for the next action.
	_, stderr, err := run(t, svc, "news")
	require.NoError(t, err)
	require.Contains(t, stderr, "could not load the news listing")
}

func TestDriversRendersTable(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"full_name":"Max Verstappen","driver_number":1,"country_code":"NED"}]`))
	})

	stdout, stderr, err := run(t, svc, "drivers")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Contains(t, stdout, "Max Verstappen")
	require.Contains(t, stdout, "NED")
}

func TestAICommandsReportMissingCredential(t *testing.T) {
	svc := newTestService(t, nil)

	_, stderr, err := run(t, svc, "compare", "Max Verstappen", "Lewis Hamilton")
	require.NoError(t, err)
	require.Contains(t, stderr, "OPENAI_API_KEY is not set")

	_, stderr, err = run(t, svc, "news", "analyze", "1")
	require.NoError(t, err)
	require.Contains(t, stderr, "OPENAI_API_KEY is not set")
}
