package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"f1insights/internal/cache"
)

func TestGetJSONDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"driver_number":1,"full_name":"Max Verstappen"}]`))
	}))
	defer srv.Close()

	var out []map[string]any
	err := New(srv.URL, nil).GetJSON(context.Background(), "/drivers", nil, time.Second, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Max Verstappen", out[0]["full_name"])
}

func TestStatusErrorCarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Get(context.Background(), "/sessions", nil, time.Second)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, KindStatus, fe.Kind)
	require.Equal(t, http.StatusServiceUnavailable, fe.StatusCode)
}

func TestParseErrorOnInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	var out []map[string]any
	err := New(srv.URL, nil).GetJSON(context.Background(), "/drivers", nil, time.Second, &out)

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindParse, kind)
}

func TestTimeoutClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Get(context.Background(), "/", nil, 20*time.Millisecond)
	require.True(t, IsTimeout(err), "got %v", err)
}

func TestNetworkErrorClassification(t *testing.T) {
	// Closed port: connection refused, not a timeout.
	_, err := New("http://127.0.0.1:1", nil).Get(context.Background(), "/", nil, time.Second)

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindNetwork, kind)
}

func TestMemoizationIssuesOneNetworkCall(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"session_key":9158}]`))
	}))
	defer srv.Close()

	memo := cache.New(time.Hour)
	defer memo.Close()
	client := New(srv.URL, memo)

	params := map[string]string{"session_type": "Race", "year": "2024"}

	first, err := client.Get(context.Background(), "/sessions", params, time.Second)
	require.NoError(t, err)
	second, err := client.Get(context.Background(), "/sessions", params, time.Second)
	require.NoError(t, err)

	require.Equal(t, first, second, "memoized result must be byte-identical")
	require.Equal(t, int64(1), calls.Load())

	// Different params are a different key.
	_, err = client.Get(context.Background(), "/sessions", map[string]string{"session_type": "Qualifying"}, time.Second)
	require.NoError(t, err)
	require.Equal(t, int64(2), calls.Load())
}

func TestFailuresAreNotMemoized(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	memo := cache.New(time.Hour)
	defer memo.Close()
	client := New(srv.URL, memo)

	_, err := client.Get(context.Background(), "/results", nil, time.Second)
	require.Error(t, err)

	body, err := client.Get(context.Background(), "/results", nil, time.Second)
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), body)
	require.Equal(t, int64(2), calls.Load())
}

func TestMemoKeyIsOrderIndependent(t *testing.T) {
	a := memoKey("http://x", "/p", map[string]string{"a": "1", "b": "2"})
	b := memoKey("http://x", "/p", map[string]string{"b": "2", "a": "1"})
	require.Equal(t, a, b)
}
