package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"f1insights/internal/cache"
)

// Client issues timed GET requests against a single base URL and
// classifies every failure as an *Error. No retries happen here: a
// failed call returns immediately and the caller decides whether to
// surface it or substitute an empty result.
//
// A client built with a cache memoizes successful response bodies by
// (endpoint, sorted params) for the cache's TTL. Failures are never
// memoized. A client built with a nil cache always hits the network.
type Client struct {
	http *resty.Client
	memo *cache.Cache
}

func New(baseURL string, memo *cache.Cache) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("User-Agent", "f1insights/1.0")

	return &Client{http: client, memo: memo}
}

func (c *Client) BaseURL() string { return c.http.BaseURL }

// Get fetches path (relative to the base URL, or an absolute URL) with
// the given query params and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string, params map[string]string, timeout time.Duration) ([]byte, error) {
	key := memoKey(c.http.BaseURL, path, params)
	if c.memo != nil {
		if body, ok := c.memo.Get(key); ok {
			return body, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, classifyTransport(requestURL(c.http.BaseURL, path), err)
	}
	if res.IsError() {
		return nil, &Error{
			Kind:       KindStatus,
			URL:        res.Request.URL,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", res.Status()),
		}
	}

	body := res.Body()
	if c.memo != nil {
		c.memo.Set(key, body)
	}
	return body, nil
}

// GetJSON fetches path and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, params map[string]string, timeout time.Duration, out any) error {
	body, err := c.Get(ctx, path, params, timeout)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindParse, URL: requestURL(c.http.BaseURL, path), Err: err}
	}
	return nil
}

func classifyTransport(url string, err error) *Error {
	kind := KindNetwork
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, URL: url, Err: err}
}

func requestURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return base + path
}

func memoKey(base, path string, params map[string]string) string {
	var sb strings.Builder
	sb.WriteString(requestURL(base, path))

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	return sb.String()
}
