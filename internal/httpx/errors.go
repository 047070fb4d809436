package httpx

import (
	"errors"
	"fmt"
)

// Kind classifies a failed fetch so callers can decide how to degrade
// without string-matching error messages.
type Kind int

const (
	// KindTimeout means the per-call deadline expired before a
	// response arrived.
	KindTimeout Kind = iota
	// KindNetwork covers DNS and connection-level failures.
	KindNetwork
	// KindStatus means the server answered with a non-2xx status.
	KindStatus
	// KindParse means the response body was not the expected format.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network error"
	case KindStatus:
		return "http status error"
	case KindParse:
		return "parse error"
	default:
		return "unknown"
	}
}

// Error is the single failure type returned by the client. StatusCode
// is set only when Kind is KindStatus.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s (%d) fetching %s", e.Kind, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s fetching %s: %v", e.Kind, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the failure classification of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

func IsTimeout(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindTimeout
}
