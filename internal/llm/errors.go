package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Kind says why a request produced no usable answer.
type Kind int

const (
	// KindUnavailable covers network failures, 5xx answers and anything
	// else the provider did not explain.
	KindUnavailable Kind = iota
	KindRateLimited
	// KindInvalid is an answer that is not JSON or does not match the
	// requested schema.
	KindInvalid
	// KindTruncated is an answer cut off at MaxTokens.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindInvalid:
		return "invalid response"
	case KindTruncated:
		return "response truncated"
	default:
		return "provider unavailable"
	}
}

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrUnavailable error = kindSentinel(KindUnavailable)
	ErrRateLimited error = kindSentinel(KindRateLimited)
	ErrInvalid     error = kindSentinel(KindInvalid)
	ErrTruncated   error = kindSentinel(KindTruncated)
)

type kindSentinel Kind

func (s kindSentinel) Error() string { return "llm: " + Kind(s).String() }

// Error is a failed request, tagged with the provider and model that
// failed it and the schema the answer was checked against.
type Error struct {
	Kind     Kind
	Provider string
	Model    string
	Schema   string

	// RetryAfter is the wait the provider asked for, zero when it did not.
	RetryAfter time.Duration
	// Content is what came back, for invalid and truncated answers.
	Content json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		if e.Model != "" {
			b.WriteString("/" + e.Model)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Schema != "" && (e.Kind == KindInvalid || e.Kind == KindTruncated) {
		fmt.Fprintf(&b, " for %s", e.Schema)
	}
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, " (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	k, ok := target.(kindSentinel)
	return ok && Kind(k) == e.Kind
}

// Retryable reports whether asking again could help. Invalid answers are
// retryable but the retry wrapper only gives them one more chance.
func (e *Error) Retryable() bool {
	return e.Kind != KindTruncated
}

// statusError classifies a failed HTTP exchange with a provider.
func statusError(provider, model string, status int, header http.Header, err error) *Error {
	e := &Error{Kind: KindUnavailable, Provider: provider, Model: model, Err: err}
	if status == http.StatusTooManyRequests {
		e.Kind = KindRateLimited
		e.RetryAfter = parseRetryAfter(header)
	}
	return e
}

// parseRetryAfter reads a Retry-After header given in seconds or as an
// HTTP date. Anything else is zero.
func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
