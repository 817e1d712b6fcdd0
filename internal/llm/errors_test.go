package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "rate limited",
			err:  &Error{Kind: KindRateLimited, Provider: "anthropic", Model: "claude-haiku", RetryAfter: 20 * time.Second, Err: errors.New("429")},
			want: "anthropic/claude-haiku: rate limited (retry after 20s): 429",
		},
		{
			name: "invalid names the schema",
			err:  &Error{Kind: KindInvalid, Provider: "openai", Schema: "css-hint", Err: errors.New("missing hint")},
			want: "openai: invalid response for css-hint: missing hint",
		},
		{
			name: "bare",
			err:  &Error{},
			want: "provider unavailable",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error(), tt.name)
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("hint generation: %w", &Error{Kind: KindTruncated})
	assert.ErrorIs(t, err, ErrTruncated)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.NotErrorIs(t, errors.New("plain"), ErrUnavailable)
}

func TestStatusError(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "7")
	e := statusError("gemini", "gemini-2.0-flash", http.StatusTooManyRequests, h, errors.New("slow down"))
	assert.Equal(t, KindRateLimited, e.Kind)
	assert.Equal(t, 7*time.Second, e.RetryAfter)

	e = statusError("gemini", "gemini-2.0-flash", http.StatusBadGateway, h, errors.New("bad gateway"))
	assert.Equal(t, KindUnavailable, e.Kind)
	assert.Zero(t, e.RetryAfter)
}

func TestParseRetryAfter(t *testing.T) {
	date := http.Header{}
	date.Set("Retry-After", time.Now().Add(time.Minute).UTC().Format(http.TimeFormat))
	got := parseRetryAfter(date)
	assert.Greater(t, got, 50*time.Second)
	assert.LessOrEqual(t, got, time.Minute)

	for _, v := range []string{"", "soon", "-3", "0"} {
		h := http.Header{}
		h.Set("Retry-After", v)
		assert.Zero(t, parseRetryAfter(h), v)
	}
	assert.Zero(t, parseRetryAfter(nil))
}
