package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMockProvider_Queue(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"hint":"first"}`), Usage: Usage{InputTokens: 3}},
		MockResponse{Err: errors.New("boom")},
	)
	req := Request{Messages: []Message{{Role: RoleUser, Content: "help"}}}

	resp, err := mock.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hint":"first"}`, string(resp.Content))
	assert.Equal(t, 3, resp.Usage.InputTokens)
	assert.Equal(t, "mock", resp.Model)

	_, err = mock.Generate(context.Background(), req)
	assert.EqualError(t, err, "boom")

	_, err = mock.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "help", mock.Calls[0].Messages[0].Content)
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider()
	mock.Fallback = func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`{"hint":"` + req.Messages[0].Content + `"}`)}
	}
	resp, err := mock.Generate(context.Background(), Request{Messages: []Message{{Content: "echo"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hint":"echo"}`, string(resp.Content))
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"nope":1}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: hintTestSchema()})
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindInvalid, e.Kind)
	assert.Equal(t, ProviderMock, e.Provider)
}

func TestLessonContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, LessonFrom(ctx))
	assert.Equal(t, "challenge-hover-card", LessonFrom(WithLesson(ctx, "challenge-hover-card")))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: ProviderConfig{APIKey: "sk"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: ProviderConfig{APIKey: "k"}}, false},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: ProviderConfig{APIKey: "k"}}, false},
		{"key on the wrong provider", Config{Provider: ProviderOpenAI, Anthropic: ProviderConfig{APIKey: "sk"}}, true},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() = %v", err)
		})
	}
}

func TestConfig_ValidateNamesEnvVar(t *testing.T) {
	err := Config{Provider: ProviderGemini}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSSMASTERY_TUTOR_GEMINI_API_KEY")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled())
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, defaultOpenRouterBaseURL, cfg.OpenRouter.BaseURL)
}

func TestConfig_Discover(t *testing.T) {
	for _, env := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}
	_, ok := DefaultConfig().Discover()
	assert.False(t, ok)

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENROUTER_API_KEY", "o-key")
	cfg, ok := DefaultConfig().Discover()
	require.True(t, ok)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MockProvider{}, p)

	_, err = NewProvider(context.Background(), Config{Provider: ProviderAnthropic}, nil)
	assert.Error(t, err)

	_, err = NewProvider(context.Background(), Config{}, nil)
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "k"
	p, err = NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &RetryProvider{}, p)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())
}

func TestLoggingProvider(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"hint":"ok"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: 3 * time.Second}},
	)
	p := WithLogging(mock, ProviderMock, zap.New(core))
	ctx := WithLesson(context.Background(), "challenge-hover-card")

	_, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "q"}}})
	require.NoError(t, err)
	_, err = p.Generate(ctx, Request{})
	require.Error(t, err)

	ok := logs.FilterMessage("llm request").All()
	require.Len(t, ok, 1)
	fields := ok[0].ContextMap()
	assert.Equal(t, "challenge-hover-card", fields["lesson"])
	assert.Equal(t, int64(10), fields["input_tokens"])

	failed := logs.FilterMessage("llm request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	assert.Equal(t, "rate limited", failed[0].ContextMap()["kind"])
	assert.Equal(t, 3*time.Second, failed[0].ContextMap()["retry_after"])

	exchanges := logs.FilterMessage("llm exchange").All()
	require.Len(t, exchanges, 2)
	assert.Contains(t, exchanges[0].ContextMap()["request"], "[system]\nsys")
}

func TestSerializeRequest(t *testing.T) {
	s := serializeRequest(Request{
		System:   "coach",
		Messages: []Message{{Role: RoleUser, Content: "why no motion?"}},
		Schema:   hintTestSchema(),
	})
	assert.Contains(t, s, "[system]\ncoach")
	assert.Contains(t, s, "[user]\nwhy no motion?")
	assert.Contains(t, s, "[schema: css-hint-test]")
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	require.NotNil(t, c)
	assert.InDelta(t, 0.15+0.6, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.Nil(t, LookupCost("no-such-model"))
}
