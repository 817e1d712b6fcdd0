package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiConfig(t *testing.T) {
	req := hintRequest()
	req.Temperature = 0.4
	cfg := geminiConfig(req)

	assert.Equal(t, int32(256), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.4, *cfg.Temperature, 1e-6)
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.Equal(t, req.Schema.Definition, cfg.ResponseJsonSchema)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, req.System, cfg.SystemInstruction.Parts[0].Text)
}

func TestGeminiConfig_PlainText(t *testing.T) {
	cfg := geminiConfig(Request{MaxTokens: 10})
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.SystemInstruction)
	assert.Empty(t, cfg.ResponseMIMEType)
	assert.Nil(t, cfg.ResponseJsonSchema)
}

func TestGeminiContents(t *testing.T) {
	got := geminiContents([]Message{
		{Role: RoleUser, Content: "why no motion?"},
		{Role: RoleAssistant, Content: "add a transition"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, genai.RoleUser, got[0].Role)
	assert.Equal(t, genai.RoleModel, got[1].Role)
	assert.Equal(t, "add a transition", got[1].Parts[0].Text)
}
