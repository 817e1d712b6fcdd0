package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hintTestSchema() *Schema {
	return &Schema{
		Name:        "css-hint-test",
		Description: "A short hint for a CSS exercise",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{"type": "string", "minLength": 1},
				"focus": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "enum": []any{"transition", "transform", "keyframes", "timing", "performance"}},
				},
			},
			"required":             []any{"hint"},
			"additionalProperties": false,
		},
	}
}

func TestSchemaCheck(t *testing.T) {
	schema := hintTestSchema()
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"hint":"Add a transition.","focus":["transition"]}`, false},
		{"optional omitted", `{"hint":"Add a transition."}`, false},
		{"missing required", `{"focus":["transition"]}`, true},
		{"wrong type", `{"hint":42}`, true},
		{"empty hint", `{"hint":""}`, true},
		{"bad enum", `{"hint":"x","focus":["colour"]}`, true},
		{"extra field", `{"hint":"x","score":1}`, true},
		{"malformed", `{"hint":`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		err := schema.Check(json.RawMessage(tt.raw))
		if !tt.wantErr {
			assert.NoError(t, err, tt.name)
			continue
		}
		var e *Error
		if assert.True(t, errors.As(err, &e), "%s: got %T", tt.name, err) {
			assert.Equal(t, KindInvalid, e.Kind, tt.name)
			assert.Equal(t, "css-hint-test", e.Schema, tt.name)
			assert.Equal(t, tt.raw, string(e.Content), tt.name)
		}
		assert.ErrorIs(t, err, ErrInvalid, tt.name)
	}
}

func TestSchema_CompilesOnce(t *testing.T) {
	schema := hintTestSchema()
	first, err := schema.validator()
	require.NoError(t, err)
	second, err := schema.validator()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSchema_SameNameDifferentDefinitions(t *testing.T) {
	loose := &Schema{Name: "css-hint-test", Definition: map[string]any{"type": "object"}}
	strict := hintTestSchema()
	raw := json.RawMessage(`{"score":1}`)

	assert.NoError(t, loose.Check(raw))
	assert.Error(t, strict.Check(raw))
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { MustCompile(hintTestSchema()) })
	assert.Panics(t, func() {
		MustCompile(&Schema{Name: "broken", Definition: map[string]any{"type": 42}})
	})
}
