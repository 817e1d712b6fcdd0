package tutor

import "github.com/tsotne01/css-animation-mastery/internal/llm"

// Focus areas a hint can point at.
var focusAreas = []any{"transition", "transform", "keyframes", "timing", "performance", "scroll", "selector"}

// HintSchema is the structured answer requested from the model. It is
// compiled when the package loads.
var HintSchema = llm.MustCompile(&llm.Schema{
	Name:        "css-hint",
	Description: "A short, encouraging hint for a CSS animation exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One or two sentences that point at the next step without giving the full answer",
				"minLength":   1,
			},
			"focus": map[string]any{
				"type":        "array",
				"description": "Which concepts the hint is about",
				"items":       map[string]any{"type": "string", "enum": focusAreas},
			},
			"snippet": map[string]any{
				"type":        "string",
				"description": "At most one short CSS line the learner could adapt, or empty",
			},
		},
		"required":             []any{"hint", "focus", "snippet"},
		"additionalProperties": false,
	},
})
