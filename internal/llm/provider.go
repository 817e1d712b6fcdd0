// Package llm asks hosted language models for structured answers. Every
// provider returns JSON; when a request carries a Schema the JSON is
// checked against it before it is returned, and failures are *Error.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per request.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider is configured for.
	ModelID() string
}

// Request is a single prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for structured output matching it.
	// Without a schema Content is the raw model text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is who sent a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is what came back.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish turns what a provider returned into a Response: a truncated
// answer or one that misses req.Schema is an *Error instead.
func finish(provider string, req Request, resp *Response, truncated bool) (*Response, error) {
	if truncated {
		e := &Error{Kind: KindTruncated, Provider: provider, Model: resp.Model, Content: resp.Content}
		if req.Schema != nil {
			e.Schema = req.Schema.Name
		}
		return nil, e
	}
	if req.Schema != nil {
		if err := req.Schema.Check(resp.Content); err != nil {
			e := err.(*Error)
			e.Provider, e.Model = provider, resp.Model
			return nil, e
		}
	}
	return resp, nil
}

// resolveModel maps a short model name to a provider model ID. Unknown
// names pass through so full IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
