package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema for structured output. It compiles itself on
// first use and keeps the result, so declare schemas once as package
// variables and share the pointer.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// MustCompile compiles s and returns it, panicking on a broken
// definition. Use it where a schema is declared.
func MustCompile(s *Schema) *Schema {
	if _, err := s.validator(); err != nil {
		panic(fmt.Sprintf("llm: schema %q: %v", s.Name, err))
	}
	return s
}

func (s *Schema) validator() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiled, s.err = compileSchema(s.Name, s.Definition)
	})
	return s.compiled, s.err
}

// Check reports whether raw is JSON matching s. Failures are *Error of
// KindInvalid carrying raw.
func (s *Schema) Check(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &Error{Kind: KindInvalid, Schema: s.Name, Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}
	v, err := s.validator()
	if err != nil {
		return &Error{Kind: KindInvalid, Schema: s.Name, Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := v.Validate(parsed); err != nil {
		return &Error{Kind: KindInvalid, Schema: s.Name, Content: raw, Err: err}
	}
	return nil
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants plain decoded JSON, not Go maps with typed values.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	url := "schema://" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
