// Package challenge checks learner CSS against per-lesson challenge rules.
//
// Rules are plain substring checks on the raw text. They are a heuristic,
// not a CSS parser: comments or dead rules that mention the right words
// pass, and equivalent CSS spelled differently fails.
package challenge

import "strings"

const (
	// DefaultSuccess is shown when a passing rule set has no message of its own.
	DefaultSuccess = "🎉 Great job! Challenge complete!"
	// DefaultHint is shown when a failing marker has no hint of its own.
	DefaultHint = "Not quite there yet. Check the requirements and try again."
)

// Result is the verdict for one submission.
type Result struct {
	Valid   bool
	Message string
}

// Validator maps submitted CSS to a verdict. Implementations must be pure.
type Validator interface {
	Validate(css string) Result
}

// Func adapts a plain function to a Validator.
type Func func(css string) Result

func (f Func) Validate(css string) Result { return f(css) }

// Marker is one substring condition. With Absent unset it holds when any of
// Any occurs in the text; with Absent set it holds when none do.
type Marker struct {
	Any    []string
	Absent bool
	Hint   string
}

// Has requires sub to appear.
func Has(sub, hint string) Marker {
	return Marker{Any: []string{sub}, Hint: hint}
}

// HasAny requires at least one of subs to appear.
func HasAny(hint string, subs ...string) Marker {
	return Marker{Any: subs, Hint: hint}
}

// Lacks requires sub not to appear.
func Lacks(sub, hint string) Marker {
	return Marker{Any: []string{sub}, Absent: true, Hint: hint}
}

// Holds reports whether the marker is satisfied by css.
func (m Marker) Holds(css string) bool {
	found := false
	for _, s := range m.Any {
		if strings.Contains(css, s) {
			found = true
			break
		}
	}
	return found != m.Absent
}

// RuleSet is a conjunction of markers.
type RuleSet struct {
	Markers []Marker
	Success string
	Hint    string
}

// Validate passes when every marker holds. A failure carries the hint of the
// first marker that does not.
func (r RuleSet) Validate(css string) Result {
	for _, m := range r.Markers {
		if m.Holds(css) {
			continue
		}
		msg := m.Hint
		if msg == "" {
			msg = r.Hint
		}
		if msg == "" {
			msg = DefaultHint
		}
		return Result{Valid: false, Message: msg}
	}
	msg := r.Success
	if msg == "" {
		msg = DefaultSuccess
	}
	return Result{Valid: true, Message: msg}
}

// Missing returns the hints of every marker css does not satisfy, in order.
func (r RuleSet) Missing(css string) []string {
	var out []string
	for _, m := range r.Markers {
		if !m.Holds(css) {
			out = append(out, m.Hint)
		}
	}
	return out
}
