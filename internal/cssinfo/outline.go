// Package cssinfo summarises a stylesheet for display next to the editor:
// which selectors it styles, which keyframes it defines and which
// properties it animates.
package cssinfo

import (
	"errors"
	"io"
	"slices"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is one property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a style rule. AtRule names the enclosing block, such as
// "@media (prefers-reduced-motion: reduce)", and is empty at top level.
type Rule struct {
	Selector     string
	AtRule       string
	Declarations []Declaration
}

// Keyframes is a named @keyframes block and its stop selectors in order.
type Keyframes struct {
	Name  string
	Stops []string
}

// Outline is the structure found in a stylesheet.
type Outline struct {
	Rules     []Rule
	Keyframes []Keyframes
	// Warnings counts declarations or rules the parser had to skip.
	Warnings int
}

// Parse outlines css. It never fails: whatever cannot be understood is
// skipped and counted in Warnings.
func Parse(src string, log *zap.Logger) Outline {
	if log == nil {
		log = zap.NewNop()
	}
	var out Outline
	p := css.NewParser(parse.NewInputString(src), false)

	var atStack []string
	var frames *Keyframes
	var rule *Rule

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil {
				if !errors.Is(err, io.EOF) {
					log.Debug("css parse stopped", zap.Error(err))
					out.Warnings++
				}
				if frames != nil {
					out.Keyframes = append(out.Keyframes, *frames)
				}
				return out
			}
			out.Warnings++

		case css.BeginAtRuleGrammar:
			name := strings.ToLower(string(data))
			prelude := joinTokens(p.Values())
			if isKeyframes(name) {
				frames = &Keyframes{Name: prelude}
			}
			atStack = append(atStack, strings.TrimSpace(name+" "+prelude))

		case css.EndAtRuleGrammar:
			if len(atStack) > 0 {
				atStack = atStack[:len(atStack)-1]
			}
			if frames != nil {
				out.Keyframes = append(out.Keyframes, *frames)
				frames = nil
			}

		case css.BeginRulesetGrammar:
			sel := selector(data, p.Values())
			if frames != nil {
				frames.Stops = append(frames.Stops, sel)
				continue
			}
			rule = &Rule{Selector: sel}
			if len(atStack) > 0 {
				rule.AtRule = atStack[len(atStack)-1]
			}

		case css.EndRulesetGrammar:
			if rule != nil {
				out.Rules = append(out.Rules, *rule)
				rule = nil
			}

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if rule == nil {
				continue
			}
			rule.Declarations = append(rule.Declarations, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    joinTokens(p.Values()),
			})
		}
	}
}

// selector rebuilds the prelude of a ruleset from the grammar data and
// its value tokens.
func selector(data []byte, values []css.Token) string {
	s := strings.TrimSpace(string(data) + joinTokens(values))
	return strings.TrimSpace(strings.TrimSuffix(s, "{"))
}

func isKeyframes(name string) bool {
	return name == "@keyframes" || strings.HasSuffix(name, "-keyframes")
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// Properties returns every distinct property declared, sorted.
func (o Outline) Properties() []string {
	var props []string
	for _, r := range o.Rules {
		for _, d := range r.Declarations {
			props = append(props, d.Property)
		}
	}
	slices.Sort(props)
	return slices.Compact(props)
}

// Animated returns what the stylesheet sets in motion: the properties named
// by transition or transition-property, and the animation names used by
// animation or animation-name. Both come back sorted and deduplicated.
func (o Outline) Animated() (transitioned, animations []string) {
	for _, r := range o.Rules {
		for _, d := range r.Declarations {
			switch d.Property {
			case "transition", "transition-property":
				transitioned = append(transitioned, leadingIdents(d.Value)...)
			case "animation", "animation-name":
				animations = append(animations, o.keyframeRefs(d.Value)...)
			}
		}
	}
	slices.Sort(transitioned)
	slices.Sort(animations)
	return slices.Compact(transitioned), slices.Compact(animations)
}

// leadingIdents returns the first word of each comma separated layer.
func leadingIdents(v string) []string {
	var out []string
	for layer := range strings.SplitSeq(v, ",") {
		fields := strings.Fields(layer)
		if len(fields) == 0 {
			continue
		}
		if f := strings.ToLower(fields[0]); f != "none" {
			out = append(out, f)
		}
	}
	return out
}

// keyframeRefs returns the words of v that name a keyframes block in o.
func (o Outline) keyframeRefs(v string) []string {
	var out []string
	for layer := range strings.SplitSeq(v, ",") {
		for _, f := range strings.Fields(layer) {
			if o.HasKeyframes(f) {
				out = append(out, f)
			}
		}
	}
	return out
}

// HasKeyframes reports whether a @keyframes block named name exists.
func (o Outline) HasKeyframes(name string) bool {
	return slices.ContainsFunc(o.Keyframes, func(k Keyframes) bool { return k.Name == name })
}

// Lines renders the outline as short lines for a side panel.
func (o Outline) Lines() []string {
	var lines []string
	for _, r := range o.Rules {
		sel := r.Selector
		if r.AtRule != "" {
			sel = r.AtRule + " › " + sel
		}
		props := make([]string, 0, len(r.Declarations))
		for _, d := range r.Declarations {
			props = append(props, d.Property)
		}
		lines = append(lines, sel+" { "+strings.Join(props, ", ")+" }")
	}
	for _, k := range o.Keyframes {
		lines = append(lines, "@keyframes "+k.Name+" ["+strings.Join(k.Stops, " → ")+"]")
	}
	return lines
}
