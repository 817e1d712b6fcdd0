package challenge

import (
	"slices"

	"github.com/tsotne01/css-animation-mastery/internal/content"
)

var rules = map[string]RuleSet{
	"challenge-hover-card": {
		Markers: []Marker{
			Has("transition", "Add a transition so the card animates smoothly instead of jumping."),
			Has(":hover", "Style the card's :hover state."),
			Has("transform", "Use transform to move the card on hover."),
			Has("translateY", "Lift the card with translateY; a negative value moves it up."),
		},
	},
	"challenge-card-flip": {
		Markers: []Marker{
			Has("perspective", "Give the card a perspective so the flip has depth."),
			Has("preserve-3d", "Set transform-style: preserve-3d on the inner wrapper."),
			Has("backface-visibility", "Hide the face pointing away with backface-visibility: hidden."),
			Has("rotateY", "Flip around the vertical axis with rotateY(180deg)."),
			Has(":hover", "Trigger the flip from a :hover state."),
			Has("transition", "Add a transition so the flip animates."),
		},
	},
	"challenge-bouncing-loader": {
		Markers: []Marker{
			Has("@keyframes", "Define the bounce with @keyframes."),
			Has("animation", "Apply your keyframes to the dots with the animation property."),
			Has("infinite", "A loader should keep going: use an infinite iteration count."),
			Has("animation-delay", "Stagger the dots with animation-delay."),
		},
	},
	"challenge-typewriter": {
		Markers: []Marker{
			Has("@keyframes", "Define the typing motion with @keyframes."),
			Has("steps(", "Use steps() so characters appear one at a time."),
			Has("width", "Animate the width of the text to reveal it."),
			Has("animation", "Apply your keyframes with the animation property."),
		},
	},
	"challenge-optimize": {
		Markers: []Marker{
			Lacks("transition: left", "Stop transitioning left, it forces layout on every frame."),
			Has("transform", "Move the box with transform instead of left."),
			HasAny("Use translateX or translate() for the movement.", "translateX", "translate("),
			Has("will-change", "Hint the compositor with will-change: transform."),
		},
	},
	"challenge-parallax": {
		Markers: []Marker{
			Has("@keyframes", "Define the layer movement with @keyframes."),
			Has("animation-timeline", "Link the animation to scrolling with animation-timeline."),
			Has("scroll(", "Use the scroll() timeline for parallax."),
			HasAny("Move the layer with a translate transform.", "translate"),
		},
	},
	"challenge-reveal": {
		Markers: []Marker{
			Has("@keyframes", "Define the reveal with @keyframes."),
			Has("opacity", "Fade the box in by animating opacity."),
			Has("animation-timeline", "Drive the animation with animation-timeline."),
			Has("view(", "Use the view() timeline so it plays as the box enters."),
		},
	},
}

// For returns the validator for a lesson, with the success message in lang.
// Lessons without a challenge have none.
func For(lessonID, lang string) (RuleSet, bool) {
	r, ok := rules[lessonID]
	if !ok {
		return RuleSet{}, false
	}
	r.Markers = slices.Clone(r.Markers)
	if r.Success == "" {
		r.Success = content.SuccessMessage(lang, lessonID)
	}
	return r, true
}

// Localized is the validator for a lesson with the language read from
// lang at every verdict, so a language switch shows in the next one.
func Localized(lessonID string, lang func() string) (Validator, bool) {
	if _, ok := rules[lessonID]; !ok {
		return nil, false
	}
	return Func(func(css string) Result {
		r, _ := For(lessonID, lang())
		return r.Validate(css)
	}), true
}

// SuccessFor is the message a passing verdict on lessonID shows in lang.
func SuccessFor(lessonID, lang string) string {
	if r, ok := For(lessonID, lang); ok && r.Success != "" {
		return r.Success
	}
	return DefaultSuccess
}

// Lessons returns the ids of every lesson that has a validator, sorted.
func Lessons() []string {
	ids := make([]string, 0, len(rules))
	for id := range rules {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
