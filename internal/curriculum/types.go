package curriculum

import "strings"

// Demo markup fragments rendered inside the preview surface. Each one targets
// a class from the preview base library.
const (
	FragmentBox    = `<div class="box"></div>`
	FragmentCard   = `<div class="card"><h3>Hover me</h3><p>A card that responds to the pointer.</p></div>`
	FragmentButton = `<button class="button">Click me</button>`
	FragmentCircle = `<div class="circle"></div>`
	FragmentLoader = `<div class="loader"><div class="dot"></div><div class="dot"></div><div class="dot"></div></div>`
	FragmentFlip   = `<div class="flip"><div class="flip-inner"><div class="flip-front card"><h3>Front</h3><p>Hover to flip.</p></div><div class="flip-back card"><h3>Back</h3><p>Hello from the other side.</p></div></div></div>`
	FragmentType   = `<p class="typewriter">Hello, CSS animations!</p>`
	FragmentScroll = `<div class="scroller"><div class="spacer"></div><div class="box reveal"></div><div class="spacer"></div></div>`
	FragmentLayers = `<div class="scroller"><div class="layer back"></div><div class="layer front box"></div><div class="spacer"></div></div>`
	FragmentText   = `<h3 class="title">Variable</h3>`
)

// Lesson is a single teachable unit of the course.
type Lesson struct {
	ID       string
	Title    string
	Subtitle string
	Icon     string
	Module   string

	// DefaultCSS is the code the playground starts with. Lessons without it
	// have no playground.
	DefaultCSS string

	// PreviewHTML is the demo fragment placed in the preview body. Empty
	// means FragmentBox.
	PreviewHTML string
}

// HasPlayground reports whether the lesson ships an interactive playground.
func (l Lesson) HasPlayground() bool {
	return l.DefaultCSS != ""
}

// Fragment returns the demo markup for the lesson's preview.
func (l Lesson) Fragment() string {
	if l.PreviewHTML == "" {
		return FragmentBox
	}
	return l.PreviewHTML
}

// IsChallenge reports whether the lesson is a challenge lesson.
func (l Lesson) IsChallenge() bool {
	return strings.HasPrefix(l.ID, "challenge-")
}

// Module is an ordered group of lessons forming a course section.
type Module struct {
	ID      string
	Title   string
	Icon    string
	Lessons []Lesson
}

// Adjacent holds the neighbours of a lesson in course order. A nil side means
// there is no lesson in that direction.
type Adjacent struct {
	Prev *Lesson
	Next *Lesson
}
