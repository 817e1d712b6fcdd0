package preview

import (
	"context"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/challenge"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

// Renderer holds the committed CSS for one demo fragment and re-renders
// the whole document on every Apply.
type Renderer struct {
	surface   Surface
	html      string
	committed string
	log       *zap.Logger
}

// NewRenderer returns a Renderer drawing html plus committed CSS to surface.
func NewRenderer(surface Surface, html string, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{surface: surface, html: html, log: log}
}

// Apply replaces the committed CSS with css and renders the full document.
// Malformed CSS is not an error here; the surface's style engine drops
// what it cannot use. Surface failures are logged and otherwise ignored.
func (r *Renderer) Apply(ctx context.Context, css string) {
	r.committed = css
	doc := Document{HTML: r.html, CSS: css}
	if err := r.surface.Render(ctx, doc); err != nil {
		r.log.Debug("preview render failed", zap.Error(err))
	}
}

// Committed returns the CSS currently rendered.
func (r *Renderer) Committed() string {
	return r.committed
}

// Playground is the per-lesson editing state: a draft the learner types
// into and the committed CSS shown in the preview. Editing never renders;
// only Apply and Reset do.
type Playground struct {
	lessonID   string
	defaultCSS string
	draft      string
	renderer   *Renderer
	validator  challenge.Validator
	result     *challenge.Result
	fullscreen bool

	copyFn  func(string) error
	onApply func(css string)
}

// Option configures a Playground.
type Option func(*Playground)

// WithValidator checks every applied draft with v.
func WithValidator(v challenge.Validator) Option {
	return func(p *Playground) { p.validator = v }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(p *Playground) { p.copyFn = fn }
}

// OnApply registers fn to run with the CSS every time the draft is applied.
func OnApply(fn func(css string)) Option {
	return func(p *Playground) { p.onApply = fn }
}

// NewPlayground prepares a playground for lesson. Nothing is rendered until
// Activate.
func NewPlayground(lesson curriculum.Lesson, surface Surface, log *zap.Logger, opts ...Option) *Playground {
	p := &Playground{
		lessonID:   lesson.ID,
		defaultCSS: lesson.DefaultCSS,
		draft:      lesson.DefaultCSS,
		renderer:   NewRenderer(surface, lesson.Fragment(), log),
		copyFn:     clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Activate runs the default CSS once, as if the learner pressed run.
func (p *Playground) Activate(ctx context.Context) {
	p.Apply(ctx)
}

// Edit replaces the draft. The preview is left alone.
func (p *Playground) Edit(text string) {
	p.draft = text
}

// Apply commits the draft, renders it and, when the lesson has a
// validator, records a fresh verdict.
func (p *Playground) Apply(ctx context.Context) {
	p.renderer.Apply(ctx, p.draft)
	if p.onApply != nil {
		p.onApply(p.draft)
	}
	if p.validator != nil {
		res := p.validator.Validate(p.draft)
		p.result = &res
	}
}

// Reset restores the lesson default as both draft and committed CSS and
// clears the verdict.
func (p *Playground) Reset(ctx context.Context) {
	p.draft = p.defaultCSS
	p.result = nil
	p.renderer.Apply(ctx, p.defaultCSS)
}

// Copy writes the draft to the clipboard.
func (p *Playground) Copy() error {
	return p.copyFn(p.draft)
}

// ToggleFullscreen flips the fullscreen flag.
func (p *Playground) ToggleFullscreen() {
	p.fullscreen = !p.fullscreen
}

func (p *Playground) LessonID() string   { return p.lessonID }
func (p *Playground) Draft() string      { return p.draft }
func (p *Playground) Committed() string  { return p.renderer.Committed() }
func (p *Playground) DefaultCSS() string { return p.defaultCSS }
func (p *Playground) Fullscreen() bool   { return p.fullscreen }

// HasValidator reports whether applied code is checked.
func (p *Playground) HasValidator() bool { return p.validator != nil }

// Dirty reports whether the draft differs from what is rendered.
func (p *Playground) Dirty() bool { return p.draft != p.renderer.Committed() }

// Result returns the last verdict, and false when there is none.
func (p *Playground) Result() (challenge.Result, bool) {
	if p.result == nil {
		return challenge.Result{}, false
	}
	return *p.result, true
}
