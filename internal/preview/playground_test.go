package preview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsotne01/css-animation-mastery/internal/challenge"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

func lesson(t *testing.T, id string) curriculum.Lesson {
	t.Helper()
	l, err := curriculum.GetLesson(id)
	require.NoError(t, err)
	return l
}

func TestPlayground_ActivateRendersDefault(t *testing.T) {
	l := lesson(t, "transition-property")
	surf := &RecordingSurface{}
	p := NewPlayground(l, surf, nil)

	_, ok := surf.Last()
	assert.False(t, ok, "nothing renders before Activate")

	p.Activate(context.Background())
	doc, ok := surf.Last()
	require.True(t, ok)
	assert.Equal(t, l.DefaultCSS, doc.CSS)
	assert.Equal(t, l.Fragment(), doc.HTML)
	assert.False(t, p.Dirty())
}

func TestPlayground_EditDoesNotRender(t *testing.T) {
	surf := &RecordingSurface{}
	p := NewPlayground(lesson(t, "transition-property"), surf, nil)
	p.Activate(context.Background())

	p.Edit(".box{opacity:.5}")
	assert.Equal(t, 1, surf.Renders())
	assert.True(t, p.Dirty())
	assert.Equal(t, ".box{opacity:.5}", p.Draft())
	assert.NotEqual(t, p.Draft(), p.Committed())

	p.Apply(context.Background())
	assert.Equal(t, 2, surf.Renders())
	doc, _ := surf.Last()
	assert.Equal(t, ".box{opacity:.5}", doc.CSS)
	assert.False(t, p.Dirty())
}

func TestPlayground_ApplyValidates(t *testing.T) {
	l := lesson(t, "challenge-hover-card")
	rules, ok := challenge.For(l.ID, "en")
	require.True(t, ok)
	p := NewPlayground(l, &RecordingSurface{}, nil, WithValidator(rules))
	assert.True(t, p.HasValidator())

	_, ok = p.Result()
	assert.False(t, ok)

	p.Activate(context.Background())
	res, ok := p.Result()
	require.True(t, ok)
	assert.False(t, res.Valid, "starter code fails")

	p.Edit(".card{transition:transform .3s}.card:hover{transform:translateY(-8px)}")
	// The verdict belongs to the last applied code until Apply.
	res, _ = p.Result()
	assert.False(t, res.Valid)

	p.Apply(context.Background())
	res, _ = p.Result()
	assert.True(t, res.Valid)
}

func TestPlayground_Reset(t *testing.T) {
	l := lesson(t, "challenge-hover-card")
	rules, _ := challenge.For(l.ID, "en")
	surf := &RecordingSurface{}
	p := NewPlayground(l, surf, nil, WithValidator(rules))
	p.Activate(context.Background())

	p.Edit("garbage {")
	p.Apply(context.Background())
	p.Edit("more garbage")

	p.Reset(context.Background())
	assert.Equal(t, l.DefaultCSS, p.Draft())
	assert.Equal(t, l.DefaultCSS, p.Committed())
	doc, _ := surf.Last()
	assert.Equal(t, l.DefaultCSS, doc.CSS)
	_, ok := p.Result()
	assert.False(t, ok, "reset clears the verdict")
}

func TestPlayground_OnApply(t *testing.T) {
	var seen []string
	p := NewPlayground(lesson(t, "translate"), &RecordingSurface{}, nil,
		OnApply(func(css string) { seen = append(seen, css) }))
	p.Activate(context.Background())
	p.Edit("a")
	p.Apply(context.Background())
	p.Reset(context.Background())

	require.Len(t, seen, 2, "reset does not count as applying")
	assert.Equal(t, "a", seen[1])
}

func TestPlayground_Copy(t *testing.T) {
	var copied string
	p := NewPlayground(lesson(t, "translate"), &RecordingSurface{}, nil,
		WithClipboard(func(s string) error { copied = s; return nil }))
	p.Edit("draft only")
	require.NoError(t, p.Copy())
	assert.Equal(t, "draft only", copied)

	boom := errors.New("no clipboard")
	p = NewPlayground(lesson(t, "translate"), &RecordingSurface{}, nil,
		WithClipboard(func(string) error { return boom }))
	assert.ErrorIs(t, p.Copy(), boom)
}

func TestPlayground_Fullscreen(t *testing.T) {
	p := NewPlayground(lesson(t, "translate"), &RecordingSurface{}, nil)
	assert.False(t, p.Fullscreen())
	p.ToggleFullscreen()
	assert.True(t, p.Fullscreen())
	p.ToggleFullscreen()
	assert.False(t, p.Fullscreen())
}

type failingSurface struct{ calls int }

func (f *failingSurface) Render(context.Context, Document) error {
	f.calls++
	return errors.New("window closed")
}

func TestPlayground_SurfaceErrorIsSwallowed(t *testing.T) {
	surf := &failingSurface{}
	p := NewPlayground(lesson(t, "translate"), surf, nil)
	p.Activate(context.Background())
	p.Edit("x")
	p.Apply(context.Background())
	assert.Equal(t, 2, surf.calls)
	assert.Equal(t, "x", p.Committed())
}

func TestFanout(t *testing.T) {
	a, b := &RecordingSurface{}, &RecordingSurface{}
	bad := &failingSurface{}
	err := Fanout{a, bad, b}.Render(context.Background(), Document{CSS: "x"})
	assert.Error(t, err)
	assert.Equal(t, 1, a.Renders())
	assert.Equal(t, 1, b.Renders())
}
