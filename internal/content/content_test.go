package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

func mustLesson(t *testing.T, id string) curriculum.Lesson {
	t.Helper()
	l, err := curriculum.GetLesson(id)
	require.NoError(t, err)
	return l
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "ka"}, Languages())
}

func TestResolve_English(t *testing.T) {
	r := Resolve("en", mustLesson(t, "intro-motion"))
	assert.Equal(t, "Introduction to Motion", r.Title)
	assert.Equal(t, "en", r.Lang)
	require.NotEmpty(t, r.Block.Sections)
	assert.Equal(t, "Why Does Motion Matter?", r.Block.Sections[0].Heading)
	assert.Len(t, r.Block.KeyPoints, 4)
}

func TestResolve_LocaleWins(t *testing.T) {
	r := Resolve("ka", mustLesson(t, "intro-motion"))
	assert.Equal(t, "შესავალი მოძრაობაში", r.Title)
	assert.Equal(t, "ka", r.Lang)
}

func TestResolve_BodyFallsBackToEnglish(t *testing.T) {
	// The Georgian table only translates the title of this lesson.
	r := Resolve("ka", mustLesson(t, "transition-property"))
	assert.Equal(t, "transition-property და ხანგრძლივობა", r.Title)
	assert.Equal(t, "en", r.Lang)
	assert.Contains(t, r.Block.Tip, "150ms-400ms")
}

func TestResolve_TitleFallsBackToEnglishTable(t *testing.T) {
	r := Resolve("ka", mustLesson(t, "timing-function"))
	assert.Equal(t, "transition-timing-function", r.Title)
	assert.Equal(t, "en", r.Lang)
}

func TestResolve_BaselineFields(t *testing.T) {
	l := mustLesson(t, "spring-physics")
	for _, lang := range []string{"en", "ka", "fr"} {
		r := Resolve(lang, l)
		if r.Title != l.Title || r.Subtitle != l.Subtitle {
			t.Errorf("Resolve(%q): got %q/%q, want baseline %q/%q", lang, r.Title, r.Subtitle, l.Title, l.Subtitle)
		}
		if r.Lang != "" || r.Block.HasBody() {
			t.Errorf("Resolve(%q): expected no body, got lang %q", lang, r.Lang)
		}
	}
}

func TestResolve_UnknownLesson(t *testing.T) {
	r := Resolve("en", curriculum.Lesson{ID: "ghost", Title: "Ghost", Subtitle: "Boo"})
	assert.Equal(t, "Ghost", r.Title)
	assert.Equal(t, "Boo", r.Subtitle)
	assert.False(t, r.Block.HasBody())
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "🎉 Great job! Your card has a beautiful hover effect!", SuccessMessage("en", "challenge-hover-card"))
	assert.Contains(t, SuccessMessage("ka", "challenge-hover-card"), "შესანიშნავია")
	// Georgian has no entry, English does.
	assert.Contains(t, SuccessMessage("ka", "challenge-optimize"), "Buttery smooth")
	assert.Empty(t, SuccessMessage("en", "intro-motion"))
}

func TestDecodeTable_RejectsUnknownFields(t *testing.T) {
	_, err := decodeTable([]byte("lessons:\n  x:\n    titel: typo\n"))
	assert.Error(t, err)
}

func TestEveryTableKeyIsALesson(t *testing.T) {
	for lang, tbl := range tables {
		for id := range tbl.Lessons {
			if _, err := curriculum.GetLesson(id); err != nil {
				t.Errorf("%s table has content for unknown lesson %q", lang, id)
			}
		}
	}
}

func TestT(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		args []any
		want string
	}{
		{"en", KeyRun, nil, "Run Code"},
		{"ka", KeyRun, nil, "კოდის გაშვება"},
		{"en", KeyLessonsDone, []any{3, 50}, "3 of 50 lessons"},
		// Missing in the Georgian table.
		{"ka", KeyCSS, nil, "CSS"},
		// Unsupported language.
		{"de", KeyNext, nil, "Next"},
	}
	for _, tt := range tests {
		if got := T(tt.lang, tt.key, tt.args...); got != tt.want {
			t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestT_EveryKeyResolvesInEveryLanguage(t *testing.T) {
	for _, lang := range Languages() {
		for key, msg := range tables[DefaultLang].UI {
			if strings.Contains(msg, "%") {
				continue
			}
			got := T(lang, key)
			assert.NotEqual(t, key, got, "%s: %s", lang, key)
			if _, ok := tables[lang].UI[key]; !ok {
				assert.Equal(t, msg, got, "%s: %s should fall back to English", lang, key)
			}
		}
	}
}
