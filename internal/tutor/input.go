package tutor

import (
	"github.com/tsotne01/css-animation-mastery/internal/challenge"
	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

// InputFor gathers what the tutor needs about a lesson attempt: localized
// title and requirements plus the checks code still fails.
func InputFor(l curriculum.Lesson, lang, code string) Input {
	r := content.Resolve(lang, l)
	in := Input{
		LessonID:     l.ID,
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		Lang:         lang,
		Requirements: r.Block.Requirements,
		Code:         code,
	}
	if rules, ok := challenge.For(l.ID, lang); ok {
		in.Failing = rules.Missing(code)
	}
	return in
}
