package tutor

import (
	"context"
	"errors"
	"math"

	"github.com/tsotne01/css-animation-mastery/internal/content"
	"github.com/tsotne01/css-animation-mastery/internal/llm"
)

// Describe words a failed hint request for the learner, in lang. The raw
// error stays in the log.
func Describe(err error, lang string) string {
	var e *llm.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return content.T(lang, content.KeyTutorTimeout)
	case errors.As(err, &e) && e.Kind == llm.KindRateLimited:
		if e.RetryAfter > 0 {
			return content.T(lang, content.KeyTutorRetryIn, int(math.Ceil(e.RetryAfter.Seconds())))
		}
		return content.T(lang, content.KeyTutorBusy)
	case errors.Is(err, llm.ErrInvalid):
		return content.T(lang, content.KeyTutorInvalid)
	case errors.Is(err, llm.ErrTruncated):
		return content.T(lang, content.KeyTutorTruncated)
	default:
		return content.T(lang, content.KeyTutorDown)
	}
}
