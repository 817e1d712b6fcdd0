package content

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// UI string keys.
const (
	KeyProgress       = "nav.progress"
	KeyPrevious       = "nav.previous"
	KeyNext           = "nav.next"
	KeyCompleteCourse = "nav.complete_course"
	KeyLessonsDone    = "nav.lessons_done"
	KeyAppTitle       = "header.title"
	KeyAppSubtitle    = "header.subtitle"
	KeyPlayground     = "playground.title"
	KeyRun            = "playground.run"
	KeyReset          = "playground.reset"
	KeyCopy           = "playground.copy"
	KeyCopied         = "playground.copied"
	KeyPreview        = "playground.preview"
	KeyHoverTip       = "playground.hover_tip"
	KeyCSS            = "playground.css"
	KeyFullscreen     = "playground.fullscreen"
	KeyOutline        = "playground.outline"
	KeyAskTutor       = "playground.ask_tutor"
	KeyLessonContent  = "lesson.content"
	KeyTip            = "lesson.tip"
	KeyExample        = "lesson.example"
	KeyTryIt          = "lesson.try_it"
	KeyChallenge      = "lesson.challenge"
	KeyCommonMistakes = "lesson.common_mistakes"
	KeyKeyPoints      = "lesson.key_points"
	KeyRequirements   = "lesson.requirements"
	KeyHints          = "lesson.hints"
	KeyStarterCode    = "lesson.starter_code"
	KeyMarkComplete   = "lesson.mark_complete"
	KeyMarkIncomplete = "lesson.mark_incomplete"
	KeyCompleted      = "lesson.completed"
	KeyNoContent      = "lesson.no_content"
	KeyThemeLight     = "theme.light"
	KeyThemeDark      = "theme.dark"
	KeyLanguageEN     = "language.en"
	KeyLanguageKA     = "language.ka"
	KeyTutorDown      = "tutor.unavailable"
	KeyTutorBusy      = "tutor.busy"
	KeyTutorRetryIn   = "tutor.rate_limited"
	KeyTutorTimeout   = "tutor.timeout"
	KeyTutorInvalid   = "tutor.invalid"
	KeyTutorTruncated = "tutor.truncated"
)

var (
	uiCatalog *catalog.Builder
	matcher   language.Matcher
)

// buildCatalog registers every ui entry of every table with the message
// catalog. A key missing from a locale gets the English message under that
// locale's tag.
func buildCatalog() {
	uiCatalog = catalog.NewBuilder(catalog.Fallback(language.English))
	english := tables[DefaultLang].UI
	var tags []language.Tag
	for _, code := range Languages() {
		tag := language.Make(code)
		tags = append(tags, tag)
		ui := tables[code].UI
		for key, msg := range ui {
			_ = uiCatalog.SetString(tag, key, msg)
		}
		for key, msg := range english {
			if _, ok := ui[key]; !ok {
				_ = uiCatalog.SetString(tag, key, msg)
			}
		}
	}
	matcher = language.NewMatcher(tags)
}

// Printer returns a printer that formats UI strings for lang. Unknown
// languages get the closest supported one, English at worst.
func Printer(lang string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	return message.NewPrinter(language.Make(base.String()), message.Catalog(uiCatalog))
}

// T formats the UI string key for lang.
func T(lang, key string, args ...any) string {
	return Printer(lang).Sprintf(key, args...)
}
