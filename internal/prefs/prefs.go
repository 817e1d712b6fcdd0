// Package prefs persists the learner's theme and language choices.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/store"
)

// Backend keys. Theme and language are saved independently.
const (
	ThemeKey    = "css-animation-mastery-theme"
	LanguageKey = "language"
)

// Theme is the presentation mode of the whole view tree.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Language is a supported UI locale.
type Language string

const (
	LanguageEN Language = "en"
	LanguageKA Language = "ka"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// ParseLanguage accepts "en" or "ka" in any case.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case LanguageEN, LanguageKA:
		return l, nil
	}
	return "", fmt.Errorf("unknown language %q (want en or ka)", s)
}

// Store owns the preference record. Writes are best effort, like the
// progress store.
type Store struct {
	backend store.Backend
	log     *zap.Logger

	theme     Theme
	language  Language
	observers []func(Theme)
}

// Load reads both preferences from backend, defaulting to dark and English
// when a value is missing or unrecognised.
func Load(backend store.Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{backend: backend, log: log, theme: ThemeDark, language: LanguageEN}

	if raw, ok := s.load(ThemeKey); ok {
		if t, err := ParseTheme(raw); err == nil {
			s.theme = t
		} else {
			log.Debug("ignoring stored theme", zap.Error(err))
		}
	}
	if raw, ok := s.load(LanguageKey); ok {
		if l, err := ParseLanguage(raw); err == nil {
			s.language = l
		} else {
			log.Debug("ignoring stored language", zap.Error(err))
		}
	}
	return s
}

// load returns the string stored under key. Values written by older
// versions were bare strings rather than JSON, both are accepted.
func (s *Store) load(key string) (string, bool) {
	raw, err := s.backend.Load(context.Background(), key)
	if err != nil {
		if !store.IsNotFound(err) {
			s.log.Debug("preference unavailable", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw), true
	}
	return v, true
}

func (s *Store) save(key, value string) {
	data, _ := json.Marshal(value)
	if err := s.backend.Save(context.Background(), key, data); err != nil {
		s.log.Debug("save preference", zap.String("key", key), zap.Error(err))
	}
}

// Theme returns the current theme.
func (s *Store) Theme() Theme { return s.theme }

// SetTheme switches to t, persists it and notifies observers.
func (s *Store) SetTheme(t Theme) {
	s.theme = t
	s.save(ThemeKey, string(t))
	s.notify()
}

// ToggleTheme flips between dark and light.
func (s *Store) ToggleTheme() {
	if s.theme == ThemeDark {
		s.SetTheme(ThemeLight)
		return
	}
	s.SetTheme(ThemeDark)
}

// OnThemeChange registers fn to run after every theme change. fn also runs
// once immediately with the current theme.
func (s *Store) OnThemeChange(fn func(Theme)) {
	s.observers = append(s.observers, fn)
	fn(s.theme)
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn(s.theme)
	}
}

// Language returns the current UI language.
func (s *Store) Language() Language { return s.language }

// SetLanguage switches to l and persists it.
func (s *Store) SetLanguage(l Language) {
	s.language = l
	s.save(LanguageKey, string(l))
}

// ToggleLanguage flips between English and Georgian.
func (s *Store) ToggleLanguage() {
	if s.language == LanguageEN {
		s.SetLanguage(LanguageKA)
		return
	}
	s.SetLanguage(LanguageEN)
}
