// Package content holds the translated lesson text and UI strings.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/tsotne01/css-animation-mastery/internal/curriculum"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is the language every other table falls back to.
const DefaultLang = "en"

type (
	// Pair is a term with its description, such as a property value and what
	// it does. Extra carries an optional third column (a curve, a unit).
	Pair struct {
		Term  string `yaml:"term"`
		Desc  string `yaml:"desc"`
		Extra string `yaml:"extra"`
	}

	// Section is one headed part of a lesson body.
	Section struct {
		Heading string   `yaml:"heading"`
		Text    string   `yaml:"text"`
		Items   []string `yaml:"items"`
		Pairs   []Pair   `yaml:"pairs"`
		Code    string   `yaml:"code"`
	}

	// Block is the structured content of one lesson in one language.
	Block struct {
		Title          string    `yaml:"title"`
		Subtitle       string    `yaml:"subtitle"`
		Intro          string    `yaml:"intro"`
		Sections       []Section `yaml:"sections"`
		Tip            string    `yaml:"tip"`
		KeyPoints      []string  `yaml:"key_points"`
		CommonMistakes []string  `yaml:"common_mistakes"`
		Requirements   []string  `yaml:"requirements"`
		Hints          []string  `yaml:"hints"`
		StarterCode    string    `yaml:"starter_code"`
		SuccessMessage string    `yaml:"success_message"`
	}

	table struct {
		UI      map[string]string `yaml:"ui"`
		Lessons map[string]Block  `yaml:"lessons"`
	}
)

// HasBody reports whether the block carries anything beyond title and subtitle.
func (b Block) HasBody() bool {
	return b.Intro != "" || len(b.Sections) > 0 || b.Tip != "" ||
		len(b.KeyPoints) > 0 || len(b.CommonMistakes) > 0 ||
		len(b.Requirements) > 0 || len(b.Hints) > 0 ||
		b.StarterCode != "" || b.SuccessMessage != ""
}

// tables maps a language code to its decoded locale file, set by init().
var tables map[string]table

func init() {
	t, err := loadTables()
	if err != nil {
		panic(err)
	}
	tables = t
	buildCatalog()
}

func loadTables() (map[string]table, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	out := make(map[string]table, len(entries))
	for _, e := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", e.Name(), err)
		}
		t, err := decodeTable(data)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", e.Name(), err)
		}
		out[strings.TrimSuffix(e.Name(), ".yaml")] = t
	}
	if _, ok := out[DefaultLang]; !ok {
		return nil, fmt.Errorf("missing %s locale", DefaultLang)
	}
	return out, nil
}

func decodeTable(data []byte) (table, error) {
	// Only fields we defined are allowed, a typo in a key should not
	// silently drop a section.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var t table
	if err := dec.Decode(&t); err != nil {
		return table{}, fmt.Errorf("failed to decode content table: %w", err)
	}
	return t, nil
}

// Languages returns the language codes that have a content table, default first.
func Languages() []string {
	var rest []string
	for lang := range tables {
		if lang != DefaultLang {
			rest = append(rest, lang)
		}
	}
	slices.Sort(rest)
	return append([]string{DefaultLang}, rest...)
}

// Resolved is the content shown for a lesson after fallback.
type Resolved struct {
	Title    string
	Subtitle string
	Block    Block
	// Lang is the language the body came from, empty when no table had one.
	Lang string
}

// Resolve looks up a lesson's content for lang. Title and subtitle fall back
// independently: the lang table, then the English table, then the fields
// carried on the lesson itself. The body comes whole from the first table
// that has one; when none does the sections are simply absent.
func Resolve(lang string, l curriculum.Lesson) Resolved {
	r := Resolved{Title: l.Title, Subtitle: l.Subtitle}

	chain := []string{lang}
	if lang != DefaultLang {
		chain = append(chain, DefaultLang)
	}

	var titleSet, subtitleSet bool
	for _, code := range chain {
		b, ok := tables[code].Lessons[l.ID]
		if !ok {
			continue
		}
		if !titleSet && b.Title != "" {
			r.Title, titleSet = b.Title, true
		}
		if !subtitleSet && b.Subtitle != "" {
			r.Subtitle, subtitleSet = b.Subtitle, true
		}
		if r.Lang == "" && b.HasBody() {
			r.Block, r.Lang = b, code
		}
	}
	r.Block.Title = r.Title
	r.Block.Subtitle = r.Subtitle
	return r
}

// SuccessMessage returns the lesson-specific celebration text for lang, or
// the empty string when no table has one.
func SuccessMessage(lang, lessonID string) string {
	for _, code := range []string{lang, DefaultLang} {
		if msg := tables[code].Lessons[lessonID].SuccessMessage; msg != "" {
			return msg
		}
	}
	return ""
}
