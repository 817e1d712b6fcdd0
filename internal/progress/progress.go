// Package progress tracks which lessons the learner has completed and where
// they left off.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/tsotne01/css-animation-mastery/internal/store"
)

// Key is the backend key the progress record is saved under.
const Key = "css-animation-mastery-progress"

// Record is the persisted progress document.
type Record struct {
	CompletedLessons []string `json:"completedLessons"`
	CurrentLessonID  *string  `json:"currentLessonId"`
}

var recordSchema = map[string]any{
	"type":     "object",
	"required": []any{"completedLessons"},
	"properties": map[string]any{
		"completedLessons": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"currentLessonId": map[string]any{
			"type": []any{"string", "null"},
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value, not Go literals.
	defBytes, err := json.Marshal(recordSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://progress-record.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

// decodeRecord parses and schema-checks a persisted record.
func decodeRecord(raw []byte) (Record, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Record{}, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return Record{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Record{}, fmt.Errorf("schema validation failed: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Store owns the progress record. Every mutation is written through to the
// backend; write failures are logged and otherwise ignored so the session
// keeps working from memory.
type Store struct {
	backend store.Backend
	log     *zap.Logger
	total   int

	completed []string
	current   *string
}

// Load reads the progress record from backend. total is the number of
// lessons in the course. A missing, unreadable or malformed record yields
// the empty initial state.
func Load(backend store.Backend, total int, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{backend: backend, log: log, total: total}

	raw, err := backend.Load(context.Background(), Key)
	switch {
	case store.IsNotFound(err):
		return s
	case err != nil:
		log.Debug("progress unavailable, using defaults", zap.Error(err))
		return s
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		log.Debug("progress record rejected, using defaults", zap.Error(err))
		return s
	}
	for _, id := range rec.CompletedLessons {
		if !slices.Contains(s.completed, id) {
			s.completed = append(s.completed, id)
		}
	}
	s.current = rec.CurrentLessonID
	return s
}

func (s *Store) persist() {
	data, err := json.Marshal(s.Record())
	if err != nil {
		s.log.Debug("encode progress", zap.Error(err))
		return
	}
	if err := s.backend.Save(context.Background(), Key, data); err != nil {
		s.log.Debug("save progress", zap.Error(err))
	}
}

// Record returns a copy of the current progress document.
func (s *Store) Record() Record {
	rec := Record{CompletedLessons: s.CompletedLessons()}
	if s.current != nil {
		id := *s.current
		rec.CurrentLessonID = &id
	}
	return rec
}

// MarkComplete adds id to the completed set. Already-complete ids are left
// as they are.
func (s *Store) MarkComplete(id string) {
	if slices.Contains(s.completed, id) {
		return
	}
	s.completed = append(s.completed, id)
	s.persist()
}

// MarkIncomplete removes id from the completed set.
func (s *Store) MarkIncomplete(id string) {
	s.completed = slices.DeleteFunc(s.completed, func(c string) bool { return c == id })
	s.persist()
}

// Toggle flips the completion state of id.
func (s *Store) Toggle(id string) {
	if s.IsComplete(id) {
		s.MarkIncomplete(id)
		return
	}
	s.MarkComplete(id)
}

// IsComplete reports whether id is in the completed set.
func (s *Store) IsComplete(id string) bool {
	return slices.Contains(s.completed, id)
}

// SetCurrentLesson records id as the last viewed lesson.
func (s *Store) SetCurrentLesson(id string) {
	s.current = &id
	s.persist()
}

// CurrentLessonID returns the last viewed lesson, if any.
func (s *Store) CurrentLessonID() (string, bool) {
	if s.current == nil {
		return "", false
	}
	return *s.current, true
}

// ResetProgress clears the completed set and the current lesson.
func (s *Store) ResetProgress() {
	s.completed = nil
	s.current = nil
	s.persist()
}

// CompletedLessons returns the completed ids in the order they were completed.
// The result is never nil.
func (s *Store) CompletedLessons() []string {
	return append([]string{}, s.completed...)
}

// CompletedCount returns the number of completed lessons.
func (s *Store) CompletedCount() int {
	return len(s.completed)
}

// TotalCount returns the number of lessons in the course.
func (s *Store) TotalCount() int {
	return s.total
}

// ProgressPercent returns completed over total as a percentage, or 0 for an
// empty course.
func (s *Store) ProgressPercent() float64 {
	return Percent(len(s.completed), s.total)
}

// Percent returns 100*completed/total, or 0 when total is not positive.
func Percent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(completed) / float64(total)
}
