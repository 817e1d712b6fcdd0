package curriculum

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLessonNotFound is returned when a lesson id is not part of the course.
var ErrLessonNotFound = errors.New("lesson not found")

// catalog holds the course with precomputed indices.
type catalog struct {
	modules  []Module
	lessons  []Lesson // flattened in course order
	byID     map[string]int
	byModule map[string]int
}

// c is the package-level catalog singleton, set by init() in catalog.go.
var c *catalog

// buildCatalog stamps each lesson with its owning module and builds the
// flattened order and id indices.
func buildCatalog(modules []Module) *catalog {
	cat := &catalog{
		modules:  modules,
		byID:     make(map[string]int),
		byModule: make(map[string]int, len(modules)),
	}
	for mi := range cat.modules {
		m := &cat.modules[mi]
		cat.byModule[m.ID] = mi
		for li := range m.Lessons {
			m.Lessons[li].Module = m.ID
			cat.byID[m.Lessons[li].ID] = len(cat.lessons)
			cat.lessons = append(cat.lessons, m.Lessons[li])
		}
	}
	return cat
}

// Modules returns every module in course order.
func Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, m := range c.modules {
		m.Lessons = slices.Clone(m.Lessons)
		out[i] = m
	}
	return out
}

// AllLessons returns every lesson flattened in course order.
func AllLessons() []Lesson {
	return slices.Clone(c.lessons)
}

// GetLesson returns a lesson by id.
func GetLesson(id string) (Lesson, error) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %q", ErrLessonNotFound, id)
	}
	return c.lessons[i], nil
}

// GetModule returns a module by id.
func GetModule(id string) (Module, bool) {
	i, ok := c.byModule[id]
	if !ok {
		return Module{}, false
	}
	m := c.modules[i]
	m.Lessons = slices.Clone(m.Lessons)
	return m, true
}

// Index returns the position of a lesson in the flattened course order, or
// -1 when the id is unknown.
func Index(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}

// AdjacentLessons returns the lessons before and after id in course order.
// An unknown id behaves as position -1: no previous lesson, and the first
// lesson of the course as the next one.
func AdjacentLessons(id string) Adjacent {
	return adjacent(c.lessons, Index(id))
}

func adjacent(lessons []Lesson, i int) Adjacent {
	var adj Adjacent
	if i > 0 {
		l := lessons[i-1]
		adj.Prev = &l
	}
	if i+1 < len(lessons) {
		l := lessons[i+1]
		adj.Next = &l
	}
	return adj
}

// First returns the opening lesson of the course.
func First() Lesson {
	return c.lessons[0]
}

// IsLast reports whether id is the final lesson of the final module.
func IsLast(id string) bool {
	return Index(id) == len(c.lessons)-1
}

// TotalLessons returns the number of lessons across all modules.
func TotalLessons() int {
	return len(c.lessons)
}

// TotalModules returns the number of modules.
func TotalModules() int {
	return len(c.modules)
}

// ModuleProgress counts how many of the module's lessons satisfy done.
func ModuleProgress(moduleID string, done func(lessonID string) bool) (completed, total int) {
	i, ok := c.byModule[moduleID]
	if !ok {
		return 0, 0
	}
	for _, l := range c.modules[i].Lessons {
		if done(l.ID) {
			completed++
		}
	}
	return completed, len(c.modules[i].Lessons)
}

// Validate checks the seeded catalog for structural problems.
func Validate() error {
	return validateModules(c.modules)
}
