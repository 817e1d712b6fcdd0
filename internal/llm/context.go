package llm

import "context"

type lessonKey struct{}

// WithLesson tags requests made with ctx with the lesson they are for.
func WithLesson(ctx context.Context, lessonID string) context.Context {
	return context.WithValue(ctx, lessonKey{}, lessonID)
}

// LessonFrom returns the lesson set by WithLesson, or "".
func LessonFrom(ctx context.Context) string {
	id, _ := ctx.Value(lessonKey{}).(string)
	return id
}
