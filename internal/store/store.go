package store

import (
	"github.com/quizgen/quizgen/internal/domain/question"
	"github.com/quizgen/quizgen/internal/domain/session"
)

// QuestionSource loads the question bank and appends authored questions.
type QuestionSource interface {
	Load() ([]question.Question, error)
	Append(q question.Question) error
}

// ProgressStore keeps the rolling recently-asked history between runs.
// Load never fails: a missing or corrupt record reads as empty.
type ProgressStore interface {
	Load() []string
	Save(recentIDs []string) error
}

// ResultStore persists completed sessions and reads them back in
// chronological order. Records that fail to decode are skipped, not fatal.
type ResultStore interface {
	Save(res session.Result) (name string, err error)
	LoadAll() ([]session.Result, error)
}
