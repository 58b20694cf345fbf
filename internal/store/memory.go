package store

import (
	"fmt"

	"github.com/quizgen/quizgen/internal/domain/question"
	"github.com/quizgen/quizgen/internal/domain/session"
)

// In-memory implementations of the storage ports, used by tests.

type MemoryQuestions struct {
	Questions []question.Question
}

func (m *MemoryQuestions) Load() ([]question.Question, error) {
	return m.Questions, nil
}

func (m *MemoryQuestions) Append(q question.Question) error {
	m.Questions = append(m.Questions, q)
	return nil
}

type MemoryProgress struct {
	RecentIDs []string
}

func (m *MemoryProgress) Load() []string {
	return m.RecentIDs
}

func (m *MemoryProgress) Save(recentIDs []string) error {
	m.RecentIDs = recentIDs
	return nil
}

type MemoryResults struct {
	Results []session.Result
}

func (m *MemoryResults) Save(res session.Result) (string, error) {
	m.Results = append(m.Results, res)
	return fmt.Sprintf("memory-%d", len(m.Results)), nil
}

func (m *MemoryResults) LoadAll() ([]session.Result, error) {
	return m.Results, nil
}
