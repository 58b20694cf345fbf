package authoring_test

import (
	"io"
	"testing"

	"github.com/quizgen/quizgen/internal/authoring"
	"github.com/quizgen/quizgen/internal/domain/question"
	"github.com/quizgen/quizgen/internal/prompt"
	"github.com/quizgen/quizgen/internal/store"
)

func steps(texts ...string) []prompt.Step {
	out := make([]prompt.Step, 0, len(texts))
	for _, t := range texts {
		out = append(out, prompt.Step{Text: t})
	}
	return out
}

func TestAddQuestion_Multiple(t *testing.T) {
	source := &store.MemoryQuestions{}
	author := &authoring.Author{
		Source:   source,
		Prompter: &prompt.Script{Steps: steps("m9", "Math", "Multiple", "2+2?", "3", "4", "5", "6", "b", "basic arithmetic")},
		Out:      io.Discard,
	}

	if err := author.AddQuestion(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(source.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(source.Questions))
	}

	q := source.Questions[0]
	if q.ID != "m9" || q.Category != "math" || q.Kind != question.KindMultiple {
		t.Errorf("unexpected question %+v", q)
	}
	if len(q.Options) != 4 || q.Answer != "B" {
		t.Errorf("expected 4 options and answer B, got %v / %q", q.Options, q.Answer)
	}
	if q.Explanation != "basic arithmetic" {
		t.Errorf("unexpected explanation %q", q.Explanation)
	}
}

func TestAddQuestion_BlankIDGetsGenerated(t *testing.T) {
	source := &store.MemoryQuestions{}
	author := &authoring.Author{
		Source:   source,
		Prompter: &prompt.Script{Steps: steps("", "history", "short", "Capital of France?", "Paris", "")},
		Out:      io.Discard,
	}

	if err := author.AddQuestion(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Questions[0].ID == "" {
		t.Error("expected a generated id for a blank one")
	}
}

func TestAddQuestion_InputEndsEarly(t *testing.T) {
	source := &store.MemoryQuestions{}
	author := &authoring.Author{
		Source:   source,
		Prompter: &prompt.Script{Steps: steps("m1", "math")},
		Out:      io.Discard,
	}

	if err := author.AddQuestion(); err == nil {
		t.Fatal("expected an error when input ends mid-flow")
	}
	if len(source.Questions) != 0 {
		t.Error("expected nothing appended after a failed flow")
	}
}
