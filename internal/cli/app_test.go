package cli_test

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/quizgen/quizgen/internal/cli"
	"github.com/quizgen/quizgen/internal/domain/question"
	"github.com/quizgen/quizgen/internal/domain/session"
	"github.com/quizgen/quizgen/internal/prompt"
	"github.com/quizgen/quizgen/internal/store"
)

func newApp(questions []question.Question, script *prompt.Script, out io.Writer) (*cli.App, *store.MemoryResults, *store.MemoryProgress) {
	results := &store.MemoryResults{}
	progress := &store.MemoryProgress{}
	app := &cli.App{
		Questions: &store.MemoryQuestions{Questions: questions},
		Progress:  progress,
		Results:   results,
		Prompter:  script,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:       out,
		Rand:      rand.New(rand.NewSource(1)),
	}
	return app, results, progress
}

func bank() []question.Question {
	return []question.Question{
		{ID: "t1", Category: "go", Kind: question.KindTrueFalse, Text: "Go compiles fast.", Answer: "true"},
		{ID: "t2", Category: "go", Kind: question.KindTrueFalse, Text: "Go ships a race detector.", Answer: "true"},
	}
}

func TestRunSession_PersistsResultAndHistory(t *testing.T) {
	var out bytes.Buffer
	// Selection order is shuffled, so both questions share the same answer.
	script := &prompt.Script{Steps: []prompt.Step{
		{Text: "true", Elapsed: time.Second},
		{Text: "true", Elapsed: time.Second},
		{Text: "n"}, // decline the wrong-answer review
	}}
	app, results, progress := newApp(bank(), script, &out)

	cfg := session.DefaultConfig()
	if err := app.RunSession(cfg, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results.Results) != 1 {
		t.Fatalf("expected 1 persisted result, got %d", len(results.Results))
	}
	res := results.Results[0]
	if res.Score != 20 || res.Correct != 2 {
		t.Errorf("expected a perfect 20-point session, got %+v", res)
	}

	if len(progress.RecentIDs) != 2 {
		t.Errorf("expected both question ids in history, got %v", progress.RecentIDs)
	}

	if !strings.Contains(out.String(), "Status: PASSED") {
		t.Error("expected a PASSED status line in the summary")
	}
}

func TestRunSession_NoMatchAbortsCleanly(t *testing.T) {
	var out bytes.Buffer
	app, results, _ := newApp(bank(), &prompt.Script{}, &out)

	cfg := session.DefaultConfig()
	cfg.CategoryFilter = "biology"
	if err := app.RunSession(cfg, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results.Results) != 0 {
		t.Error("expected no session persisted for an empty selection")
	}
	if !strings.Contains(out.String(), "No questions match") {
		t.Error("expected the no-match message")
	}
}

func TestShowStats_NoResults(t *testing.T) {
	var out bytes.Buffer
	app, _, _ := newApp(nil, &prompt.Script{}, &out)

	if err := app.ShowStats("Ana", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No results") {
		t.Error("expected a no-results message")
	}
}

func TestShowResults_ListsSessions(t *testing.T) {
	var out bytes.Buffer
	app, results, _ := newApp(nil, &prompt.Script{}, &out)
	results.Results = []session.Result{
		{User: "Ana", Date: "2026-08-01", Mode: session.ModeExam, Score: 8, MaxScore: 20, Percent: 40},
	}

	if err := app.ShowResults("ana", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "2026-08-01 | exam | 8/20 (40%)") {
		t.Errorf("unexpected listing output:\n%s", out.String())
	}
}
