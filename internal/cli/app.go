package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/quizgen/quizgen/internal/authoring"
	"github.com/quizgen/quizgen/internal/domain/session"
	"github.com/quizgen/quizgen/internal/prompt"
	"github.com/quizgen/quizgen/internal/selection"
	"github.com/quizgen/quizgen/internal/stats"
	"github.com/quizgen/quizgen/internal/store"
)

// App holds all dependencies needed by the CLI operations. Instead of
// relying on package-level globals, every operation method receives its
// dependencies through this struct.
type App struct {
	Questions store.QuestionSource
	Progress  store.ProgressStore
	Results   store.ResultStore
	Prompter  prompt.Prompter
	Logger    *slog.Logger
	Out       io.Writer
	Rand      *rand.Rand
}

// RunSession is the default operation: select questions, administer them,
// print the final summary and persist the result.
func (a *App) RunSession(cfg session.Config, count int) error {
	cfg.CategoryFilter = selection.Normalize(cfg.CategoryFilter)
	cfg.KindFilter = selection.Normalize(cfg.KindFilter)

	questions, err := a.Questions.Load()
	if err != nil {
		return err
	}

	recent := a.Progress.Load()
	picked, updated, err := selection.Select(questions, cfg.CategoryFilter, cfg.KindFilter, recent, count, a.Rand)
	if errors.Is(err, selection.ErrNoMatch) {
		fmt.Fprintln(a.Out, "No questions match the chosen filters.")
		return nil
	}
	if err != nil {
		return err
	}

	// History is best-effort: a failed save biases future selection, nothing
	// worse.
	if err := a.Progress.Save(updated); err != nil {
		a.Logger.Warn("failed to save question history", "error", err)
	}

	runner := session.NewRunner(cfg, a.Prompter, a.Rand, a.Out)
	result, err := runner.Run(picked)
	if err != nil {
		return err
	}

	a.printSummary(result)

	name, err := a.Results.Save(result)
	if err != nil {
		return fmt.Errorf("saving session result: %w", err)
	}
	fmt.Fprintf(a.Out, "Saved to %s\n", name)

	if result.Feedback == session.FeedbackImmediate {
		a.reviewWrongAnswers(result)
	}
	return nil
}

// ShowResults lists a user's saved sessions, optionally for one date.
func (a *App) ShowResults(user, dateFilter string) error {
	all, err := a.Results.LoadAll()
	if err != nil {
		return err
	}

	rows := stats.Sessions(all, user, dateFilter)
	if len(rows) == 0 {
		fmt.Fprintln(a.Out, "No results for the chosen filters.")
		return nil
	}

	header := fmt.Sprintf("Results for %s", user)
	if dateFilter != "" {
		header += " on " + dateFilter
	}
	fmt.Fprintln(a.Out, header)
	fmt.Fprintln(a.Out, strings.Repeat("-", 55))
	for _, r := range rows {
		fmt.Fprintf(a.Out, "%s | %s | %d/%d (%v%%)\n", r.Date, r.Mode, r.Score, r.MaxScore, r.Percent)
	}
	return nil
}

// ShowStats prints one user's aggregate statistics.
func (a *App) ShowStats(user, dateFilter string) error {
	all, err := a.Results.LoadAll()
	if err != nil {
		return err
	}

	report, ok := stats.ForUser(all, user, dateFilter)
	if !ok {
		fmt.Fprintln(a.Out, "No results for this user.")
		return nil
	}

	fmt.Fprintf(a.Out, "Quiz statistics - %s\n", user)
	fmt.Fprintf(a.Out, "Completed quizzes: %d\n", report.Count)
	fmt.Fprintf(a.Out, "Average score: %.0f%%\n", report.Average)
	fmt.Fprintf(a.Out, "Lowest score: %.0f%%\n", report.Min)
	fmt.Fprintf(a.Out, "Highest score: %.0f%%\n", report.Max)

	fmt.Fprintln(a.Out, "Performance by category:")
	for _, c := range report.Categories {
		fmt.Fprintf(a.Out, " %s: %.0f%% (%d quizzes)\n", c.Category, c.Average, c.Count)
	}

	fmt.Fprintln(a.Out, "Evolution (last 5 quizzes):")
	for _, e := range report.Recent {
		fmt.Fprintf(a.Out, " Quiz #%d: %.0f%% %s\n", e.Index, e.Percent, e.Bar)
	}

	word := "Decline"
	if stats.Improved(report.Trend) {
		word = "Improvement"
	}
	fmt.Fprintf(a.Out, "Trend: %s (%+.0f%% vs the first quiz)\n", word, report.Trend)
	return nil
}

// ShowAllUserStats prints the cross-user summary table.
func (a *App) ShowAllUserStats() error {
	all, err := a.Results.LoadAll()
	if err != nil {
		return err
	}

	summaries := stats.AllUsers(all)
	if len(summaries) == 0 {
		fmt.Fprintln(a.Out, "No saved results.")
		return nil
	}

	fmt.Fprintln(a.Out, "Statistics - all users")
	fmt.Fprintln(a.Out, strings.Repeat("-", 55))
	for _, s := range summaries {
		fmt.Fprintf(a.Out, "%s: %d quizzes | average %.0f%% | max %.0f%% | min %.0f%%\n",
			s.User, s.Count, s.Average, s.Max, s.Min)
	}
	return nil
}

// AddQuestion runs the interactive authoring flow.
func (a *App) AddQuestion() error {
	author := &authoring.Author{
		Source:   a.Questions,
		Prompter: a.Prompter,
		Out:      a.Out,
	}
	return author.AddQuestion()
}

func (a *App) printSummary(result session.Result) {
	fmt.Fprintln(a.Out, strings.Repeat("=", 55))
	fmt.Fprintln(a.Out, "FINAL RESULTS")

	rawPercent := result.RawPercent()
	if result.Mode == session.ModeExam {
		fmt.Fprintf(a.Out, "Final score: %d/%d points (%.0f%%)\n", result.Score, result.MaxScore, rawPercent)
	} else {
		fmt.Fprintf(a.Out, "Practice mode (no score) | Accuracy: %.0f%%\n", rawPercent)
	}

	fmt.Fprintf(a.Out, "Correct answers: %d/%d\n", result.Correct, result.NumQuestions)
	fmt.Fprintf(a.Out, "Wrong answers: %d/%d\n", result.Wrong, result.NumQuestions)
	fmt.Fprintf(a.Out, "Total time: %s\n", formatSeconds(result.TotalTimeSec))
	fmt.Fprintf(a.Out, "Average time per question: %.0f sec\n", result.AvgTimeSec)

	grade := session.GradeFromPercent(rawPercent)
	fmt.Fprintf(a.Out, "Grade: %d/10\n", grade)
	if session.Passed(grade) {
		fmt.Fprintln(a.Out, "Status: PASSED")
	} else {
		fmt.Fprintln(a.Out, "Status: FAILED")
	}
}

func (a *App) reviewWrongAnswers(result session.Result) {
	text, _, err := a.Prompter.ReadAnswer("Review the correct answers for the questions you missed? (y/n): ")
	if err != nil || strings.ToLower(strings.TrimSpace(text)) != "y" {
		return
	}

	for i, ans := range result.Answers {
		if ans.IsCorrect {
			continue
		}
		fmt.Fprintf(a.Out, "\nQuestion %d:\n", i+1)
		fmt.Fprintf(a.Out, " Question: %s\n", ans.Question)
		fmt.Fprintf(a.Out, " Your answer: %s\n", ans.YourAnswer)
		fmt.Fprintf(a.Out, " Correct answer: %s\n", ans.CorrectAnswer)
		if ans.Explanation != "" {
			fmt.Fprintf(a.Out, " Explanation: %s\n", ans.Explanation)
		}
	}
}

// formatSeconds renders a duration as "M min SS sec" or "S sec".
func formatSeconds(total float64) string {
	t := int(math.Round(total))
	if mm := t / 60; mm > 0 {
		return fmt.Sprintf("%d min %02d sec", mm, t%60)
	}
	return fmt.Sprintf("%d sec", t)
}
