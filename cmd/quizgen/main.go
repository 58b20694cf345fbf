package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/quizgen/quizgen/internal/cli"
	"github.com/quizgen/quizgen/internal/domain/session"
	"github.com/quizgen/quizgen/internal/infrastructure/config"
	"github.com/quizgen/quizgen/internal/prompt"
	"github.com/quizgen/quizgen/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	file := flag.String("file", cfg.QuestionsFile, "question file")
	num := flag.Int("num", 5, "number of questions per session (0 = all eligible)")
	category := flag.String("category", "", "category filter")
	kind := flag.String("type", "", "question type filter (multiple/true_false/short)")
	timed := flag.Int("timed", 0, "seconds allowed per question (0 = no limit)")
	mode := flag.String("mode", session.ModeExam, "session mode: practice or exam")
	feedback := flag.String("feedback", session.FeedbackImmediate, "feedback mode: immediate or final")
	user := flag.String("user", cfg.DefaultUser, "user name")

	results := flag.Bool("results", false, "list saved results instead of running a quiz")
	date := flag.String("date", "", "ISO date filter for -results and -stats")

	addQuestion := flag.Bool("add-question", false, "add a question to the question file")
	interactive := flag.Bool("interactive", false, "prompt for each field when adding a question")

	showStats := flag.Bool("stats", false, "show statistics instead of running a quiz")
	allUsers := flag.Bool("all-users", false, "with -stats, cover every user")

	flag.Parse()

	if *mode != session.ModePractice && *mode != session.ModeExam {
		fmt.Fprintf(os.Stderr, "invalid -mode %q: use practice or exam\n", *mode)
		os.Exit(2)
	}
	if *feedback != session.FeedbackImmediate && *feedback != session.FeedbackFinal {
		fmt.Fprintf(os.Stderr, "invalid -feedback %q: use immediate or final\n", *feedback)
		os.Exit(2)
	}

	// ── Dependencies ────────────────────────────────────────────────
	app := &cli.App{
		Questions: store.FileQuestions{Path: *file},
		Progress:  store.FileProgress{Dir: cfg.ResultsDir},
		Results:   store.FileResults{Dir: cfg.ResultsDir},
		Prompter:  prompt.NewTerminal(os.Stdin, os.Stdout),
		Logger:    logger,
		Out:       os.Stdout,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// ── Dispatch ────────────────────────────────────────────────────
	var err error
	switch {
	case *results:
		err = app.ShowResults(*user, *date)

	case *addQuestion:
		if !*interactive {
			fmt.Fprintln(os.Stdout, "Use: -add-question -interactive")
			return
		}
		err = app.AddQuestion()

	case *showStats:
		if *allUsers {
			err = app.ShowAllUserStats()
		} else {
			err = app.ShowStats(*user, *date)
		}

	default:
		sessionCfg := session.DefaultConfig()
		sessionCfg.User = *user
		sessionCfg.Mode = *mode
		sessionCfg.Feedback = *feedback
		sessionCfg.CategoryFilter = *category
		sessionCfg.KindFilter = *kind
		sessionCfg.TimedSeconds = *timed
		err = app.RunSession(sessionCfg, *num)
	}

	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
