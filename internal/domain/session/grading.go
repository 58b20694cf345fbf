package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/quizgen/quizgen/internal/domain/question"
)

// Ask administers a single question: present, read a timed answer, grade it
// under the question-kind rules, and report feedback when the session runs
// in immediate mode. It returns the answer record, the score delta and the
// correctness bit.
func (r *Runner) Ask(q question.Question) (AnswerRecord, int, bool, error) {
	fmt.Fprintln(r.out, strings.Repeat("-", 55))

	display := q
	var mapping map[string]string
	if q.Kind == question.KindMultiple {
		display, mapping = ShuffleOptions(q, r.rng)
	}

	fmt.Fprintln(r.out, display.Text)

	var (
		given          string
		correctDisplay string
		isCorrect      bool
		elapsed        time.Duration
		err            error
	)

	switch q.Kind {
	case question.KindMultiple:
		for i, opt := range display.Options {
			fmt.Fprintf(r.out, " %s) %s\n", Letter(i), opt)
		}
		correctDisplay = strings.ToUpper(q.Answer)

		var raw string
		raw, elapsed, err = r.prompter.ReadAnswer("Your answer (A/B/C/D): ")
		if err != nil {
			return AnswerRecord{}, 0, false, fmt.Errorf("reading answer: %w", err)
		}

		given = strings.ToUpper(strings.TrimSpace(raw))
		// Translate the displayed letter back to the canonical one; anything
		// outside the mapping passes through and simply fails the comparison.
		canonical := given
		if orig, ok := mapping[given]; ok {
			canonical = orig
		}
		isCorrect = canonical == correctDisplay

	case question.KindTrueFalse:
		correctDisplay = strings.ToLower(q.Answer)

		var raw string
		raw, elapsed, err = r.prompter.ReadAnswer("Your answer (true/false): ")
		if err != nil {
			return AnswerRecord{}, 0, false, fmt.Errorf("reading answer: %w", err)
		}

		given = strings.ToLower(strings.TrimSpace(raw))
		isCorrect = given == strings.ToLower(strings.TrimSpace(q.Answer))

	default:
		correctDisplay = q.Answer

		var raw string
		raw, elapsed, err = r.prompter.ReadAnswer("Your answer: ")
		if err != nil {
			return AnswerRecord{}, 0, false, fmt.Errorf("reading answer: %w", err)
		}

		given = strings.TrimSpace(raw)
		isCorrect = normalizeShort(given) == normalizeShort(q.Answer)
	}

	// The timeout is detected after the read returns; it forces the answer
	// incorrect regardless of content.
	timedOut := r.cfg.TimedSeconds > 0 && elapsed.Seconds() > float64(r.cfg.TimedSeconds)
	if timedOut {
		isCorrect = false
	}

	delta := 0
	if r.cfg.Mode == ModeExam {
		if isCorrect {
			delta = r.cfg.PointsCorrect
		} else {
			delta = -r.cfg.PenaltyWrong
		}
	}

	if r.cfg.Feedback == FeedbackImmediate {
		r.printFeedback(isCorrect, timedOut, elapsed, correctDisplay, q.Explanation)
	}

	rec := AnswerRecord{
		QuestionID:    q.ID,
		Category:      q.Category,
		Kind:          q.Kind,
		Question:      q.Text,
		YourAnswer:    given,
		CorrectAnswer: correctDisplay,
		IsCorrect:     isCorrect,
		TimedOut:      timedOut,
		TimeSec:       round2(elapsed.Seconds()),
		Explanation:   q.Explanation,
	}
	return rec, delta, isCorrect, nil
}

func (r *Runner) printFeedback(isCorrect, timedOut bool, elapsed time.Duration, correctDisplay, explanation string) {
	secs := elapsed.Seconds()

	if timedOut {
		fmt.Fprintf(r.out, "[TIME EXPIRED] (answered in %.1fs, limit %ds)\n", secs, r.cfg.TimedSeconds)
	}

	if isCorrect {
		if r.cfg.Mode == ModeExam {
			fmt.Fprintf(r.out, "[CORRECT] (+%d points) [answered in %.1f seconds]\n", r.cfg.PointsCorrect, secs)
		} else {
			fmt.Fprintf(r.out, "[CORRECT] [answered in %.1f seconds]\n", secs)
		}
		return
	}

	if r.cfg.Mode == ModeExam {
		fmt.Fprintf(r.out, "[INCORRECT] (-%d points) [answered in %.1f seconds]\n", r.cfg.PenaltyWrong, secs)
	} else {
		fmt.Fprintf(r.out, "[INCORRECT] [answered in %.1f seconds]\n", secs)
	}
	fmt.Fprintf(r.out, "Correct answer: %s\n", correctDisplay)
	if explanation != "" {
		fmt.Fprintf(r.out, "Explanation: %s\n", explanation)
	}
}

// normalizeShort trims, collapses internal whitespace runs to single spaces
// and lowercases, so short answers compare loosely.
func normalizeShort(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
