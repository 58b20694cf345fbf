package authoring

import (
	"fmt"
	"io"
	"strings"

	"github.com/quizgen/quizgen/internal/domain/question"
	"github.com/quizgen/quizgen/internal/id"
	"github.com/quizgen/quizgen/internal/prompt"
	"github.com/quizgen/quizgen/internal/store"
)

const optionCount = 4

// Author runs the interactive add-question flow against a question source.
type Author struct {
	Source   store.QuestionSource
	Prompter prompt.Prompter
	Out      io.Writer

	err error
}

// AddQuestion prompts for each field in sequence and appends the new record
// to the question source. A blank id gets a generated one.
func (a *Author) AddQuestion() error {
	fmt.Fprintln(a.Out, "Add a question (interactive)")

	q := question.Question{
		ID:       a.read("id (blank to generate one): "),
		Category: strings.ToLower(a.read("category (e.g. math): ")),
		Kind:     strings.ToLower(a.read("type (multiple/true_false/short): ")),
		Text:     a.read("question: "),
	}
	if q.ID == "" {
		q.ID = id.Generate()
	}

	switch q.Kind {
	case question.KindMultiple:
		fmt.Fprintf(a.Out, "Enter %d options:\n", optionCount)
		for i := 0; i < optionCount; i++ {
			q.Options = append(q.Options, a.read(fmt.Sprintf(" option %d: ", i+1)))
		}
		q.Answer = strings.ToUpper(a.read("answer (A/B/C/D): "))
	case question.KindTrueFalse:
		q.Answer = strings.ToLower(a.read("answer (true/false): "))
	default:
		q.Answer = a.read("answer (short): ")
	}

	q.Explanation = a.read("explanation (optional): ")

	if a.err != nil {
		return fmt.Errorf("reading question fields: %w", a.err)
	}
	if err := a.Source.Append(q); err != nil {
		return err
	}

	fmt.Fprintln(a.Out, "Question added to the file.")
	return nil
}

// read returns the next trimmed answer. After the first read error it keeps
// returning empty strings; AddQuestion reports the sticky error at the end.
func (a *Author) read(promptText string) string {
	if a.err != nil {
		return ""
	}
	text, _, err := a.Prompter.ReadAnswer(promptText)
	if err != nil {
		a.err = err
		return ""
	}
	return strings.TrimSpace(text)
}
