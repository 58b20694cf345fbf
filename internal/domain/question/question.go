package question

import (
	"strconv"
	"strings"
)

// Question kinds recognized by the grader.
const (
	KindMultiple  = "multiple"
	KindTrueFalse = "true_false"
	KindShort     = "short"
)

// Question is a single quiz item, immutable once loaded.
type Question struct {
	ID          string
	Category    string   // lowercased for matching
	Kind        string   // lowercased; one of the Kind constants
	Text        string   // prompt shown to the user
	Options     []string // canonical display order; only for multiple
	Answer      string   // letter for multiple, "true"/"false", or free text
	Explanation string
}

// Record is one loosely-typed entry from the question file.
type Record map[string]any

// FromRecord coerces a raw record into a Question. Missing or mistyped
// fields become empty strings rather than errors; an empty answer simply
// never matches anything during grading.
func FromRecord(r Record) Question {
	return Question{
		ID:          coerceString(r["id"]),
		Category:    strings.ToLower(coerceString(r["category"])),
		Kind:        strings.ToLower(coerceString(r["type"])),
		Text:        coerceString(r["question"]),
		Options:     coerceStrings(r["options"]),
		Answer:      coerceString(r["answer"]),
		Explanation: coerceString(r["explanation"]),
	}
}

// FromRecords coerces a whole question file.
func FromRecords(records []Record) []Question {
	questions := make([]Question, 0, len(records))
	for _, r := range records {
		questions = append(questions, FromRecord(r))
	}
	return questions
}

// ToRecord renders q in the question-file layout. Options are only written
// for multiple-choice questions.
func (q Question) ToRecord() Record {
	r := Record{
		"id":          q.ID,
		"category":    q.Category,
		"type":        q.Kind,
		"question":    q.Text,
		"answer":      q.Answer,
		"explanation": q.Explanation,
	}
	if q.Kind == KindMultiple {
		r["options"] = q.Options
	}
	return r
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, coerceString(item))
	}
	return out
}
