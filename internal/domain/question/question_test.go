package question_test

import (
	"testing"

	"github.com/quizgen/quizgen/internal/domain/question"
)

func TestFromRecord_NormalizesCategoryAndKind(t *testing.T) {
	q := question.FromRecord(question.Record{
		"id":       "m1",
		"category": "Matematica",
		"type":     "Multiple",
		"question": "2+2?",
		"options":  []any{"3", "4"},
		"answer":   "B",
	})

	if q.Category != "matematica" {
		t.Errorf("expected lowercased category, got %q", q.Category)
	}
	if q.Kind != "multiple" {
		t.Errorf("expected lowercased kind, got %q", q.Kind)
	}
	if len(q.Options) != 2 || q.Options[1] != "4" {
		t.Errorf("unexpected options %v", q.Options)
	}
}

func TestFromRecord_MissingFieldsDefaultToEmpty(t *testing.T) {
	q := question.FromRecord(question.Record{})

	if q.ID != "" || q.Category != "" || q.Kind != "" || q.Text != "" || q.Answer != "" || q.Explanation != "" {
		t.Errorf("expected empty defaults, got %+v", q)
	}
	if q.Options != nil {
		t.Errorf("expected nil options, got %v", q.Options)
	}
}

func TestFromRecord_CoercesScalars(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"integer number", float64(3), "3"},
		{"fractional number", 2.5, "2.5"},
		{"boolean", true, "true"},
		{"null", nil, ""},
		{"object", map[string]any{"x": 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := question.FromRecord(question.Record{"id": tt.raw})
			if q.ID != tt.want {
				t.Errorf("expected id %q, got %q", tt.want, q.ID)
			}
		})
	}
}

func TestToRecord_OptionsOnlyForMultiple(t *testing.T) {
	short := question.Question{ID: "s1", Kind: question.KindShort, Answer: "Paris"}
	if _, ok := short.ToRecord()["options"]; ok {
		t.Error("expected no options key for a short question")
	}

	multiple := question.Question{ID: "m1", Kind: question.KindMultiple, Options: []string{"a", "b"}, Answer: "A"}
	if _, ok := multiple.ToRecord()["options"]; !ok {
		t.Error("expected options key for a multiple question")
	}
}
