package selection

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/quizgen/quizgen/internal/domain/question"
)

// HistorySize bounds the rolling recently-asked history carried between runs.
const HistorySize = 50

// ErrNoMatch is returned when the category/kind filters leave no questions.
var ErrNoMatch = errors.New("no questions match the chosen filters")

// Select filters the bank, biases the pick away from recently asked
// questions, and draws up to count at random. count <= 0 means all eligible
// questions. The returned history is recentIDs extended with the picked ids,
// bounded to the last HistorySize entries, oldest dropped first.
func Select(questions []question.Question, categoryFilter, kindFilter string, recentIDs []string, count int, rng *rand.Rand) ([]question.Question, []string, error) {
	filtered := Filter(questions, categoryFilter, kindFilter)
	if len(filtered) == 0 {
		return nil, recentIDs, ErrNoMatch
	}

	seen := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		seen[id] = true
	}

	fresh := make([]question.Question, 0, len(filtered))
	for _, q := range filtered {
		if !seen[q.ID] {
			fresh = append(fresh, q)
		}
	}

	// Once repeats have exhausted the bank, history stops excluding anything
	// rather than starving the selection.
	pool := fresh
	if len(fresh) < count || len(fresh) == 0 {
		pool = filtered
	}

	picked := shuffled(pool, rng)
	if count > 0 && count < len(picked) {
		picked = picked[:count]
	}

	updated := make([]string, 0, len(recentIDs)+len(picked))
	updated = append(updated, recentIDs...)
	for _, q := range picked {
		updated = append(updated, q.ID)
	}
	if len(updated) > HistorySize {
		updated = updated[len(updated)-HistorySize:]
	}

	return picked, updated, nil
}

// Filter keeps the questions matching both filters. Filters are
// case-normalized before matching; an empty filter matches everything.
func Filter(questions []question.Question, categoryFilter, kindFilter string) []question.Question {
	category := Normalize(categoryFilter)
	kind := Normalize(kindFilter)

	out := make([]question.Question, 0, len(questions))
	for _, q := range questions {
		if category != "" && q.Category != category {
			continue
		}
		if kind != "" && q.Kind != kind {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Normalize prepares a filter value for exact matching against the
// lowercased fields of loaded questions.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func shuffled(questions []question.Question, rng *rand.Rand) []question.Question {
	out := make([]question.Question, len(questions))
	copy(out, questions)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
