package session

import (
	"math/rand"

	"github.com/quizgen/quizgen/internal/domain/question"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letter returns the display letter for an option position.
func Letter(i int) string {
	return string(letters[i])
}

// ShuffleOptions returns a copy of q with its options in uniformly random
// order, plus a map from each displayed letter to the canonical letter of
// the option carrying the same text. Duplicate option texts resolve to the
// first canonical slot with that text; which duplicate "wins" is therefore
// undefined beyond first-match order. Non-multiple questions come back
// unchanged with a nil map.
func ShuffleOptions(q question.Question, rng *rand.Rand) (question.Question, map[string]string) {
	if q.Kind != question.KindMultiple || len(q.Options) == 0 {
		return q, nil
	}

	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})

	mapping := make(map[string]string, len(opts))
	for i, text := range opts {
		for j, canonical := range q.Options {
			if canonical == text {
				mapping[Letter(i)] = Letter(j)
				break
			}
		}
	}

	q.Options = opts
	return q, mapping
}
