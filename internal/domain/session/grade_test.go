package session_test

import (
	"testing"

	"github.com/quizgen/quizgen/internal/domain/session"
)

func TestGradeFromPercent_Boundaries(t *testing.T) {
	// Every x5 boundary under round-half-away-from-zero.
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 1},
		{5, 1},  // 0.5 rounds to 1
		{15, 2}, // 1.5 rounds to 2
		{25, 3},
		{35, 4},
		{45, 5},
		{55, 6},
		{65, 7},
		{75, 8},
		{85, 9},
		{95, 10},
		{100, 10},
	}

	for _, tt := range tests {
		if got := session.GradeFromPercent(tt.percent); got != tt.want {
			t.Errorf("GradeFromPercent(%v) = %d, expected %d", tt.percent, got, tt.want)
		}
	}
}

func TestGradeFromPercent_MonotonicAndBounded(t *testing.T) {
	prev := 0
	for p := 0; p <= 100; p++ {
		g := session.GradeFromPercent(float64(p))
		if g < 1 || g > 10 {
			t.Fatalf("GradeFromPercent(%d) = %d, outside [1,10]", p, g)
		}
		if g < prev {
			t.Fatalf("grade decreased from %d to %d at %d%%", prev, g, p)
		}
		prev = g
	}
}

func TestPassed(t *testing.T) {
	if session.Passed(4) {
		t.Error("grade 4 should fail")
	}
	if !session.Passed(5) {
		t.Error("grade 5 should pass")
	}
}
