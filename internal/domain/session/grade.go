package session

import "math"

// GradeFromPercent maps a percentage onto the 1..10 grade scale. Rounding is
// half away from zero, so 45% already rounds up to a 5.
func GradeFromPercent(percent float64) int {
	grade := int(math.Round(percent / 10))
	if grade < 1 {
		grade = 1
	}
	if grade > 10 {
		grade = 10
	}
	return grade
}

// Passed reports whether a grade clears the passing bar.
func Passed(grade int) bool {
	return grade >= 5
}
