package session

import "math"

// Session modes.
const (
	ModePractice = "practice"
	ModeExam     = "exam"
)

// Feedback modes.
const (
	FeedbackImmediate = "immediate"
	FeedbackFinal     = "final"
)

// AnswerRecord captures the outcome of one graded question. It is created by
// the grader and never mutated afterwards.
type AnswerRecord struct {
	QuestionID    string  `json:"qid"`
	Category      string  `json:"category"`
	Kind          string  `json:"qtype"`
	Question      string  `json:"question"`
	YourAnswer    string  `json:"your_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
	TimedOut      bool    `json:"timed_out"`
	TimeSec       float64 `json:"time_sec"`
	Explanation   string  `json:"explanation"`
}

// Result is one completed session, persisted immutably as a single record.
type Result struct {
	User           string         `json:"user"`
	Date           string         `json:"date"` // ISO yyyy-mm-dd
	Mode           string         `json:"mode"`
	Feedback       string         `json:"feedback"`
	CategoryFilter string         `json:"category_filter"`
	KindFilter     string         `json:"type_filter"`
	TimedSeconds   int            `json:"timed_seconds"`
	PointsCorrect  int            `json:"points_correct"`
	PenaltyWrong   int            `json:"penalty_wrong"`
	NumQuestions   int            `json:"num_questions"`
	Correct        int            `json:"correct"`
	Wrong          int            `json:"wrong"`
	Score          int            `json:"score"`
	MaxScore       int            `json:"max_score"`
	Percent        float64        `json:"percent"`
	TotalTimeSec   float64        `json:"total_time_sec"`
	AvgTimeSec     float64        `json:"avg_time_sec"`
	Answers        []AnswerRecord `json:"answers"`
}

// RawPercent recomputes the percentage from the integer counters, without
// the two-decimal rounding applied to the stored Percent. Grade derivation
// uses this value.
func (r Result) RawPercent() float64 {
	if r.MaxScore > 0 {
		return float64(r.Score) / float64(r.MaxScore) * 100
	}
	if r.NumQuestions == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.NumQuestions) * 100
}

// round2 rounds to two decimal places for storage and display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
