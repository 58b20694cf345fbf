package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/quizgen/quizgen/internal/domain/session"
)

// BarWidth is the cell count of the progress bars in the evolution section.
const BarWidth = 20

// CategoryAverage is the average percent across sessions sharing one
// category filter. Sessions run without a filter bucket under "all".
type CategoryAverage struct {
	Category string
	Average  float64
	Count    int
}

// RecentEntry is one of the last sessions, with its running index across the
// user's whole history and a proportional bar.
type RecentEntry struct {
	Index   int
	Percent float64
	Bar     string
}

// UserReport summarizes one user's persisted sessions.
type UserReport struct {
	User       string
	Count      int
	Average    float64
	Min        float64
	Max        float64
	Categories []CategoryAverage // first-appearance order
	Recent     []RecentEntry     // chronologically last 5
	Trend      float64           // average minus first session's percent
}

// UserSummary is one row of the cross-user report.
type UserSummary struct {
	User    string // casing of the first-seen record
	Count   int
	Average float64
	Max     float64
	Min     float64
}

// Sessions returns the given user's sessions in chronological order,
// optionally narrowed to one exact ISO date. User matching ignores case.
func Sessions(results []session.Result, user, dateFilter string) []session.Result {
	rows := make([]session.Result, 0, len(results))
	for _, r := range results {
		if !strings.EqualFold(r.User, user) {
			continue
		}
		if dateFilter != "" && r.Date != dateFilter {
			continue
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
	return rows
}

// ForUser computes a user's report. ok is false when no sessions match.
func ForUser(results []session.Result, user, dateFilter string) (UserReport, bool) {
	rows := Sessions(results, user, dateFilter)
	if len(rows) == 0 {
		return UserReport{}, false
	}

	report := UserReport{
		User:  user,
		Count: len(rows),
		Min:   rows[0].Percent,
		Max:   rows[0].Percent,
	}

	sum := 0.0
	for _, r := range rows {
		sum += r.Percent
		report.Min = math.Min(report.Min, r.Percent)
		report.Max = math.Max(report.Max, r.Percent)
	}
	report.Average = sum / float64(len(rows))

	report.Categories = categoryAverages(rows)
	report.Recent = recentEntries(rows)
	report.Trend = report.Average - rows[0].Percent

	return report, true
}

// Improved reports whether a trend value reads as an improvement. A flat
// trend counts as improvement, not decline.
func Improved(trend float64) bool {
	return trend >= 0
}

// AllUsers groups every session by user, ignoring case, and summarizes each
// user sorted by display name ascending.
func AllUsers(results []session.Result) []UserSummary {
	byUser := make(map[string][]session.Result)
	display := make(map[string]string)
	for _, r := range results {
		if r.User == "" {
			continue
		}
		key := strings.ToLower(r.User)
		if _, ok := display[key]; !ok {
			display[key] = r.User
		}
		byUser[key] = append(byUser[key], r)
	}

	summaries := make([]UserSummary, 0, len(byUser))
	for key, rows := range byUser {
		s := UserSummary{
			User:  display[key],
			Count: len(rows),
			Min:   rows[0].Percent,
			Max:   rows[0].Percent,
		}
		sum := 0.0
		for _, r := range rows {
			sum += r.Percent
			s.Min = math.Min(s.Min, r.Percent)
			s.Max = math.Max(s.Max, r.Percent)
		}
		s.Average = sum / float64(len(rows))
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].User < summaries[j].User
	})
	return summaries
}

// Bar renders a proportional progress bar of BarWidth cells.
func Bar(percent float64) string {
	filled := int(math.Round(percent / 100 * BarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > BarWidth {
		filled = BarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", BarWidth-filled)
}

func categoryAverages(rows []session.Result) []CategoryAverage {
	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range rows {
		cat := r.CategoryFilter
		if cat == "" {
			cat = "all"
		}
		if counts[cat] == 0 {
			order = append(order, cat)
		}
		sums[cat] += r.Percent
		counts[cat]++
	}

	out := make([]CategoryAverage, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryAverage{
			Category: cat,
			Average:  sums[cat] / float64(counts[cat]),
			Count:    counts[cat],
		})
	}
	return out
}

func recentEntries(rows []session.Result) []RecentEntry {
	last := rows
	if len(last) > 5 {
		last = last[len(last)-5:]
	}

	start := len(rows) - 4
	if start < 1 {
		start = 1
	}

	out := make([]RecentEntry, 0, len(last))
	for i, r := range last {
		out = append(out, RecentEntry{
			Index:   start + i,
			Percent: r.Percent,
			Bar:     Bar(r.Percent),
		})
	}
	return out
}
