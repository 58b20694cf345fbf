package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/quizgen/quizgen/internal/domain/question"
	"github.com/quizgen/quizgen/internal/domain/session"
)

const progressFileName = "progress.json"

// FileQuestions backs QuestionSource with a single JSON question file.
type FileQuestions struct {
	Path string
}

func (f FileQuestions) Load() ([]question.Question, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading question file: %w", err)
	}

	var records []question.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing question file %s: %w", f.Path, err)
	}
	return question.FromRecords(records), nil
}

func (f FileQuestions) Append(q question.Question) error {
	var records []question.Record
	if data, err := os.ReadFile(f.Path); err == nil {
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("parsing question file %s: %w", f.Path, err)
		}
	}

	records = append(records, q.ToRecord())

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding question file: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing question file: %w", err)
	}
	return nil
}

// FileProgress backs ProgressStore with a progress.json record inside the
// results directory.
type FileProgress struct {
	Dir string
}

type progressRecord struct {
	RecentIDs []string `json:"recent_ids"`
}

func (f FileProgress) Load() []string {
	data, err := os.ReadFile(filepath.Join(f.Dir, progressFileName))
	if err != nil {
		return nil
	}

	var rec progressRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt history resets to empty rather than blocking a run.
		return nil
	}
	return rec.RecentIDs
}

func (f FileProgress) Save(recentIDs []string) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(progressRecord{RecentIDs: recentIDs}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding progress record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(f.Dir, progressFileName), data, 0o644); err != nil {
		return fmt.Errorf("writing progress record: %w", err)
	}
	return nil
}

// FileResults backs ResultStore with one JSON record per session inside a
// results directory. File names start with a timestamp, so lexicographic
// order is also chronological.
type FileResults struct {
	Dir string

	// Now is overridable for deterministic record names in tests.
	Now func() time.Time
}

func (f FileResults) Save(res session.Result) (string, error) {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	name := fmt.Sprintf("results_%s_%s.json", now().Format("20060102_150405"), res.User)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding session result: %w", err)
	}
	if err := os.WriteFile(filepath.Join(f.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing session result: %w", err)
	}
	return name, nil
}

func (f FileResults) LoadAll() ([]session.Result, error) {
	names, err := filepath.Glob(filepath.Join(f.Dir, "results_*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	sort.Strings(names)

	var results []session.Result
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			continue
		}
		var res session.Result
		if err := json.Unmarshal(data, &res); err != nil {
			// One bad record never sinks the whole batch.
			continue
		}
		results = append(results, res)
	}
	return results, nil
}
