// Package report aggregates per-file repair outcomes into a YAML run
// report.
package report

import (
	"fmt"
	"os"
	"time"

	yaml "github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// CheckResult is the outcome of one JSONPath probe against repaired output.
type CheckResult struct {
	Path  string `yaml:"path"`
	Found bool   `yaml:"found"`
	Error string `yaml:"error,omitempty"`
}

// FileResult is the per-file repair outcome.
type FileResult struct {
	Input     string        `yaml:"input"`
	Output    string        `yaml:"output,omitempty"`
	BytesIn   int           `yaml:"bytes_in"`
	BytesOut  int           `yaml:"bytes_out"`
	Truncated bool          `yaml:"truncated"`
	Appended  string        `yaml:"appended,omitempty"`
	Verified  bool          `yaml:"verified,omitempty"`
	Checks    []CheckResult `yaml:"checks,omitempty"`
	Error     string        `yaml:"error,omitempty"`
}

// Failed reports whether the file repair failed outright or any of its
// checks did not pass.
func (f FileResult) Failed() bool {
	if f.Error != "" {
		return true
	}
	for _, check := range f.Checks {
		if !check.Found {
			return true
		}
	}
	return false
}

// Run aggregates outcomes across a full repair run.
type Run struct {
	ID        string       `yaml:"id"`
	StartedAt time.Time    `yaml:"started_at"`
	Duration  string       `yaml:"duration,omitempty"`
	Total     int          `yaml:"total"`
	Failed    int          `yaml:"failed"`
	Files     []FileResult `yaml:"files,omitempty"`
}

// NewRun starts a report with a generated run ID.
func NewRun() *Run {
	return &Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// Add records a file outcome.
func (r *Run) Add(result FileResult) {
	r.Files = append(r.Files, result)
}

// Finish fixes the duration and summary counters.
func (r *Run) Finish() {
	r.Duration = time.Since(r.StartedAt).Round(time.Millisecond).String()
	r.Total = len(r.Files)
	r.Failed = 0
	for _, file := range r.Files {
		if file.Failed() {
			r.Failed++
		}
	}
}

// HasFailures reports whether any file in the run failed.
func (r *Run) HasFailures() bool {
	for _, file := range r.Files {
		if file.Failed() {
			return true
		}
	}
	return false
}

// Encode renders the run report as YAML.
func (r *Run) Encode() ([]byte, error) {
	payload, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return payload, nil
}

// Write encodes the report and writes it to path.
func (r *Run) Write(path string) error {
	payload, err := r.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
