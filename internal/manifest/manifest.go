// Package manifest parses YAML batch manifests listing repair jobs.
package manifest

import (
	"fmt"
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// ErrManifest is the sentinel error for all manifest-related failures.
// It allows error wrapping and consistent error checks using errors.Is().
var ErrManifest = fmt.Errorf("manifest error")

// Job is a single repair job: an input file, an optional output name, and
// optional JSONPath probes evaluated against the repaired output.
type Job struct {
	Input  string   `yaml:"input"`
	Output string   `yaml:"output,omitempty"`
	Checks []string `yaml:"checks,omitempty"`
}

// Parse decodes a YAML stream of repair jobs.
func Parse(r io.Reader) ([]Job, error) {
	decoder := yaml.NewDecoder(r)
	var jobs []Job

	if err := decoder.Decode(&jobs); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrManifest, err)
	}

	for i, job := range jobs {
		if job.Input == "" {
			return nil, fmt.Errorf("%w: job %d: missing input path", ErrManifest, i+1)
		}
	}

	return jobs, nil
}

// Load reads and parses a manifest file.
func Load(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}
	defer f.Close()

	return Parse(f)
}
