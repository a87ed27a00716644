// Package verify checks repaired JSON output: syntactic validity and
// optional JSONPath existence probes.
package verify

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

var (
	// ErrInvalidInput indicates invalid input parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrProbe indicates a probe could not be evaluated.
	ErrProbe = errors.New("probe failed")
	// ErrNotFound indicates the JSONPath selected nothing.
	ErrNotFound = errors.New("path not found")
)

// Output reports whether body parses as a JSON document.
func Output(body []byte) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: body is empty", ErrInvalidInput)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Errorf("output is not valid JSON: %w", err)
	}

	return nil
}

// Probe evaluates a JSONPath expression (e.g. "$.choices[0].text") against
// body and returns the first selected value.
func Probe(body []byte, pathExpr string) (any, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: body is empty", ErrInvalidInput)
	}

	if pathExpr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidInput)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrProbe, pathExpr, err)
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON data: %v", ErrProbe, err)
	}

	results := path.Select(data)

	if len(results) > 0 {
		return results[0], nil
	}

	return nil, ErrNotFound
}
