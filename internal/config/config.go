// Package config parses and validates command-line configuration for the
// jsonmend tool.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/jsonmend/internal/exit"
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoInput       = errors.New("no input file specified (use -file or -manifest)")
	ErrBothInputs    = errors.New("-file and -manifest are mutually exclusive")
	ErrOutputForMany = errors.New("-output cannot be combined with -manifest")
)

// Config represents the complete configuration for the jsonmend tool.
type Config struct {
	// Single-file mode
	InputFile  string
	OutputFile string // empty means DefaultOutputName(InputFile)

	// Batch mode
	ManifestFile string

	Overwrite  bool
	Verify     bool
	Checks     []string // JSONPath probes evaluated against repaired output
	ReportFile string
	RateLimit  float64 // files per second (0 = unlimited)
}

// DefaultOutputName returns the repaired-file name for an input path: the
// base name prefixed with "fixed", in the same directory.
func DefaultOutputName(input string) string {
	return filepath.Join(filepath.Dir(input), "fixed"+filepath.Base(input))
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.InputFile == "" && c.ManifestFile == "" {
		return ErrNoInput
	}

	if c.InputFile != "" && c.ManifestFile != "" {
		return ErrBothInputs
	}

	if c.ManifestFile != "" && c.OutputFile != "" {
		return ErrOutputForMany
	}

	if c.InputFile != "" {
		if _, err := os.Stat(c.InputFile); err != nil {
			return fmt.Errorf("input file %s not found: %w", c.InputFile, err)
		}
	}

	if c.ManifestFile != "" {
		if _, err := os.Stat(c.ManifestFile); err != nil {
			return fmt.Errorf("manifest file %s not found: %w", c.ManifestFile, err)
		}
	}

	return nil
}

// checksFlag implements flag.Value for parsing multiple -check flags.
type checksFlag []string

// String returns a string representation of the checks flag for flag.Value interface.
func (c *checksFlag) String() string {
	return strings.Join(*c, ",")
}

// Set stores a JSONPath probe for flag.Value interface.
func (c *checksFlag) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("check expression cannot be empty")
	}
	*c = append(*c, value)
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.UsageError(ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		inputFile    = fs.String("file", "", "JSON file to repair")
		outputFile   = fs.String("output", "", "Output file name (default: input name prefixed with fixed)")
		manifestFile = fs.String("manifest", "", "YAML manifest listing repair jobs")
		overwrite    = fs.Bool("overwrite", false, "Allow overwriting an existing output file")
		verify       = fs.Bool("verify", false, "Verify the repaired output parses as JSON")
		checks       checksFlag
		reportFile   = fs.String("report", "", "Write a YAML run report to this file")
		rateLimit    = fs.Float64("rate-limit", 0, "Rate limit in files per second (0 for unlimited)")
	)

	fs.Var(&checks, "check", "JSONPath that must select a value in the repaired output (can be used multiple times)")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.UsageError(fmt.Errorf("failed to parse arguments: %w", err), Usage())
	}

	config := &Config{
		InputFile:    *inputFile,
		OutputFile:   *outputFile,
		ManifestFile: *manifestFile,
		Overwrite:    *overwrite,
		Verify:       *verify,
		Checks:       checks,
		ReportFile:   *reportFile,
		RateLimit:    *rateLimit,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.UsageError(err, Usage())
	}

	return config, nil
}

// Usage returns the complete usage documentation for the jsonmend tool.
func Usage() string {
	return `jsonmend - repair truncated JSON files

Usage: jsonmend -file <file> [options]
       jsonmend -manifest <file> [options]

Options:
  -file FILE         JSON file to repair (writes fixed<name> next to it)
  -output FILE       Output file name (default: input name prefixed with fixed)
  -manifest FILE     YAML manifest listing repair jobs
  -overwrite         Allow overwriting an existing output file
  -verify            Verify the repaired output parses as JSON
  -check PATH        JSONPath that must select a value in the repaired output
                     (can be used multiple times)
  -report FILE       Write a YAML run report to this file
  -rate-limit N      Rate limit in files per second (0 for unlimited)
  -h, -help          Show this help message

Examples:
  jsonmend -file response.json                    # writes fixedresponse.json
  jsonmend -file response.json -output fixed.json
  jsonmend -file response.json -verify -check '$.choices[0].text'
  jsonmend -manifest jobs.yaml -report run.yaml -rate-limit 10`
}
