// Package runner executes repair jobs: read, repair, verify, write,
// report.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jacoelho/jsonmend/internal/config"
	"github.com/jacoelho/jsonmend/internal/manifest"
	"github.com/jacoelho/jsonmend/internal/mend"
	"github.com/jacoelho/jsonmend/internal/ratelimit"
	"github.com/jacoelho/jsonmend/internal/report"
	"github.com/jacoelho/jsonmend/internal/verify"
)

var errOutputExists = errors.New("output file already exists (use -overwrite)")

// Runner executes the configured repair jobs sequentially.
type Runner struct {
	cfg     *config.Config
	limiter *ratelimit.Limiter
	out     io.Writer
	errOut  io.Writer
}

func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:     cfg,
		limiter: ratelimit.New(cfg.RateLimit),
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Run processes all jobs and returns the process exit code: 0 when every
// file repaired cleanly, 1 otherwise.
func (r *Runner) Run(ctx context.Context) int {
	jobs, err := r.jobs()
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return 1
	}

	run := report.NewRun()

	for _, job := range jobs {
		if err := r.limiter.Wait(ctx); err != nil {
			fmt.Fprintf(r.errOut, "Error: run cancelled: %v\n", err)
			return 1
		}

		result := r.repairFile(job)
		run.Add(result)
		r.printResult(result)
	}

	run.Finish()

	if r.cfg.ReportFile != "" {
		if err := run.Write(r.cfg.ReportFile); err != nil {
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
			return 1
		}
	}

	if run.HasFailures() {
		return 1
	}
	return 0
}

// jobs resolves the job list: a single -file job or the manifest contents.
// Command-line checks apply to every job on top of its own.
func (r *Runner) jobs() ([]manifest.Job, error) {
	if r.cfg.ManifestFile == "" {
		return []manifest.Job{{
			Input:  r.cfg.InputFile,
			Output: r.cfg.OutputFile,
			Checks: r.cfg.Checks,
		}}, nil
	}

	jobs, err := manifest.Load(r.cfg.ManifestFile)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		jobs[i].Checks = append(jobs[i].Checks, r.cfg.Checks...)
	}

	return jobs, nil
}

func (r *Runner) repairFile(job manifest.Job) report.FileResult {
	result := report.FileResult{Input: job.Input}

	data, err := os.ReadFile(job.Input)
	if err != nil {
		result.Error = fmt.Sprintf("read input: %v", err)
		return result
	}

	repaired := mend.Mend(string(data))

	result.BytesIn = len(data)
	result.BytesOut = len(repaired.Output)
	result.Truncated = repaired.Truncated
	result.Appended = repaired.Appended

	if r.cfg.Verify {
		if err := verify.Output([]byte(repaired.Output)); err != nil {
			result.Error = err.Error()
			return result
		}
		result.Verified = true
	}

	for _, path := range job.Checks {
		check := report.CheckResult{Path: path}
		switch _, err := verify.Probe([]byte(repaired.Output), path); {
		case err == nil:
			check.Found = true
		case errors.Is(err, verify.ErrNotFound):
			// Found stays false.
		default:
			check.Error = err.Error()
		}
		result.Checks = append(result.Checks, check)
	}

	output := job.Output
	if output == "" {
		output = config.DefaultOutputName(job.Input)
	}

	if err := writeOutput(output, []byte(repaired.Output), r.cfg.Overwrite); err != nil {
		result.Error = err.Error()
		return result
	}

	result.Output = output
	return result
}

func (r *Runner) printResult(result report.FileResult) {
	if result.Error != "" {
		fmt.Fprintf(r.out, "failed   %s: %s\n", result.Input, result.Error)
		return
	}

	status := "repaired"
	if !result.Truncated && result.Appended == "" {
		status = "ok      "
	}

	fmt.Fprintf(r.out, "%s %s -> %s (%d -> %d bytes)\n",
		status, result.Input, result.Output, result.BytesIn, result.BytesOut)

	for _, check := range result.Checks {
		switch {
		case check.Found:
			fmt.Fprintf(r.out, "  check %s: found\n", check.Path)
		case check.Error != "":
			fmt.Fprintf(r.out, "  check %s: %s\n", check.Path, check.Error)
		default:
			fmt.Fprintf(r.out, "  check %s: not found\n", check.Path)
		}
	}
}

func writeOutput(path string, payload []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errOutputExists
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat output file: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
