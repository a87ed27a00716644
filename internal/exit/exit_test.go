package exit

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestSuccess(t *testing.T) {
	message := "repair completed"
	result := Success(message)

	if result.ExitCode != 0 {
		t.Errorf("Success() ExitCode = %d, want 0", result.ExitCode)
	}

	if result.Message != message {
		t.Errorf("Success() Message = %q, want %q", result.Message, message)
	}

	if result.Output != os.Stdout {
		t.Error("Success() expected output to stdout")
	}
}

func TestError(t *testing.T) {
	message := "repair failed"
	result := Error(message)

	if result.ExitCode != 1 {
		t.Errorf("Error() ExitCode = %d, want 1", result.ExitCode)
	}

	if result.Message != message {
		t.Errorf("Error() Message = %q, want %q", result.Message, message)
	}

	if result.Output != os.Stderr {
		t.Error("Error() expected output to stderr")
	}
}

func TestErrorf(t *testing.T) {
	result := Errorf("file %s: %d bytes", "broken.json", 42)

	want := "file broken.json: 42 bytes"
	if result.Message != want {
		t.Errorf("Errorf() Message = %q, want %q", result.Message, want)
	}

	if result.ExitCode != 1 {
		t.Errorf("Errorf() ExitCode = %d, want 1", result.ExitCode)
	}
}

func TestUsageError(t *testing.T) {
	usage := "jsonmend - repair truncated JSON files"
	result := UsageError(errors.New("no input file specified"), usage)

	if result.ExitCode != 1 {
		t.Errorf("UsageError() ExitCode = %d, want 1", result.ExitCode)
	}

	if !strings.HasPrefix(result.Message, "Error: no input file specified") {
		t.Errorf("UsageError() Message = %q, want error prefix", result.Message)
	}

	if !strings.HasSuffix(result.Message, usage) {
		t.Errorf("UsageError() Message = %q, want usage suffix", result.Message)
	}

	if result.Output != os.Stderr {
		t.Error("UsageError() expected output to stderr")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{
		Output:   &buf,
		ExitCode: 0,
		Message:  "hello",
	}

	result.Print()

	if buf.String() != "hello" {
		t.Errorf("Print() wrote %q, want %q", buf.String(), "hello")
	}
}
