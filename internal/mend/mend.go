// Package mend repairs syntactically incomplete JSON text, typically the
// tail of a stream cut off mid-token, into the smallest valid document
// consistent with everything unambiguously written so far.
//
// The repair is a single forward pass: a scanner tracks nested syntactic
// contexts on a stack and records at most one checkpoint when it enters a
// state that is only safe if more input follows (a half-written escape, a
// trailing comma, a key with no value). When input ends, the output is cut
// back to the checkpoint and every still-open context is closed
// innermost-first.
//
// Repair is total: any input produces output, already valid JSON passes
// through unchanged, and malformed-but-complete input is tolerated rather
// than rejected. Calls share no state and are safe to run concurrently.
package mend

// Result describes a single repair.
type Result struct {
	// Output is the repaired document.
	Output string
	// Truncated reports whether the tail of the input was rolled back to a
	// checkpoint before closing.
	Truncated bool
	// Appended is the closing text synthesized at the end of the output.
	Appended string
	// Depth is the number of contexts still open when input ended, after
	// any rollback, excluding the top-level sentinel.
	Depth int
}

// Repair returns the smallest syntactically valid completion of input.
// It is shorthand for Mend(input).Output.
func Repair(input string) string {
	return Mend(input).Output
}

// Mend repairs input and reports what was done.
func Mend(input string) Result {
	s := newScanner(input)
	s.run()

	truncated := s.mark.pending()
	output, kept := complete(s)

	return Result{
		Output:    output,
		Truncated: truncated,
		Appended:  output[kept:],
		Depth:     s.stack.Size() - 1,
	}
}
