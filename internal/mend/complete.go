package mend

import (
	"strings"
)

// complete synthesizes the closing text for the scanner's final state: cut
// the text and stack back to the pending checkpoint if there is one, then
// append closing characters innermost-context-first.
func complete(s *scanner) (string, int) {
	kept := len(s.input)
	if s.mark.pending() {
		kept = s.mark.pos
		s.stack.Truncate(s.mark.depth)
	}

	var b strings.Builder
	b.WriteString(s.input[:kept])

	frames := s.stack.Items()
	for i := len(frames) - 1; i >= 0; i-- {
		switch f := frames[i]; f.ctx {
		case ctxString:
			b.WriteByte('"')
		case ctxNumberNeedsDigit, ctxNumberNeedsExponent:
			// A bare "-" or trailing "."/"e" becomes a number ending in 0.
			b.WriteByte('0')
		case ctxTrue:
			b.WriteString(literalSuffix("true", f.start, kept))
		case ctxFalse:
			b.WriteString(literalSuffix("false", f.start, kept))
		case ctxNull:
			b.WriteString(literalSuffix("null", f.start, kept))
		case ctxArrayNeedsValue, ctxArrayNeedsComma:
			b.WriteByte(']')
		case ctxObjectNeedsKey, ctxObjectNeedsColon, ctxObjectNeedsValue, ctxObjectNeedsComma:
			b.WriteByte('}')
		}
		// ctxTopLevel is a sentinel and emits nothing. ctxNumber is already
		// a complete number. ctxStringEscaped/ctxStringUnicode only survive
		// under the checkpoint that removes them, so they need no closing
		// text of their own.
	}

	return b.String(), kept
}

// literalSuffix returns the unwritten tail of a literal whose token began
// at start and whose written prefix ends at end.
func literalSuffix(word string, start, end int) string {
	written := end - start
	if written < 0 {
		written = 0
	}
	if written >= len(word) {
		return ""
	}
	return word[written:]
}
