package mend

import (
	"github.com/jacoelho/jsonmend/internal/stack"
)

// scanner walks the input one byte at a time, maintaining the context
// stack and the pending checkpoint. All JSON structural characters are
// ASCII, so multi-byte UTF-8 sequences inside strings fall through the
// default cases untouched and positions stay byte offsets.
type scanner struct {
	input string
	pos   int
	stack *stack.Stack[frame]
	mark  checkpoint
}

func newScanner(input string) *scanner {
	s := &scanner{
		input: input,
		stack: stack.NewWithCapacity[frame](8),
	}
	// Sentinel: accepts the single top-level value and absorbs trailing
	// characters. It is never popped.
	s.stack.Push(frame{ctx: ctxTopLevel})
	return s
}

func (s *scanner) run() {
	for s.pos = 0; s.pos < len(s.input); s.pos++ {
		s.step(s.input[s.pos])
	}
}

func (s *scanner) push(c context) {
	s.stack.Push(frame{ctx: c, start: s.pos})
}

// replace swaps the top context in place, keeping the token start: the
// same syntactic slot continues in a new sub-state.
func (s *scanner) replace(c context) {
	s.stack.PeekRef().ctx = c
}

func (s *scanner) pop() {
	s.stack.Pop()
}

// redo re-offers the current byte to whatever context is now on top. A pop
// always changes the top context and the top level never pops, so this
// cannot loop.
func (s *scanner) redo() {
	s.pos--
}

func (s *scanner) step(c byte) {
	top := s.stack.PeekRef()

	switch top.ctx {
	case ctxTopLevel:
		s.startAny(c)

	case ctxString:
		switch c {
		case '"':
			s.pop()
		case '\\':
			// Only safe if the rest of the escape arrives.
			s.mark.set(s.pos, s.stack.Size(), reasonStringEscape)
			s.push(ctxStringEscaped)
		}

	case ctxStringEscaped:
		if c == 'u' {
			top.ctx = ctxStringUnicode
			top.start = s.pos
		} else {
			s.mark.clear(reasonStringEscape)
			s.pop()
		}

	case ctxStringUnicode:
		// Four hex digits follow the 'u' recorded in start.
		if s.pos-top.start == 4 {
			s.mark.clear(reasonStringEscape)
			s.pop()
		}

	case ctxNumber:
		switch {
		case c == '.':
			s.replace(ctxNumberNeedsDigit)
		case c == 'e' || c == 'E':
			s.replace(ctxNumberNeedsExponent)
		case !isDigit(c):
			s.redo()
			s.pop()
		}

	case ctxNumberNeedsDigit:
		s.replace(ctxNumber)

	case ctxNumberNeedsExponent:
		if c == '+' || c == '-' {
			s.replace(ctxNumberNeedsDigit)
		} else {
			s.replace(ctxNumber)
		}

	case ctxTrue, ctxFalse, ctxNull:
		if c < 'a' || c > 'z' {
			s.redo()
			s.pop()
		}

	case ctxArrayNeedsValue:
		switch {
		case c == ']':
			s.pop()
		case !isWhitespace(c):
			s.mark.clear(reasonCollectionItem)
			s.replace(ctxArrayNeedsComma)
			s.startAny(c)
		}

	case ctxArrayNeedsComma:
		switch c {
		case ']':
			s.pop()
		case ',':
			// A trailing comma with no following item must be dropped.
			s.mark.set(s.pos, s.stack.Size(), reasonCollectionItem)
			s.replace(ctxArrayNeedsValue)
		}

	case ctxObjectNeedsKey:
		switch c {
		case '}':
			s.pop()
		case '"':
			// A key with no following value must be dropped.
			s.mark.set(s.pos, s.stack.Size(), reasonCollectionItem)
			s.replace(ctxObjectNeedsColon)
			s.push(ctxString)
		}

	case ctxObjectNeedsColon:
		if c == ':' {
			s.replace(ctxObjectNeedsValue)
		}

	case ctxObjectNeedsValue:
		if !isWhitespace(c) {
			s.mark.clear(reasonCollectionItem)
			s.replace(ctxObjectNeedsComma)
			s.startAny(c)
		}

	case ctxObjectNeedsComma:
		switch c {
		case '}':
			s.pop()
		case ',':
			s.mark.set(s.pos, s.stack.Size(), reasonCollectionItem)
			s.replace(ctxObjectNeedsKey)
		}
	}
}

// startAny dispatches a value-start character. Unrecognized characters are
// ignored; malformed input is tolerated, not repaired.
func (s *scanner) startAny(c byte) {
	switch {
	case isDigit(c):
		s.push(ctxNumber)
	case c == '"':
		s.push(ctxString)
	case c == '-':
		s.push(ctxNumberNeedsDigit)
	case c == 't':
		s.push(ctxTrue)
	case c == 'f':
		s.push(ctxFalse)
	case c == 'n':
		s.push(ctxNull)
	case c == '[':
		s.push(ctxArrayNeedsValue)
	case c == '{':
		s.push(ctxObjectNeedsKey)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace recognizes exactly the four JSON whitespace characters.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}
