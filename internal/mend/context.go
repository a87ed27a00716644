package mend

// context is a position in the JSON grammar currently being matched.
type context uint8

const (
	ctxTopLevel context = iota
	ctxString
	ctxStringEscaped
	ctxStringUnicode
	ctxNumber
	ctxNumberNeedsDigit
	ctxNumberNeedsExponent
	ctxTrue
	ctxFalse
	ctxNull
	ctxArrayNeedsValue
	ctxArrayNeedsComma
	ctxObjectNeedsKey
	ctxObjectNeedsColon
	ctxObjectNeedsValue
	ctxObjectNeedsComma
)

// frame is a stack entry: a context plus the byte offset where the token
// that opened it began. The offset is what makes literal and unicode-escape
// completion exact without searching backwards through the text.
type frame struct {
	ctx   context
	start int
}
