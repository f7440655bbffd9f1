// Package style defines the classifications the scanner assigns to spans
// of NSIS source text, and the small per-line records both passes persist
// through the host between invocations.
package style

// Class represents the semantic classification of a span of source bytes.
type Class uint8

const (
	// Default is the classification for anything not otherwise recognized.
	Default Class = iota

	// CommentLine is a `;` or `#` comment running to end of line.
	CommentLine

	// BlockComment is a `/* ... */` comment, possibly spanning lines.
	BlockComment

	// Number is a numeric literal, optionally with a trailing `%`.
	Number

	// StringSingle, StringDouble and StringBacktick are string literals
	// delimited by `'`, `"` and a backtick respectively.
	StringSingle
	StringDouble
	StringBacktick

	// EscapeChar is a `$$` or `$\x` escape inside a string literal.
	EscapeChar

	// Variable is a bare `$name` reference; VariableBraced and
	// VariableParen are the `${name}` and `$(name)` delimited forms.
	Variable
	VariableBraced
	VariableParen

	// Identifier is transient: it tags an identifier span while the
	// scanner is still consuming it and is always rewritten before the
	// span is emitted. No stored style byte ever holds Identifier.
	Identifier

	// Word is an identifier found in the keyword table.
	Word

	// Instruction is a first-on-line identifier that is neither a keyword
	// nor a label.
	Instruction

	// Label is a first-on-line identifier immediately followed by `:`.
	Label

	// Preprocessor is a line-leading `!directive`.
	Preprocessor

	// Operator is a single operator byte.
	Operator
)

// String returns a human-readable name for the classification.
func (c Class) String() string {
	switch c {
	case Default:
		return "default"
	case CommentLine:
		return "comment-line"
	case BlockComment:
		return "block-comment"
	case Number:
		return "number"
	case StringSingle:
		return "string-single"
	case StringDouble:
		return "string-double"
	case StringBacktick:
		return "string-backtick"
	case EscapeChar:
		return "escape"
	case Variable:
		return "variable"
	case VariableBraced:
		return "variable-braced"
	case VariableParen:
		return "variable-paren"
	case Identifier:
		return "identifier"
	case Word:
		return "word"
	case Instruction:
		return "instruction"
	case Label:
		return "label"
	case Preprocessor:
		return "preprocessor"
	case Operator:
		return "operator"
	default:
		return "unknown"
	}
}

// LineType is the coarse per-line category used for fold grouping and
// preprocessor line continuation. It is set only when the line's first
// visible token triggers it.
type LineType uint8

const (
	LineNone LineType = iota
	LineComment
	LineInclude
	LineDefine
)

// String returns a human-readable name for the line type.
func (t LineType) String() string {
	switch t {
	case LineNone:
		return "none"
	case LineComment:
		return "comment"
	case LineInclude:
		return "include"
	case LineDefine:
		return "define"
	default:
		return "unknown"
	}
}

// LineState is the carry-over record the scanner persists per line. Type
// and Continuation are independent: a continued line propagates its
// predecessor's type forward even though its own first token never
// re-triggers the classification.
type LineState struct {
	Type         LineType
	Continuation bool
}

const (
	lineTypeMask     = 0x7
	continuationMask = 1 << 4
)

// Pack encodes the state into the single integer word hosts persist per
// line: the line type occupies the low bits and the continuation flag
// bit 4.
func (s LineState) Pack() uint32 {
	w := uint32(s.Type) & lineTypeMask
	if s.Continuation {
		w |= continuationMask
	}
	return w
}

// UnpackLineState decodes a word produced by Pack.
func UnpackLineState(w uint32) LineState {
	return LineState{
		Type:         LineType(w & lineTypeMask),
		Continuation: w&continuationMask != 0,
	}
}

// FoldLevel is the per-line fold record: the nesting level in effect
// before the line and the level after applying every delta the line
// contributes. The After value of one line is the Before value of the
// next.
type FoldLevel struct {
	Before int
	After  int
}

// Header reports whether the line opens a foldable block.
func (l FoldLevel) Header() bool {
	return l.Before < l.After
}

const foldHeaderFlag = 1 << 15

// Pack encodes the record into a single word: Before in the low 15 bits,
// the header flag at bit 15 and After shifted into the high half. Levels
// outside [0, 1<<15) do not round-trip; hosts that allow deep negative
// excursions should persist the struct directly.
func (l FoldLevel) Pack() uint32 {
	w := uint32(l.Before)&0x7fff | uint32(l.After)<<16
	if l.Header() {
		w |= foldHeaderFlag
	}
	return w
}

// UnpackFoldLevel decodes a word produced by Pack.
func UnpackFoldLevel(w uint32) FoldLevel {
	return FoldLevel{
		Before: int(w & 0x7fff),
		After:  int(w >> 16),
	}
}
