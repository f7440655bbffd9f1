package scanner

// Byte predicates driving the state machine. NSIS directives are ASCII;
// high bytes are never identifier or operator characters and fall through
// to the default classification.

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch byte) bool {
	return isAlpha(ch) || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// isNumberStart accepts a digit or a leading dot with a digit after it.
func isNumberStart(ch, next byte) bool {
	return isDigit(ch) || (ch == '.' && isDigit(next))
}

// isDecimalPart extends a number span: identifier characters (covers hex
// digits and unit suffixes), a non-doubled dot, and an exponent sign.
func isDecimalPart(prev, ch, next byte) bool {
	return isIdentChar(ch) ||
		(ch == '.' && next != '.') ||
		((ch == '+' || ch == '-') && (prev == 'e' || prev == 'E'))
}

// isEscapeTarget reports whether ch can follow `$\` in a string escape.
func isEscapeTarget(ch byte) bool {
	switch ch {
	case '\'', '"', '`', 'n', 'r', 't':
		return true
	}
	return false
}

func isOperator(ch byte) bool {
	switch ch {
	case '!', '%', '&', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^',
		'{', '|', '}', '~':
		return true
	}
	return false
}
