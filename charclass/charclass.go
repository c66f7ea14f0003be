// Package charclass implements the dense character classification tables
// shared by the PGN and JSON tokenizers: whitespace/newline/digit/letter
// classes, the punctuator set, and the must-escape bitmap used when a
// string literal's raw bytes must be rendered escaped.
package charclass

// lineSeparator and paragraphSeparator are the two Unicode separators that
// must be escaped in string literals even though they fall outside the
// dense 0x00-0x9F table.
const (
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

// mustEscape is a dense lookup table over code units 0x00..0x9F. A byte is
// must-escape if it is a control character outside TAB/LF/CR, DEL, or in
// the 0x80-0x9F C1 control range, or one of the characters that always
// require escaping inside a quoted string ('"' and '\').
var mustEscape [0xA0]bool

func init() {
	for i := 0; i < 0x20; i++ {
		mustEscape[i] = true
	}
	mustEscape['\t'] = false
	mustEscape['\n'] = false
	mustEscape['\r'] = false
	mustEscape[0x7F] = true // DEL
	for i := 0x80; i < 0xA0; i++ {
		mustEscape[i] = true
	}
	mustEscape['"'] = true
	mustEscape['\\'] = true
}

// MustEscape reports whether r must be rendered escaped inside a quoted
// string literal.
func MustEscape(r rune) bool {
	if r >= 0 && int(r) < len(mustEscape) {
		return mustEscape[r]
	}
	return r == lineSeparator || r == paragraphSeparator
}

// IsPgnWhitespace reports whether b is PGN intra-line whitespace (space,
// tab, form-feed, vertical-tab). Newlines are classified separately.
func IsPgnWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v'
}

// IsNewlineStart reports whether b can begin a line terminator (LF or CR;
// CRLF is merged into a single EndOfLine trivium by the caller).
func IsNewlineStart(b byte) bool {
	return b == '\n' || b == '\r'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsLetter reports whether b is an ASCII letter or underscore.
func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// IsSymbolStart reports whether b may begin a PGN symbol token (a letter,
// underscore, or digit).
func IsSymbolStart(b byte) bool {
	return IsLetter(b) || IsDigit(b)
}

// IsSymbolContinue reports whether b may continue a PGN symbol token once
// started: letters, digits, and the SAN/tag punctuation +#=:-.
func IsSymbolContinue(b byte) bool {
	if IsLetter(b) || IsDigit(b) {
		return true
	}
	switch b {
	case '+', '#', '=', ':', '-':
		return true
	}
	return false
}

// IsPunctuator reports whether b is one of the fixed single-character PGN
// punctuators.
func IsPunctuator(b byte) bool {
	switch b {
	case '[', ']', '(', ')', '{', '}', '"', '$', '.', '*':
		return true
	}
	return false
}
