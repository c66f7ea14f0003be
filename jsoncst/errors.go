package jsoncst

import "github.com/maurice/pgn/charclass"

// ErrorKind enumerates the JSON configuration-dialect diagnostics (§7 of
// the specification this module implements). As with package pgn, these
// are recoverable records, never Go errors: ParseJSON never aborts, it
// only appends here and keeps going.
type ErrorKind uint8

const (
	ErrUnexpectedSymbol ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedBlockComment
	ErrIllegalCharacterInString
	ErrUnrecognisedEscape
	ErrInvalidUnicodeEscape
	ErrControlCharacterInString
	ErrInvalidIntegerOverflow
	ErrMultipleValues
	ErrDuplicatePropertyKey
	ErrExpectedPropertyKey
	ErrExpectedColon
	ErrExpectedValue
	ErrUnexpectedEof
)

var errorKindNames = [...]string{
	ErrUnexpectedSymbol:         "UnexpectedSymbol",
	ErrUnterminatedString:       "UnterminatedString",
	ErrUnterminatedBlockComment: "UnterminatedBlockComment",
	ErrIllegalCharacterInString: "IllegalCharacterInString",
	ErrUnrecognisedEscape:       "UnrecognisedEscape",
	ErrInvalidUnicodeEscape:     "InvalidUnicodeEscape",
	ErrControlCharacterInString: "ControlCharacterInString",
	ErrInvalidIntegerOverflow:   "InvalidIntegerOverflow",
	ErrMultipleValues:           "MultipleValues",
	ErrDuplicatePropertyKey:     "DuplicatePropertyKey",
	ErrExpectedPropertyKey:      "ExpectedPropertyKey",
	ErrExpectedColon:            "ExpectedColon",
	ErrExpectedValue:            "ExpectedValue",
	ErrUnexpectedEof:            "UnexpectedEof",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "Unknown"
}

// ParamKind discriminates the typed payload carried by an error Param, the
// same localisation-agnostic shape package pgn uses for its own errors.
type ParamKind uint8

const (
	ParamChar ParamKind = iota
	ParamString
	ParamInt
)

// Param is one typed parameter attached to an ErrorInfo.
type Param struct {
	Kind ParamKind
	Char rune
	Str  string
	Int  int
}

func CharParam(r rune) Param   { return Param{Kind: ParamChar, Char: r} }
func StringParam(s string) Param { return Param{Kind: ParamString, Str: s} }
func IntParam(n int) Param     { return Param{Kind: ParamInt, Int: n} }

// ErrorInfo is one diagnostic: a kind, the span it applies to, and zero or
// more typed parameters, collected in document order.
type ErrorInfo struct {
	Kind   ErrorKind
	Start  int
	Length int
	Params []Param
}

// Display renders e the same way ErrorInfo.Display does in package pgn.
func (e ErrorInfo) Display() string {
	var b []byte
	b = append(b, e.Kind.String()...)
	if len(e.Params) == 0 {
		return string(b)
	}
	b = append(b, ": "...)
	for i, p := range e.Params {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, displayParam(p)...)
	}
	return string(b)
}

func displayParam(p Param) string {
	switch p.Kind {
	case ParamChar:
		return displayChar(p.Char)
	case ParamString:
		return `"` + p.Str + `"`
	case ParamInt:
		return itoa(p.Int)
	default:
		return "?"
	}
}

func displayChar(r rune) string {
	if charclass.MustEscape(r) {
		return "'" + escapeRune(r) + "'"
	}
	return "'" + string(r) + "'"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func escapeRune(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	default:
		const hex = "0123456789abcdef"
		if r > 0xFF {
			out := []byte{'\\', 'u'}
			out = append(out, hex[(r>>12)&0xF], hex[(r>>8)&0xF], hex[(r>>4)&0xF], hex[r&0xF])
			return string(out)
		}
		out := []byte{'\\', 'x'}
		out = append(out, hex[(r>>4)&0xF], hex[r&0xF])
		return string(out)
	}
}
