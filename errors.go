package pgn

import "github.com/maurice/pgn/charclass"

// ErrorKind enumerates the fixed taxonomy of PGN diagnostics (§7 of the
// specification this module implements). Every diagnostic is a recoverable
// record, never a Go error: parsing never aborts, it only appends here.
type ErrorKind uint8

const (
	// Lexical.
	ErrIllegalCharacter ErrorKind = iota
	ErrEmptyNag
	ErrOverflowNag
	ErrUnterminatedMultiLineComment
	ErrUnterminatedTagValue
	ErrIllegalControlCharacterInTagValue
	ErrUnrecognisedEscapeInTagValue

	// Structural.
	ErrMissingTagBracketClose
	ErrMissingTagName
	ErrMissingTagValue
	ErrOrphanParenthesisClose
	ErrMissingParenthesisClose
	ErrMisplacedToken
	ErrEmptyVariation
	ErrMissingMoveNumber
	ErrInvalidMoveIndication

	// Semantic-lite.
	ErrUnrecognisedMove
)

var errorKindNames = [...]string{
	ErrIllegalCharacter:                  "IllegalCharacter",
	ErrEmptyNag:                          "EmptyNag",
	ErrOverflowNag:                       "OverflowNag",
	ErrUnterminatedMultiLineComment:      "UnterminatedMultiLineComment",
	ErrUnterminatedTagValue:              "UnterminatedTagValue",
	ErrIllegalControlCharacterInTagValue: "IllegalControlCharacterInTagValue",
	ErrUnrecognisedEscapeInTagValue:      "UnrecognisedEscapeInTagValue",
	ErrMissingTagBracketClose:            "MissingTagBracketClose",
	ErrMissingTagName:                    "MissingTagName",
	ErrMissingTagValue:                   "MissingTagValue",
	ErrOrphanParenthesisClose:            "OrphanParenthesisClose",
	ErrMissingParenthesisClose:           "MissingParenthesisClose",
	ErrMisplacedToken:                    "MisplacedToken",
	ErrEmptyVariation:                    "EmptyVariation",
	ErrMissingMoveNumber:                 "MissingMoveNumber",
	ErrInvalidMoveIndication:             "InvalidMoveIndication",
	ErrUnrecognisedMove:                  "UnrecognisedMove",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "Unknown"
}

// ParamKind discriminates the typed payload carried by an error Param.
type ParamKind uint8

const (
	ParamChar ParamKind = iota
	ParamString
	ParamInt
)

// Param is one typed parameter attached to an ErrorInfo, carrying enough
// information for a downstream renderer to produce a localised message
// without re-reading the source.
type Param struct {
	Kind ParamKind
	Char rune
	Str  string
	Int  int
}

// CharParam builds a character parameter.
func CharParam(r rune) Param { return Param{Kind: ParamChar, Char: r} }

// StringParam builds a string parameter.
func StringParam(s string) Param { return Param{Kind: ParamString, Str: s} }

// IntParam builds an integer parameter.
func IntParam(n int) Param { return Param{Kind: ParamInt, Int: n} }

// ErrorInfo is one diagnostic: a kind, the span it applies to, and zero or
// more typed parameters. Errors are collected in document order and never
// unwind the parse (§7/§8: error locality and determinism).
type ErrorInfo struct {
	Kind   ErrorKind
	Start  int
	Length int
	Params []Param
}

// Display renders e from its kind and parameters alone (it does not read
// the source), following the localisation-agnostic display convention of
// §7: characters are quoted
// and escape-encoded if in the must-escape class, strings are quoted, and
// any parameter kind not recognised falls back to a generic form.
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
