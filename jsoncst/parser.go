package jsoncst

// parser builds a Value tree from the lexer's token stream. Like package
// pgn's parser, it never aborts: every deviation from the grammar is
// recorded as an ErrorInfo and a Missing value is synthesised so the
// caller always gets a complete (if partial) tree back.
type parser struct {
	lex  *lexer
	cur  token
	errs *[]ErrorInfo
}

func newParser(source string, errs *[]ErrorInfo) *parser {
	p := &parser{lex: newLexer(source, errs), errs: errs}
	p.cur = p.lex.next()
	return p
}

func (p *parser) advance() token {
	prev := p.cur
	p.cur = p.lex.next()
	return prev
}

func (p *parser) at(k tokenKind) bool { return p.cur.kind == k }

func (p *parser) addError(kind ErrorKind, start, length int, params ...Param) {
	*p.errs = append(*p.errs, ErrorInfo{Kind: kind, Start: start, Length: length, Params: params})
}

// parseDocument parses exactly one top-level value, then reports any
// trailing tokens as MultipleValues and discards them, per §4.3/§6
// ("trailing tokens after a complete value produce 'expected end of
// file' errors").
func (p *parser) parseDocument() *Value {
	v := p.parseValue()
	if !p.at(tokEOF) {
		start := p.cur.start
		for !p.at(tokEOF) {
			p.advance()
		}
		p.addError(ErrMultipleValues, start, p.cur.start-start)
	}
	return v
}

// parseValue parses one JSON value. On an unexpected token it records
// ExpectedValue (or UnexpectedEof at end of input) and returns a
// zero-length Missing value without consuming the bad token, so the
// caller's own recovery (map/list closing, or parseDocument's trailing
// scan) can still make progress over it.
func (p *parser) parseValue() *Value {
	switch p.cur.kind {
	case tokLBrace:
		return p.parseMap()
	case tokLBracket:
		return p.parseList()
	case tokTrue:
		tok := p.advance()
		return &Value{kind: KindBoolean, start: tok.start, length: tok.length, boolean: true}
	case tokFalse:
		tok := p.advance()
		return &Value{kind: KindBoolean, start: tok.start, length: tok.length, boolean: false}
	case tokNull:
		tok := p.advance()
		return &Value{kind: KindNull, start: tok.start, length: tok.length}
	case tokInteger:
		tok := p.advance()
		return &Value{kind: KindInteger, start: tok.start, length: tok.length, integer: tok.intVal}
	case tokString:
		tok := p.advance()
		return &Value{kind: KindString, start: tok.start, length: tok.length, str: tok.strVal}
	case tokEOF:
		p.addError(ErrUnexpectedEof, p.cur.start, 0)
		return &Value{kind: KindMissing, start: p.cur.start}
	default:
		p.addError(ErrExpectedValue, p.cur.start, p.cur.length)
		return &Value{kind: KindMissing, start: p.cur.start}
	}
}

// parseMap parses "{" (String ":" Value ("," String ":" Value)*)? "}",
// rejecting a trailing comma before "}" and keeping the first value for
// any repeated key (subsequent occurrences are reported, not merged).
func (p *parser) parseMap() *Value {
	open := p.advance() // "{"
	var entries []Entry
	seen := make(map[string]bool)

	if !p.at(tokRBrace) {
		for {
			entry, ok := p.parseMapEntry(seen)
			if ok {
				entries = append(entries, entry)
			}
			if !p.at(tokComma) {
				break
			}
			p.advance() // ","
			if p.at(tokRBrace) {
				// Trailing comma: not allowed. The comma already consumed
				// stands in for the missing key this "}" can't supply.
				p.addError(ErrExpectedPropertyKey, p.cur.start, 0)
				break
			}
		}
	}

	end := open.start + open.length
	if p.at(tokRBrace) {
		closeTok := p.advance()
		end = closeTok.end()
	} else {
		p.addError(ErrUnexpectedEof, p.cur.start, 0)
	}
	return &Value{kind: KindMap, start: open.start, length: end - open.start, entries: entries}
}

// parseMapEntry parses one "String : Value" pair. ok is false when the key
// itself is entirely absent (e.g. a stray "," or an immediate "}" reached
// via the caller's own loop guard) or repeats a key already seen (first
// wins), in which case no entry should be appended.
func (p *parser) parseMapEntry(seen map[string]bool) (Entry, bool) {
	var key string
	var keyStart, keyLength int
	haveKey := false

	if p.at(tokString) {
		tok := p.advance()
		key, keyStart, keyLength, haveKey = tok.strVal, tok.start, tok.length, true
	} else {
		p.addError(ErrExpectedPropertyKey, p.cur.start, p.cur.length)
		keyStart = p.cur.start
	}

	if p.at(tokColon) {
		p.advance()
	} else {
		p.addError(ErrExpectedColon, p.cur.start, 0)
	}

	val := p.parseValue()

	if !haveKey {
		return Entry{}, false
	}
	if seen[key] {
		p.addError(ErrDuplicatePropertyKey, keyStart, keyLength, StringParam(key))
		return Entry{}, false
	}
	seen[key] = true
	return Entry{Key: key, KeyStart: keyStart, KeyLength: keyLength, Value: val}, true
}

// parseList parses "[" (Value ("," Value)*)? "]", rejecting a trailing
// comma before "]".
func (p *parser) parseList() *Value {
	open := p.advance() // "["
	var items []*Value

	if !p.at(tokRBracket) {
		for {
			items = append(items, p.parseValue())
			if !p.at(tokComma) {
				break
			}
			p.advance() // ","
			if p.at(tokRBracket) {
				p.addError(ErrExpectedValue, p.cur.start, 0)
				break
			}
		}
	}

	end := open.start + open.length
	if p.at(tokRBracket) {
		closeTok := p.advance()
		end = closeTok.end()
	} else {
		p.addError(ErrUnexpectedEof, p.cur.start, 0)
	}
	return &Value{kind: KindList, start: open.start, length: end - open.start, items: items}
}
