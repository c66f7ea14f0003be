package pgn

import "github.com/maurice/pgn/green"

// parser builds a green syntax tree from the Lexer's token stream. Unlike
// the ancestor TOML parser, it never returns an error from a production
// rule: every deviation from the grammar is recorded as an ErrorInfo and
// the parser synthesises whatever zero-length token is needed to keep the
// tree structurally well-formed, then keeps going.
type parser struct {
	lex *Lexer
	cur *green.Node // current token, nil once the lexer reaches EOF
	pos int         // absolute start offset of cur

	eofTrivia []*green.Node
	errs      *[]ErrorInfo
}

func newParser(source string, errs *[]ErrorInfo) *parser {
	p := &parser{lex: NewLexer(source, errs), errs: errs}
	p.lex.SetMode(ModeMove)
	p.advance()
	return p
}

// advance consumes and returns the current token, fetching the next one.
// pos is updated so that, after the call, it again names cur's absolute
// start offset.
func (p *parser) advance() *green.Node {
	prev := p.cur
	if prev != nil {
		p.pos += prev.Length()
	}
	tok, trailing := p.lex.Next()
	p.cur = tok
	if tok == nil {
		p.eofTrivia = trailing
	}
	return prev
}

func (p *parser) atEOF() bool { return p.cur == nil }

func (p *parser) at(k green.Kind) bool { return p.cur != nil && p.cur.Kind() == k }

func (p *parser) addError(kind ErrorKind, start, length int, params ...Param) {
	*p.errs = append(*p.errs, ErrorInfo{Kind: kind, Start: start, Length: length, Params: params})
}

// parseGameList parses GameList := Game* BackgroundList.
func (p *parser) parseGameList() *green.Node {
	var games []*green.Node
	for !p.atEOF() {
		games = append(games, p.parseGame())
	}
	trailing := green.NewComposite(green.KindBackgroundList, p.eofTrivia)
	return green.NewComposite(green.KindGameList, append(games, trailing))
}

// parseGame parses Game := TagSection PlyList GameTerminator?, tolerating
// an empty TagSection, an empty PlyList, or both (a loose terminator
// between two games in a database is a complete, if minimal, game).
func (p *parser) parseGame() *green.Node {
	p.lex.SetMode(ModeTag)
	var tagPairs []*green.Node
	for p.at(green.KindBracketOpen) {
		tagPairs = append(tagPairs, p.parseTagPair())
	}
	tagSection := green.NewComposite(green.KindTagSection, tagPairs)

	p.lex.SetMode(ModeMove)
	var plies []*green.Node
	for p.atPlyListMember() {
		plies = append(plies, p.parsePlyListMember())
	}
	plyList := green.NewComposite(green.KindPlyList, plies)

	children := []*green.Node{tagSection, plyList}

	var terminator *green.Node
	if p.at(green.KindGameTerminator) || p.at(green.KindAsterisk) {
		terminator = p.advance()
		children = append(children, terminator)
	}

	if terminator == nil && !p.atEOF() {
		if len(tagPairs) == 0 && len(plies) == 0 {
			// Nothing in the grammar recognised the current token (e.g. a
			// stray ")" with no open variation, or some other misplaced
			// token) — force one token of progress so the parser can never
			// loop forever on malformed input.
			start := p.pos
			bad := p.advance()
			p.addError(ErrMisplacedToken, start, bad.Length())
			children = append(children, bad)
		} else if p.at(green.KindBracketOpen) {
			// The PlyList loop stopped on a "[" with no terminator in
			// between: the next game's tag section implicitly closed this
			// one's move section, the symmetric case to parseTagPair
			// bumping into a move-section construct.
			p.addError(ErrMisplacedToken, p.pos, p.cur.Length())
		}
	}

	return green.NewComposite(green.KindGame, children)
}

func (p *parser) atPlyListMember() bool {
	return p.at(green.KindMoveNumber) || p.at(green.KindPeriods) ||
		p.at(green.KindMove) || p.at(green.KindParenOpen) || p.at(green.KindParenClose)
}

// parsePlyListMember dispatches one PlyList element. A bare ")" here has
// no variation open to close — it is an orphan, consumed on the spot and
// recorded rather than left to jam the game loop.
func (p *parser) parsePlyListMember() *green.Node {
	switch {
	case p.at(green.KindMoveNumber), p.at(green.KindPeriods):
		return p.parsePlyFloatItem()
	case p.at(green.KindParenOpen):
		return p.parseVariation()
	case p.at(green.KindParenClose):
		start := p.pos
		tok := p.advance()
		p.addError(ErrOrphanParenthesisClose, start, tok.Length())
		return tok
	default:
		return p.parsePly()
	}
}

// parseTagPair parses TagPair := "[" TagName? TagValue? "]", synthesising
// a zero-length missing token (and recording the matching diagnostic) for
// whichever parts are absent.
func (p *parser) parseTagPair() *green.Node {
	p.lex.SetMode(ModeTag)
	open := p.advance() // "["

	var name *green.Node
	if p.at(green.KindTagName) {
		name = p.advance()
	} else {
		p.addError(ErrMissingTagName, p.pos, 0)
		name = green.MissingTagName()
	}

	var value *green.Node
	if p.at(green.KindTagValue) || p.at(green.KindErrorTagValue) {
		value = p.advance()
	} else {
		p.addError(ErrMissingTagValue, p.pos, 0)
		value = green.MissingTagValue()
	}

	children := []*green.Node{open, name, value}
	if p.at(green.KindBracketClose) {
		// The token after "]" is outside the tag pair.
		p.lex.SetMode(ModeMove)
		children = append(children, p.advance())
		return green.NewComposite(green.KindTagPair, children)
	}

	if !p.atEOF() {
		p.addError(ErrMisplacedToken, p.pos, p.cur.Length())
	}
	p.addError(ErrMissingTagBracketClose, p.pos, 0)
	children = append(children, green.MissingBracketClose())
	return green.NewComposite(green.KindTagPair, children)
}

// parsePlyFloatItem parses PlyFloatItem := MoveNumber? Periods?. A
// MoveNumber not followed by either Periods or a Move is suspicious (the
// numbering does not actually introduce a move) and is flagged
// InvalidMoveIndication; Periods with no preceding MoveNumber gets a
// synthesised placeholder and a MissingMoveNumber diagnostic.
func (p *parser) parsePlyFloatItem() *green.Node {
	var children []*green.Node
	var numberStart, numberLength int
	hadNumber := false

	if p.at(green.KindMoveNumber) {
		numberStart = p.pos
		tok := p.advance()
		numberLength = tok.Length()
		hadNumber = true
		children = append(children, tok)
	}

	if p.at(green.KindPeriods) {
		if !hadNumber {
			p.addError(ErrMissingMoveNumber, p.pos, 0)
			children = append(children, green.MissingMoveNumber())
		}
		children = append(children, p.advance())
	} else if hadNumber && !p.at(green.KindMove) {
		p.addError(ErrInvalidMoveIndication, numberStart, numberLength)
	}

	return green.NewComposite(green.KindPlyFloatItem, children)
}

// parsePly parses Ply := Move NAG* Variation* [Move NAG* Variation*]?. The
// second bracketed group packs Black's move into the same Ply node when it
// follows White's directly with no intervening PlyFloatItem — the "silent
// two-move ply" shorthand real PGN databases use after the first move of a
// pair ("1. e4 e5" rather than "1. e4 1... e5").
func (p *parser) parsePly() *green.Node {
	children := p.parseHalfPly()
	if p.at(green.KindMove) {
		children = append(children, p.parseHalfPly()...)
	}
	return green.NewComposite(green.KindPly, children)
}

func (p *parser) parseHalfPly() []*green.Node {
	children := []*green.Node{p.advance()} // Move
	for p.at(green.KindNag) {
		children = append(children, p.advance())
	}
	for p.at(green.KindParenOpen) {
		children = append(children, p.parseVariation())
	}
	return children
}

// parseVariation parses Variation := "(" PlyFloatItem* Ply* GameTerminator?
// ")". A variation that never finds its close is implicitly closed: at
// EOF the missing ")" is synthesised silently (end of input speaks for
// itself), but when closure is forced by hitting some other recognisable
// token (most commonly the next game's "[") that token's position is
// flagged MisplacedToken first, so the diagnostic list still shows where
// the unbalanced "(" was discovered.
func (p *parser) parseVariation() *green.Node {
	openStart := p.pos
	children := []*green.Node{p.advance()} // "("

	var inner int
	for !p.atEOF() {
		switch {
		case p.at(green.KindMoveNumber), p.at(green.KindPeriods):
			children = append(children, p.parsePlyFloatItem())
			inner++
		case p.at(green.KindMove):
			children = append(children, p.parsePly())
			inner++
		case p.at(green.KindParenOpen):
			children = append(children, p.parseVariation())
			inner++
		case p.at(green.KindGameTerminator), p.at(green.KindAsterisk):
			children = append(children, p.advance())
			inner++
		default:
			goto closed
		}
	}
closed:
	if p.at(green.KindParenClose) {
		closeStart := p.pos
		closeTok := p.advance()
		if inner == 0 {
			p.addError(ErrEmptyVariation, openStart, closeStart+closeTok.Length()-openStart)
		}
		children = append(children, closeTok)
		return green.NewComposite(green.KindVariation, children)
	}

	if !p.atEOF() {
		p.addError(ErrMisplacedToken, p.pos, p.cur.Length())
	}
	p.addError(ErrMissingParenthesisClose, p.pos, 0)
	children = append(children, green.MissingParenClose())
	return green.NewComposite(green.KindVariation, children)
}
