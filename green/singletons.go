package green

// Fixed-shape tokens carry no variable content: every "[" with no leading
// trivia is indistinguishable from every other, so they can all point at
// the same immutable Node. This is the cached-singleton pattern called for
// in §4.2/§9 of the specification — a small static table, not a general
// interning scheme.
var (
	singletonBracketOpen  = NewToken(nil, NewLeaf(KindBracketOpen, 1))
	singletonBracketClose = NewToken(nil, NewLeaf(KindBracketClose, 1))
	singletonParenOpen    = NewToken(nil, NewLeaf(KindParenOpen, 1))
	singletonParenClose   = NewToken(nil, NewLeaf(KindParenClose, 1))
	singletonAsterisk     = NewToken(nil, NewLeaf(KindAsterisk, 1))

	singletonNagBang       = NewToken(nil, NewNagLeaf(1, false)) // !
	singletonNagHook       = NewToken(nil, NewNagLeaf(1, false)) // ?
	singletonNagDoubleBang = NewToken(nil, NewNagLeaf(2, false)) // !!
	singletonNagDoubleHook = NewToken(nil, NewNagLeaf(2, false)) // ??
	singletonNagBangHook   = NewToken(nil, NewNagLeaf(2, false)) // !?
	singletonNagHookBang   = NewToken(nil, NewNagLeaf(2, false)) // ?!

	singletonMissingBracketClose = NewToken(nil, NewMissingLeaf(KindBracketClose))
	singletonMissingParenClose   = NewToken(nil, NewMissingLeaf(KindParenClose))
	singletonMissingTagName      = NewToken(nil, NewMissingLeaf(KindTagName))
	singletonMissingTagValue     = NewToken(nil, NewMissingLeaf(KindTagValue))
	singletonMissingMoveNumber   = NewToken(nil, NewMissingLeaf(KindMoveNumber))
)

// BracketOpen returns the shared "[" token singleton with no leading
// trivia. Callers that need leading trivia must build a fresh token via
// NewToken instead.
func BracketOpen() *Node { return singletonBracketOpen }

// BracketClose returns the shared "]" token singleton.
func BracketClose() *Node { return singletonBracketClose }

// ParenOpen returns the shared "(" token singleton.
func ParenOpen() *Node { return singletonParenOpen }

// ParenClose returns the shared ")" token singleton.
func ParenClose() *Node { return singletonParenClose }

// Asterisk returns the shared "*" token singleton.
func Asterisk() *Node { return singletonAsterisk }

// SymbolicNag returns the shared singleton for one of the six symbolic NAG
// spellings (!, ?, !!, ??, !?, ?!), or nil if text does not name one.
func SymbolicNag(text string) *Node {
	switch text {
	case "!":
		return singletonNagBang
	case "?":
		return singletonNagHook
	case "!!":
		return singletonNagDoubleBang
	case "??":
		return singletonNagDoubleHook
	case "!?":
		return singletonNagBangHook
	case "?!":
		return singletonNagHookBang
	default:
		return nil
	}
}

// MissingBracketClose returns the shared zero-length synthesised "]" used
// when the parser recovers from an unterminated tag pair.
func MissingBracketClose() *Node { return singletonMissingBracketClose }

// MissingParenClose returns the shared zero-length synthesised ")" used
// when the parser recovers from an unterminated variation.
func MissingParenClose() *Node { return singletonMissingParenClose }

// MissingTagName returns the shared zero-length synthesised TagName.
func MissingTagName() *Node { return singletonMissingTagName }

// MissingTagValue returns the shared zero-length synthesised TagValue.
func MissingTagValue() *Node { return singletonMissingTagValue }

// MissingMoveNumber returns the shared zero-length synthesised MoveNumber.
func MissingMoveNumber() *Node { return singletonMissingMoveNumber }
