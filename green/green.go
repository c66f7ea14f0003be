// Package green implements the immutable, parentless concrete-syntax-tree
// nodes produced by the PGN tokenizer and parser. A green node carries only
// a local length: a leaf stores it directly, a composite (or a token
// together with its owned leading trivia) stores the sum of its children's
// lengths. No node stores an absolute offset or its own source text — both
// are recovered on demand by the red layer (package red) from the original
// input, which is why fixed-shape green nodes can be cached as shared
// singletons and reused across parses.
package green

// Kind is the tagged-variant discriminator for every PGN syntax node. It is
// a flat enum rather than a class hierarchy: consumers are expected to
// switch over Kind, not type-assert a family of node types.
type Kind uint8

const (
	// Trivia: syntactically insignificant, but present in the tree so the
	// input reconstructs exactly.
	KindWhitespace Kind = iota
	KindEndOfLine
	KindIllegalCharacter
	KindLineComment
	KindMultiLineComment
	KindEscapeSequence

	// Tag-section tokens.
	KindBracketOpen
	KindBracketClose
	KindTagName
	KindTagValue
	KindErrorTagValue

	// Move-section tokens.
	KindMoveNumber
	KindPeriods
	KindMove
	KindNag
	KindParenOpen
	KindParenClose
	KindGameTerminator
	KindAsterisk

	// Composite nodes.
	KindTagPair
	KindTagSection
	KindPlyFloatItem
	KindPly
	KindVariation
	KindPlyList
	KindGame
	KindGameList
	KindBackgroundList
)

var kindNames = [...]string{
	KindWhitespace:        "Whitespace",
	KindEndOfLine:         "EndOfLine",
	KindIllegalCharacter:  "IllegalCharacter",
	KindLineComment:       "LineComment",
	KindMultiLineComment:  "MultiLineComment",
	KindEscapeSequence:    "EscapeSequence",
	KindBracketOpen:       "BracketOpen",
	KindBracketClose:      "BracketClose",
	KindTagName:           "TagName",
	KindTagValue:          "TagValue",
	KindErrorTagValue:     "ErrorTagValue",
	KindMoveNumber:        "MoveNumber",
	KindPeriods:           "Periods",
	KindMove:              "Move",
	KindNag:               "Nag",
	KindParenOpen:         "ParenthesisOpen",
	KindParenClose:        "ParenthesisClose",
	KindGameTerminator:    "GameTerminator",
	KindAsterisk:          "Asterisk",
	KindTagPair:           "TagPair",
	KindTagSection:        "TagSection",
	KindPlyFloatItem:      "PlyFloatItem",
	KindPly:               "Ply",
	KindVariation:         "Variation",
	KindPlyList:           "PlyList",
	KindGame:              "Game",
	KindGameList:          "GameList",
	KindBackgroundList:    "BackgroundList",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTrivia reports whether k is one of the syntactically insignificant
// trivia kinds.
func (k Kind) IsTrivia() bool {
	return k <= KindEscapeSequence
}

// Node is the single tagged-union representation for every PGN syntax
// shape: trivia leaves, token leaves, token wrappers (a significant token
// together with the trivia it owns, see BackgroundBefore), and composite
// grammar nodes. Which fields are meaningful is determined by Kind and by
// whether the node is a leaf (len(children) == 0); this mirrors the
// source's inheritance hierarchy of syntax classes collapsed into one
// exhaustively-matched variant instead of re-creating that hierarchy as
// a generic Union type.
type Node struct {
	kind     Kind
	length   int
	children []*Node

	// Leaf-only flags. Only one of these is meaningful for any given Kind;
	// a struct-of-unions is simpler here than four near-empty leaf types.
	unterminated bool // MultiLineComment
	numeric      bool // Nag: true for "$7", false for "!?" etc.
	recognized   bool // Move: SAN-shape matched
	missing      bool // synthesised zero-length recovery token
	count        int  // Periods: number of consecutive dots
}

// Kind reports the node's tagged-variant kind.
func (n *Node) Kind() Kind { return n.kind }

// Length reports the node's length in bytes of source text. For a leaf
// this is the token's own length; for any node with children it is the
// sum of the children's lengths (invariant: length conservation, see
// TestLengthConservation in the test suite).
func (n *Node) Length() int { return n.length }

// Children reports the node's ordered children, or nil for a true leaf.
// For a significant token with owned leading trivia, the children are the
// trivia nodes (in order) followed by a final core leaf of the same Kind
// carrying the token's own content length — see NewToken.
func (n *Node) Children() []*Node { return n.children }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Unterminated reports the MultiLineComment "unterminated" flag.
func (n *Node) Unterminated() bool { return n.unterminated }

// Numeric reports whether a Nag node is the numeric ($n) form rather than
// a symbolic glyph (!, ?, !!, ??, !?, ?!).
func (n *Node) Numeric() bool { return n.numeric }

// Recognized reports whether a Move node's text pattern-matched the loose
// SAN shape test (see the open question in §9 of the specification this
// module implements — this is advisory only and never rejects the token).
func (n *Node) Recognized() bool { return n.recognized }

// Missing reports whether this is a zero-length token synthesised by the
// parser's error-recovery to keep the tree structurally well-formed.
func (n *Node) Missing() bool { return n.missing }

// Count reports the number of consecutive dots collapsed into a Periods
// token.
func (n *Node) Count() int { return n.count }

// NewLeaf creates a leaf node with no owned trivia: trivia nodes
// themselves, and the inner core leaf wrapped by NewToken.
func NewLeaf(kind Kind, length int) *Node {
	return &Node{kind: kind, length: length}
}

// NewCommentLeaf creates a MultiLineComment trivia leaf, recording whether
// the closing "}" was found before EOF.
func NewCommentLeaf(length int, unterminated bool) *Node {
	return &Node{kind: KindMultiLineComment, length: length, unterminated: unterminated}
}

// NewPeriodsLeaf creates a Periods token core leaf for a run of count
// consecutive dots.
func NewPeriodsLeaf(count int) *Node {
	return &Node{kind: KindPeriods, length: count, count: count}
}

// NewNagLeaf creates a Nag token core leaf of the given length, tagged
// numeric or symbolic.
func NewNagLeaf(length int, numeric bool) *Node {
	return &Node{kind: KindNag, length: length, numeric: numeric}
}

// NewMoveLeaf creates a Move token core leaf, tagged with whether its text
// matched the loose SAN shape test.
func NewMoveLeaf(length int, recognized bool) *Node {
	return &Node{kind: KindMove, length: length, recognized: recognized}
}

// NewMissingLeaf creates a zero-length synthesised core leaf of the given
// kind, used by the parser's recovery rules (see Node.Missing).
func NewMissingLeaf(kind Kind) *Node {
	return &Node{kind: kind, length: 0, missing: true}
}

// NewToken wraps a significant core leaf together with the trivia it owns
// as its BackgroundBefore (possibly empty). The wrapper's Kind equals the
// core leaf's Kind; its Length is the sum of the background trivia lengths
// and the core leaf's own length, so length conservation (invariant 1 of
// the specification) holds uniformly for every non-leaf node, tokens
// included.
func NewToken(background []*Node, core *Node) *Node {
	children := make([]*Node, 0, len(background)+1)
	children = append(children, background...)
	children = append(children, core)
	total := 0
	for _, c := range children {
		total += c.length
	}
	return &Node{kind: core.kind, length: total, children: children}
}

// Background returns the leading trivia owned by a token wrapper (all
// children but the last), or nil if n is not a token wrapper (a composite
// or a true leaf).
func (n *Node) Background() []*Node {
	if len(n.children) <= 1 || n.children[len(n.children)-1].kind != n.kind {
		return nil
	}
	return n.children[:len(n.children)-1]
}

// Core returns the significant core leaf of a token wrapper, or n itself
// if n is already a leaf.
func (n *Node) Core() *Node {
	if len(n.children) == 0 {
		return n
	}
	return n.children[len(n.children)-1]
}

// NewComposite creates a grammar composite node (TagPair, TagSection,
// PlyFloatItem, Ply, Variation, PlyList, Game, GameList, BackgroundList)
// from an ordered list of children, whose combined length becomes the
// composite's own length.
func NewComposite(kind Kind, children []*Node) *Node {
	total := 0
	for _, c := range children {
		total += c.length
	}
	return &Node{kind: kind, length: total, children: children}
}

// Leaves appends, in document order, every leaf descendant of n (a
// gap-free partition of n's span per invariant 2) to dst and returns the
// extended slice.
func Leaves(n *Node, dst []*Node) []*Node {
	if n.IsLeaf() {
		return append(dst, n)
	}
	for _, c := range n.children {
		dst = Leaves(c, dst)
	}
	return dst
}
