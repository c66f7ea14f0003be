package pgn

import (
	"sort"
	"strings"

	"github.com/maurice/pgn/green"
	"github.com/maurice/pgn/red"
)

// RootPgnSyntax is the result of a single ParsePGN call: an immutable
// green GameList tree plus the flat, document-ordered list of diagnostics
// collected while building it. The GameList is never nil; the error list
// is nil when no diagnostic was recorded.
type RootPgnSyntax struct {
	gameList *green.Node
	errors   []ErrorInfo
}

// GameList returns the root green.Node (KindGameList) of the parsed tree.
func (r RootPgnSyntax) GameList() *green.Node { return r.gameList }

// Errors returns every diagnostic recorded during the parse, in document
// order (by start offset).
func (r RootPgnSyntax) Errors() []ErrorInfo { return r.errors }

// Red returns a red-tree view rooted at the GameList, for absolute-offset
// navigation and cursor queries (ChildContaining/ElementAt/ElementBefore/
// ElementAfter).
func (r RootPgnSyntax) Red() *red.Node { return red.NewRoot(r.gameList) }

// Text reconstructs the exact source text the tree was built from. Since
// the tree is lossless (every byte of input is represented by some node,
// trivia included), this is just the red root's own span — but routing it
// through the red layer exercises the same absolute-offset machinery a
// caller doing a narrower ElementAt/ElementBefore query would use.
func (r RootPgnSyntax) Text(source []byte) string {
	return r.Red().Text(source)
}

// ParsePGN parses text as a PGN game database. It never fails: malformed
// input produces a structurally well-formed tree (with synthesised
// recovery tokens where needed) and a non-empty Errors list, rather than
// an error return.
func ParsePGN(text []byte) RootPgnSyntax {
	var errs []ErrorInfo
	p := newParser(string(text), &errs)
	gameList := p.parseGameList()
	// The parser's one-token lookahead can scan (and report on) the next
	// token before it records a diagnostic at an earlier offset, so restore
	// document order here.
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Start < errs[j].Start })
	return RootPgnSyntax{gameList: gameList, errors: errs}
}

// HasErrors reports whether r recorded any diagnostic.
func (r RootPgnSyntax) HasErrors() bool { return len(r.errors) > 0 }

// Games returns the top-level Game nodes in document order.
func (r RootPgnSyntax) Games() []*green.Node {
	children := r.gameList.Children()
	games := make([]*green.Node, 0, len(children))
	for _, c := range children {
		if c.Kind() == green.KindGame {
			games = append(games, c)
		}
	}
	return games
}

// DisplayErrors renders every recorded diagnostic as one line per entry,
// in the same Display format ErrorInfo.Display uses. cmd/pgnfmt's "errors"
// subcommand prints the same per-entry Display text, prefixed with each
// diagnostic's span, without going through this method.
func (r RootPgnSyntax) DisplayErrors() string {
	var b strings.Builder
	for i, e := range r.errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Display())
	}
	return b.String()
}
