package pgn

import (
	"testing"

	"github.com/maurice/pgn/green"
)

// Scenario 1: one Game with one TagPair, two half-moves packed into one
// Ply node, GameTerminator "*", zero errors.
func TestParseSimpleGame(t *testing.T) {
	root := ParsePGN([]byte("[Event \"X\"]\n1. e4 e5 *"))
	if root.HasErrors() {
		t.Fatalf("unexpected errors: %+v", root.Errors())
	}
	games := root.Games()
	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}
	game := games[0]
	var tagSection, plyList *green.Node
	for _, c := range game.Children() {
		switch c.Kind() {
		case green.KindTagSection:
			tagSection = c
		case green.KindPlyList:
			plyList = c
		}
	}
	if tagSection == nil || len(tagSection.Children()) != 1 {
		t.Fatalf("tag section = %v, want one TagPair", tagSection)
	}
	if plyList == nil {
		t.Fatal("missing PlyList")
	}
	var plyCount int
	for _, c := range plyList.Children() {
		if c.Kind() == green.KindPly {
			plyCount++
		}
	}
	if plyCount != 1 {
		t.Fatalf("ply count = %d, want 1 packed Ply (White+Black silent pair)", plyCount)
	}
}

// Scenario 2: unterminated MultiLineComment, one UnterminatedMultiLineComment
// error at offset 0 length 1.
func TestParseUnterminatedComment(t *testing.T) {
	root := ParsePGN([]byte("{unterminated"))
	errs := root.Errors()
	if len(errs) != 1 || errs[0].Kind != ErrUnterminatedMultiLineComment {
		t.Fatalf("errors = %+v", errs)
	}
	if errs[0].Start != 0 || errs[0].Length != 1 {
		t.Fatalf("error span = [%d,+%d), want [0,+1)", errs[0].Start, errs[0].Length)
	}
}

// Scenario 3: a Ply with an attached Variation containing one Ply, followed
// by a GameTerminator.
func TestParseVariation(t *testing.T) {
	root := ParsePGN([]byte("1. e4 (1... e5) 1-0"))
	if root.HasErrors() {
		t.Fatalf("unexpected errors: %+v", root.Errors())
	}
	game := root.Games()[0]
	var plyList *green.Node
	for _, c := range game.Children() {
		if c.Kind() == green.KindPlyList {
			plyList = c
		}
	}
	var ply *green.Node
	for _, c := range plyList.Children() {
		if c.Kind() == green.KindPly {
			ply = c
		}
	}
	if ply == nil {
		t.Fatal("missing Ply")
	}
	var variation *green.Node
	for _, c := range ply.Children() {
		if c.Kind() == green.KindVariation {
			variation = c
		}
	}
	if variation == nil {
		t.Fatal("missing Variation attached to the Ply")
	}
	var innerPlies int
	for _, c := range variation.Children() {
		if c.Kind() == green.KindPly {
			innerPlies++
		}
	}
	if innerPlies != 1 {
		t.Fatalf("variation contains %d Ply nodes, want 1", innerPlies)
	}
}

// Scenario 4: missing space between TagName and TagValue is permitted,
// no errors.
func TestParseTagPairNoSpace(t *testing.T) {
	root := ParsePGN([]byte(`[A"v"]`))
	if root.HasErrors() {
		t.Fatalf("unexpected errors: %+v", root.Errors())
	}
	tagPair := root.Games()[0].Children()[0].Children()[0]
	if tagPair.Kind() != green.KindTagPair {
		t.Fatalf("got %v, want TagPair", tagPair.Kind())
	}
}

// Scenario 5: "(((" — three nested empty Variations, each with a recovery
// error, leaves summing to the full input length.
func TestParseUnbalancedNestedParens(t *testing.T) {
	src := "((("
	root := ParsePGN([]byte(src))
	errs := root.Errors()
	if len(errs) != 3 {
		t.Fatalf("errors = %+v, want 3 (one MissingParenthesisClose per nesting level)", errs)
	}
	for _, e := range errs {
		if e.Kind != ErrMissingParenthesisClose {
			t.Errorf("error kind = %v, want MissingParenthesisClose", e.Kind)
		}
	}

	var leaves []*green.Node
	leaves = green.Leaves(root.GameList(), leaves)
	var total int
	for _, l := range leaves {
		total += l.Length()
	}
	if total != len(src) {
		t.Fatalf("leaf lengths sum to %d, want %d", total, len(src))
	}
}

func TestParseOrphanParenClose(t *testing.T) {
	root := ParsePGN([]byte(") *"))
	errs := root.Errors()
	if len(errs) != 1 || errs[0].Kind != ErrOrphanParenthesisClose {
		t.Fatalf("errors = %+v, want one OrphanParenthesisClose", errs)
	}
}

func TestParseEmptyInputProducesEmptyGameList(t *testing.T) {
	root := ParsePGN(nil)
	if root.HasErrors() {
		t.Fatalf("unexpected errors: %+v", root.Errors())
	}
	if len(root.Games()) != 0 {
		t.Fatalf("got %d games from empty input, want 0", len(root.Games()))
	}
}

func TestParseMissingTagBracketClose(t *testing.T) {
	root := ParsePGN([]byte(`[Event "X" *`))
	errs := root.Errors()
	var found bool
	for _, e := range errs {
		if e.Kind == ErrMissingTagBracketClose {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors = %+v, want a MissingTagBracketClose", errs)
	}
}

// A game's move section left unterminated runs straight into the next
// game's tag section: the "[" implicitly closes the PlyList the way a
// move-section construct mid-TagSection already does in parseTagPair,
// and must record the same MisplacedToken diagnostic.
func TestParseMoveSectionImplicitlyClosedByNextTagSection(t *testing.T) {
	root := ParsePGN([]byte(`[Event "A"] 1. e4 [Site "B"] 1. d4 *`))
	errs := root.Errors()
	var found bool
	for _, e := range errs {
		if e.Kind == ErrMisplacedToken {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors = %+v, want a MisplacedToken for the implicit section closure", errs)
	}
	games := root.Games()
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
}

func TestRoundTripTextReconstructsInput(t *testing.T) {
	for _, src := range []string{
		"[Event \"X\"]\n1. e4 e5 *",
		"{unterminated",
		"1. e4 (1... e5) 1-0",
		`[A"v"]`,
		"(((",
		") *",
		"",
	} {
		root := ParsePGN([]byte(src))
		if got := root.Text([]byte(src)); got != src {
			t.Errorf("Text() round-trip for %q = %q", src, got)
		}
	}
}
