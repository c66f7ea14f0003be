package pgn

import (
	"strings"
	"testing"

	"github.com/maurice/pgn/green"
)

func TestParsePGNMultiGameDatabase(t *testing.T) {
	src := "[Event \"A\"]\n1. e4 *\n[Event \"B\"]\n1. d4 *"
	root := ParsePGN([]byte(src))
	if root.HasErrors() {
		t.Fatalf("unexpected errors: %+v", root.Errors())
	}
	games := root.Games()
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
}

func TestDisplayErrorsFormatsOnePerLine(t *testing.T) {
	root := ParsePGN([]byte("$ @"))
	display := root.DisplayErrors()
	lines := strings.Split(display, "\n")
	if len(lines) != len(root.Errors()) {
		t.Fatalf("DisplayErrors produced %d lines, want %d", len(lines), len(root.Errors()))
	}
	for _, line := range lines {
		if line == "" {
			t.Fatalf("DisplayErrors produced an empty line in %q", display)
		}
	}
}

func TestRedNavigationOverParsedTree(t *testing.T) {
	src := "[Event \"X\"]\n1. e4 e5 *"
	root := ParsePGN([]byte(src))
	redRoot := root.Red()

	if redRoot.Start() != 0 || redRoot.End() != len(src) {
		t.Fatalf("red root span = [%d,%d), want [0,%d)", redRoot.Start(), redRoot.End(), len(src))
	}

	quoteOffset := strings.Index(src, `"X"`) + 1
	el := redRoot.ElementAt(quoteOffset)
	if el.Green().Kind() != green.KindTagValue {
		t.Fatalf("ElementAt(%d) kind = %v, want TagValue", quoteOffset, el.Green().Kind())
	}
}

func TestHasErrorsFalseOnCleanInput(t *testing.T) {
	root := ParsePGN([]byte("[Event \"X\"]\n1. e4 e5 *"))
	if root.HasErrors() {
		t.Fatalf("unexpected errors: %+v", root.Errors())
	}
}
