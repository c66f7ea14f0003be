package pgn_test

import (
	"testing"

	"github.com/maurice/pgn"
)

func FuzzParsePGN(f *testing.F) {
	f.Add("[Event \"F/S Return Match\"]")
	f.Add("1. e4 e5 2. Nf3 Nc6 *")
	f.Add("[White \"Kasparov, Garry\"] 1/2-1/2")
	f.Add("1. e4 (1... e5 (1... c5)) 1-0")
	f.Add("{unterminated")
	f.Add("(((")

	f.Fuzz(func(t *testing.T, data string) {
		root := pgn.ParsePGN([]byte(data))
		text := root.Text([]byte(data))
		if text != data {
			t.Fatalf("round-trip mismatch: got %q, want %q", text, data)
		}
	})
}
