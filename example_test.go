package pgn_test

import (
	"fmt"

	"github.com/maurice/pgn"
)

func ExampleParsePGN() {
	root := pgn.ParsePGN([]byte(`[Event "Let's Play"]` + "\n1. e4 e5 *"))
	fmt.Println(len(root.Games()))
	fmt.Println(root.HasErrors())
	// Output:
	// 1
	// false
}

func ExampleParsePGN_recovers() {
	root := pgn.ParsePGN([]byte("((("))
	fmt.Println(root.HasErrors())
	fmt.Println(len(root.Errors()))
	// Output:
	// true
	// 3
}
