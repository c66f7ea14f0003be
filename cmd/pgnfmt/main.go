// Command pgnfmt is a small inspector over the PGN/JSON concrete-syntax
// toolkit in the parent module: it parses a PGN database (or splits one
// into games) and reports the recovered tree and/or the diagnostic list
// recorded along the way. It never fails to produce output for malformed
// input — that is the entire point of the lossless parser underneath it.
// Apart from "check", which exits nonzero when blocking diagnostics were
// recorded, it only fails on things outside the parser's control, like a
// missing file or an unreadable --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pgnfmt:", err)
		os.Exit(1)
	}
}
