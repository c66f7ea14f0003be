package main

import (
	"github.com/fatih/color"
	"github.com/maurice/pgn"
)

// severity classifies a pgn.ErrorKind into the three bands the
// specification's own taxonomy groups them into (§7: Lexical, Structural,
// Semantic-lite), so the "errors" subcommand can colour by how serious a
// diagnostic is without the core error package needing to know about
// terminal colours.
type severity int

const (
	severityLexical severity = iota
	severityStructural
	severitySemantic
)

func classify(kind pgn.ErrorKind) severity {
	switch kind {
	case pgn.ErrIllegalCharacter,
		pgn.ErrEmptyNag,
		pgn.ErrOverflowNag,
		pgn.ErrUnterminatedMultiLineComment,
		pgn.ErrUnterminatedTagValue,
		pgn.ErrIllegalControlCharacterInTagValue,
		pgn.ErrUnrecognisedEscapeInTagValue:
		return severityLexical
	case pgn.ErrUnrecognisedMove:
		return severitySemantic
	default:
		return severityStructural
	}
}

// colorFor returns the color.Color pgnfmt renders a diagnostic of this
// severity with. Lexical problems are the mildest (the tokenizer still
// produced something), structural ones are the most serious (the parser
// had to synthesise a recovery token), and the one semantic-lite kind
// (UnrecognisedMove) sits in between since the token was kept as-is.
func (s severity) colorFor() *color.Color {
	switch s {
	case severityLexical:
		return color.New(color.FgYellow)
	case severitySemantic:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
