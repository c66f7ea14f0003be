package main

import (
	"fmt"
	"io"

	"github.com/maurice/pgn"
	"github.com/maurice/pgn/green"
	"github.com/maurice/pgn/red"
	"github.com/spf13/cobra"
)

func newParseCommand(opts *options) *cobra.Command {
	var reserialise bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print a summary of the recovered syntax tree, or re-serialise it with --text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), opts, args[0], reserialise)
		},
	}
	cmd.Flags().BoolVar(&reserialise, "text", false, "print the exact reconstructed source text instead of a summary")
	return cmd
}

func runParse(w io.Writer, opts *options, path string, reserialise bool) error {
	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	root := pgn.ParsePGN(data)
	opts.log.Info("parsed PGN database", "path", path, "games", len(root.Games()), "errors", len(root.Errors()))

	if reserialise {
		fmt.Fprint(w, root.Text(data))
		return nil
	}

	fmt.Fprintf(w, "games: %d\n", len(root.Games()))
	fmt.Fprintf(w, "errors: %d\n", len(root.Errors()))

	redGames := redGameNodes(root.Red())
	for i, redGame := range redGames {
		fmt.Fprintf(w, "game %d: %s\n", i+1, summarizeGame(redGame, data))
	}
	return nil
}

// redGameNodes returns the red-tree wrappers of gameList's top-level Game
// children, in document order, so summarizeGame can recover each
// terminator's exact text through the red layer instead of just its kind.
func redGameNodes(gameList *red.Node) []*red.Node {
	children := gameList.Children()
	games := make([]*red.Node, 0, len(children))
	for _, c := range children {
		if c.Green().Kind() == green.KindGame {
			games = append(games, c)
		}
	}
	return games
}

// summarizeGame renders one line of tag-pair / ply / terminator detail
// for a single Game, the level of detail a human skimming a multi-game
// database (chessnote's SplitMultiGame use case, see SPEC_FULL.md B.3)
// wants without dumping the whole tree.
func summarizeGame(game *red.Node, source []byte) string {
	var tagPairs, plies int
	terminator := "none"
	for _, c := range game.Children() {
		switch c.Green().Kind() {
		case green.KindTagSection:
			tagPairs = len(c.Children())
		case green.KindPlyList:
			for _, p := range c.Children() {
				if p.Green().Kind() == green.KindPly {
					plies++
				}
			}
		case green.KindGameTerminator, green.KindAsterisk:
			terminator = coreText(c, source)
		}
	}
	return fmt.Sprintf("%d tag pair(s), %d ply(-ies), terminator=%s", tagPairs, plies, terminator)
}

// coreText recovers the exact text of a token's significant core leaf,
// skipping whatever leading trivia (BackgroundBefore) the token owns —
// green.Node.Core() picked out the same child on the green side, but the
// red wrapper is what can turn it back into source text.
func coreText(token *red.Node, source []byte) string {
	children := token.Children()
	if len(children) == 0 {
		return token.Text(source)
	}
	return children[len(children)-1].Text(source)
}
