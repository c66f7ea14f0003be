package main

import (
	"fmt"
	"io"

	"github.com/maurice/pgn"
	"github.com/spf13/cobra"
)

func newErrorsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors <file>",
		Short: "Print the diagnostic list recorded while parsing, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErrors(cmd.OutOrStdout(), opts, args[0])
		},
	}
	return cmd
}

func runErrors(w io.Writer, opts *options, path string) error {
	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	root := pgn.ParsePGN(data)
	opts.log.Info("checked PGN database for diagnostics", "path", path, "errors", len(root.Errors()))

	for _, e := range root.Errors() {
		c := classify(e.Kind).colorFor()
		fmt.Fprintf(w, "%d:+%d ", e.Start, e.Length)
		c.Fprint(w, e.Display())
		fmt.Fprintln(w)
	}
	return nil
}
