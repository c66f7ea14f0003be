package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// options holds the resolved, persistent-flag-derived settings shared by
// every subcommand, the way the ancestor TOML toolkit's encoder/decoder
// drivers share a handful of flags read once at startup.
type options struct {
	configPath string
	noColor    bool
	logJSON    bool
	strict     bool

	cfg config
	log *slog.Logger
}

// newRootCommand builds the pgnfmt command tree: the bare root plus the
// parse, errors, and check subcommands, wired the way spf13/cobra-based
// CLIs in the retrieved corpus (aledsdavies/opal, vovakirdan/surge) build
// their own command surfaces, rather than a hand-rolled flag.FlagSet.
func newRootCommand() *cobra.Command {
	opts := &options{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:           "pgnfmt",
		Short:         "Inspect the recovered syntax tree and diagnostics of a PGN database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a JSON-with-comments inspector config file")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored error output")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "emit structured JSON progress logs instead of text")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "override the config's strict mode (check exits nonzero on any diagnostic)")

	root.AddCommand(newParseCommand(opts))
	root.AddCommand(newErrorsCommand(opts))
	root.AddCommand(newCheckCommand(opts))

	return root
}

// prepare resolves logging and config state once, before any subcommand
// runs. It is the one place --config, --no-color, and --log-json take
// effect.
func (o *options) prepare(stderr io.Writer) error {
	var handler slog.Handler
	if o.logJSON {
		handler = slog.NewJSONHandler(stderr, nil)
	} else {
		handler = slog.NewTextHandler(stderr, nil)
	}
	o.log = slog.New(handler)

	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		cfg, err := loadConfig(data)
		if err != nil {
			return fmt.Errorf("parsing config %s: %w", o.configPath, err)
		}
		o.cfg = cfg
		o.log.Info("loaded inspector config", "path", o.configPath, "color", cfg.Color, "strict", cfg.Strict)
	}

	if o.noColor {
		o.cfg.Color = false
	}
	if o.strict {
		o.cfg.Strict = true
	}
	// color.NoColor also gates on terminal detection by default; an
	// explicit --no-color (or a config with "color": false) forces it off
	// regardless of where stdout happens to be pointed.
	if !o.cfg.Color {
		color.NoColor = true
	}

	return nil
}

// readInput reads a PGN source from path, or from stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
