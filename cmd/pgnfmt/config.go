package main

import (
	"fmt"

	"github.com/maurice/pgn/jsoncst"
)

// config holds the inspector defaults pgnfmt reads from a --config file.
// This is the concrete caller B.4 of the specification names: jsoncst is
// built as an independently importable package (and tested on its own,
// see jsoncst/jsoncst_test.go), and this struct is the "settings loading"
// relationship that exercises it from inside this repository.
type config struct {
	Color  bool
	Strict bool
}

// defaultConfig is used when no --config flag is given.
func defaultConfig() config {
	return config{Color: true, Strict: false}
}

// loadConfig parses data as a pgnfmt config document: the JSON-with-
// comments dialect described in §4.3/§6, with "color" and "strict"
// boolean keys, both optional. Any parser diagnostic is treated as a hard
// error here — unlike the PGN/JSON core itself, a CLI's own config file
// failing to parse should stop the CLI rather than silently proceed on a
// partially-recovered config.
func loadConfig(data []byte) (config, error) {
	cfg := defaultConfig()

	root := jsoncst.ParseJSON(data)
	if root.HasErrors() {
		return cfg, fmt.Errorf("%s", root.DisplayErrors())
	}

	doc := root.Value()
	if doc.Kind() != jsoncst.KindMap {
		return cfg, fmt.Errorf("config root must be an object, got %s", doc.Kind())
	}

	if v := doc.Get("color"); v != nil {
		b, ok := v.AsBool()
		if !ok {
			return cfg, fmt.Errorf(`"color" must be a boolean`)
		}
		cfg.Color = b
	}
	if v := doc.Get("strict"); v != nil {
		b, ok := v.AsBool()
		if !ok {
			return cfg, fmt.Errorf(`"strict" must be a boolean`)
		}
		cfg.Strict = b
	}

	return cfg, nil
}
