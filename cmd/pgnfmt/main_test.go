package main

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func newTestOptions() *options {
	// Deterministic regardless of whether the test runner's stdout is a
	// terminal: the "errors" subcommand tests assert on plain text.
	color.NoColor = true
	return &options{cfg: defaultConfig(), log: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
}

func TestLoadConfigDefaults(t *testing.T) {
	got, err := loadConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := defaultConfig()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("loadConfig({}) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOverridesWithComments(t *testing.T) {
	src := `{
		// disable color for CI logs
		"color": false,
		"strict": true
	}`
	got, err := loadConfig([]byte(src))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := config{Color: false, Strict: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("loadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigRejectsNonBooleanColor(t *testing.T) {
	if _, err := loadConfig([]byte(`{"color": "yes"}`)); err == nil {
		t.Fatal("expected an error for a non-boolean \"color\"")
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	if _, err := loadConfig([]byte(`{"color": }`)); err == nil {
		t.Fatal("expected an error for malformed config JSON")
	}
}

func TestLoadConfigRejectsNonObjectRoot(t *testing.T) {
	if _, err := loadConfig([]byte(`42`)); err == nil {
		t.Fatal("expected an error for a non-object config root")
	}
}

func TestRunParseSummary(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "game.pgn", "[Event \"X\"]\n1. e4 e5 *")

	var out bytes.Buffer
	if err := runParse(&out, newTestOptions(), path, false); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	got := out.String()
	for _, want := range []string{"games: 1", "errors: 0", "1 tag pair(s)", "1 ply(-ies)"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}
}

func TestRunParseTextRoundTrips(t *testing.T) {
	dir := t.TempDir()
	src := "(((\n"
	path := writeTemp(t, dir, "broken.pgn", src)

	var out bytes.Buffer
	if err := runParse(&out, newTestOptions(), path, true); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	if out.String() != src {
		t.Fatalf("runParse --text = %q, want %q", out.String(), src)
	}
}

func TestRunErrorsReportsOffsetsAndKinds(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "bad.pgn", "$ @")

	var out bytes.Buffer
	opts := newTestOptions()
	opts.cfg.Color = false
	if err := runErrors(&out, opts, path); err != nil {
		t.Fatalf("runErrors: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "0:+1 EmptyNag") {
		t.Errorf("line 0 = %q, want prefix %q", lines[0], "0:+1 EmptyNag")
	}
}

func TestRunCheckBlocksOnStructuralError(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "unbalanced.pgn", "(((")

	opts := newTestOptions()
	if err := runCheck(opts, path); err == nil {
		t.Fatal("expected runCheck to report the recorded diagnostics")
	}
}

func TestRunCheckIgnoresAdvisoryMoveWarningsUnlessStrict(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "loose.pgn", "1. Zz9 *")

	opts := newTestOptions()
	if err := runCheck(opts, path); err != nil {
		t.Fatalf("non-strict runCheck should tolerate an UnrecognisedMove, got %v", err)
	}

	opts.cfg.Strict = true
	if err := runCheck(opts, path); err == nil {
		t.Fatal("strict runCheck should block on an UnrecognisedMove")
	}
}

func TestRunCheckPassesCleanInput(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "clean.pgn", "[Event \"X\"]\n1. e4 e5 *")

	if err := runCheck(newTestOptions(), path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := dir + "/" + name
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
