package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/config"
	"github.com/leoyouyang/snack-time/internal/history"
)

func testRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	cfg := config.New()
	cfg.Width, cfg.Height = 64, 48
	cfg.Shadow = false
	cfg.SaveDir = t.TempDir()
	var out bytes.Buffer
	return &root{program: "snacktime", config: cfg, log: zap.NewNop(), stdout: &out, stderr: io.Discard}, &out
}

func TestReplayExportsFinalCanvas(t *testing.T) {
	r, out := testRoot(t)
	dst := filepath.Join(t.TempDir(), "out.png")
	cmd, err := parseReplayCmd([]string{"-seed", "7", "-output", dst,
		"-e", "down 5 5", "-e", "move 40 30", "-e", "up", "-e", "brush doritos"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("expected %s to exist: %v", dst, err)
	}
	if want := "saved " + dst; !strings.Contains(out.String(), want) {
		t.Fatalf("expected output to mention %q, got %q", want, out.String())
	}
}

func TestReplaySameSeedSamePixels(t *testing.T) {
	dir := t.TempDir()
	run := func(name string) []byte {
		r, _ := testRoot(t)
		path := filepath.Join(dir, name)
		cmd, err := parseReplayCmd([]string{"-seed", "42", "-output", path,
			"-e", "down 2 2", "-e", "move 60 44", "-e", "leave"}, r)
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if err := cmd.Run(); err != nil {
			t.Fatalf("replay: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		return data
	}
	if !bytes.Equal(run("a.png"), run("b.png")) {
		t.Fatalf("expected identical output for the same seed")
	}
}

func TestReplayScriptErrorsCarryLine(t *testing.T) {
	r, _ := testRoot(t)
	script := filepath.Join(t.TempDir(), "strokes.txt")
	body := "# warm up\ndown 1 1\nup\n\nwiggle 3 3\n"
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd, err := parseReplayCmd([]string{"-script", script}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	err = cmd.Run()
	if !errors.Is(err, errBadCommand) {
		t.Fatalf("expected errBadCommand, got %v", err)
	}
	if want := "strokes.txt:5"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestScriptRunnerCommands(t *testing.T) {
	r, _ := testRoot(t)
	b, err := newBoard(r.config, r.log)
	if err != nil {
		t.Fatalf("newBoard: %v", err)
	}
	run := &scriptRunner{board: b, out: io.Discard, log: zap.NewNop()}
	for _, line := range []string{"down 1 1", "move 20 20", "up", "down 30 5 # tap", "leave"} {
		if err := run.Exec(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if got := b.HistoryLen(); got != 3 {
		t.Fatalf("expected 3 snapshots after two strokes, got %d", got)
	}
	if err := run.Exec("undo"); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := b.HistoryLen(); got != 2 {
		t.Fatalf("expected 2 snapshots after undo, got %d", got)
	}
	if err := run.Exec("prev"); err != nil {
		t.Fatal(err)
	}
	if got := b.Background(); got != b.Backgrounds()-1 {
		t.Fatalf("expected prev to wrap to %d, got %d", b.Backgrounds()-1, got)
	}
	if got := b.HistoryLen(); got != 1 {
		t.Fatalf("expected background change to reset history, got %d", got)
	}
	if err := run.Exec("bg 1"); err != nil || b.Background() != 1 {
		t.Fatalf("bg 1: index %d, err %v", b.Background(), err)
	}
	if err := run.Exec("brush kale"); err == nil {
		t.Fatalf("expected unknown brush error")
	}
	for _, bad := range []string{"down 1", "move x 2", "export", "bg"} {
		if err := run.Exec(bad); err == nil {
			t.Fatalf("expected %q to fail", bad)
		}
	}
	if err := run.Exec("undo"); errors.Is(err, history.ErrEmpty) {
		t.Fatalf("undo at the floor must not fail: %v", err)
	}
}

func TestParseReplayRequiresCommands(t *testing.T) {
	r, _ := testRoot(t)
	_, err := parseReplayCmd(nil, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "snacktime replay"; !strings.Contains(uerr.Error(), want) {
		t.Fatalf("expected help to mention %q, got %q", want, uerr.Error())
	}
	if want := "-script"; !strings.Contains(uerr.Error(), want) {
		t.Fatalf("expected help to list %q, got %q", want, uerr.Error())
	}
}

func TestRootUsageListsCommands(t *testing.T) {
	r := newRoot()
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	for _, want := range []string{"paint", "replay", "backgrounds", "brushes", "config", "-verbose"} {
		if !strings.Contains(uerr.Error(), want) {
			t.Fatalf("expected root help to mention %q", want)
		}
	}
}

func TestListCommands(t *testing.T) {
	r, out := testRoot(t)
	r.config.Brush = "cheetos"
	cmd, err := parseBrushesCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if want := "  1 pringles\n* 2 cheetos\n  3 doritos\n"; out.String() != want {
		t.Fatalf("brushes: got %q, want %q", out.String(), want)
	}

	out.Reset()
	bg, err := parseBackgroundsCmd(nil, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := bg.Run(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[0], "* 0 bg0.png (256x256)") {
		t.Fatalf("unexpected backgrounds listing %q", out.String())
	}
}

func TestConfigPrintAndSave(t *testing.T) {
	r, out := testRoot(t)
	cmd, err := parseConfigCmd([]string{"print"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if want := "width = 64\n"; !strings.Contains(out.String(), want) {
		t.Fatalf("expected %q in %q", want, out.String())
	}

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cmd, err = parseConfigCmd([]string{"-output", path, "save"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Shadow {
		t.Fatalf("round trip lost settings: %+v", cfg)
	}

	cmd, err = parseConfigCmd([]string{"frobnicate"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "unknown config command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestPaintRejectsInvalidSize(t *testing.T) {
	r, _ := testRoot(t)
	cmd, err := parsePaintCmd([]string{"-width", "0"}, r)
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Fatalf("expected validation error before opening a window, got %v", err)
	}
}
