package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/board"
	"github.com/leoyouyang/snack-time/internal/geom"
	"github.com/leoyouyang/snack-time/internal/stroke"
)

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

// replayCmd drives a board from a script instead of a window.
type replayCmd struct {
	*root
	fs *flag.FlagSet

	script string
	execs  commandList
	output string
	seed   uint64
	seeded bool
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r.subcommand("replay"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "", "file of commands, one per line (- for stdin)")
	fs.Var(&c.execs, "e", "execute a command (may be specified multiple times)")
	fs.StringVar(&c.output, "output", "", "write the final canvas to this file")
	fs.Uint64Var(&c.seed, "seed", 0, "seed for brush jitter; runs with the same seed are identical")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			c.seeded = true
		}
	})
	if fs.NArg() != 0 || (c.script == "" && len(c.execs) == 0) {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *replayCmd) Run() error {
	var opts []board.Option
	if c.seeded {
		opts = append(opts, board.WithRand(rand.New(rand.NewPCG(c.seed, c.seed))))
	}
	b, err := newBoard(c.config, c.log, opts...)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	run := &scriptRunner{board: b, out: c.stdout, log: c.log}

	if c.script != "" {
		if err := c.runScript(run); err != nil {
			return err
		}
	}
	for i, line := range c.execs {
		if err := run.Exec(line); err != nil {
			return fmt.Errorf("replay -e #%d: %w", i+1, err)
		}
	}
	if c.output != "" {
		path, err := b.Export(c.output)
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		fmt.Fprintf(c.stdout, "saved %s\n", path)
	}
	return nil
}

func (c *replayCmd) runScript(run *scriptRunner) error {
	var in io.Reader = os.Stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		defer f.Close()
		in = f
	}
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		if err := run.Exec(sc.Text()); err != nil {
			return fmt.Errorf("replay %s:%d: %w", c.script, n, err)
		}
	}
	return sc.Err()
}

var errBadCommand = errors.New("bad command")

// scriptRunner applies text commands to a board.
type scriptRunner struct {
	board *board.Board
	out   io.Writer
	log   *zap.Logger
}

// Exec runs one command. Blank lines and # comments are ignored.
func (s *scriptRunner) Exec(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("replay", zap.String("command", name), zap.Strings("args", args))

	switch name {
	case "down", "move":
		p, err := parsePoint(args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		kind := stroke.Down
		if name == "move" {
			kind = stroke.Move
		}
		s.board.HandleEvent(stroke.Event{Kind: kind, At: p})
	case "up":
		s.board.HandleEvent(stroke.Event{Kind: stroke.Up})
	case "leave":
		s.board.HandleEvent(stroke.Event{Kind: stroke.Leave})
	case "undo":
		return s.board.Undo()
	case "clear":
		s.board.Clear()
	case "next":
		s.board.NextBackground()
	case "prev", "previous":
		s.board.PreviousBackground()
	case "background", "bg":
		if len(args) != 1 {
			return fmt.Errorf("%s: want an index: %w", name, errBadCommand)
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		s.board.SelectBackground(i)
	case "brush":
		if len(args) != 1 {
			return fmt.Errorf("brush: want a name: %w", errBadCommand)
		}
		return s.board.SelectBrush(args[0])
	case "export", "save":
		if len(args) != 1 {
			return fmt.Errorf("%s: want a path: %w", name, errBadCommand)
		}
		path, err := s.board.Export(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %s\n", path)
	default:
		return fmt.Errorf("%q: %w", name, errBadCommand)
	}
	return nil
}

func parsePoint(args []string) (geom.Point, error) {
	if len(args) != 2 {
		return geom.Point{}, fmt.Errorf("want x y: %w", errBadCommand)
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(x, y), nil
}
