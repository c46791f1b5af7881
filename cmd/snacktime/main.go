package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/config"
	"github.com/leoyouyang/snack-time/internal/notify"
	"github.com/leoyouyang/snack-time/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	notifier    *notify.Notifier
	log         *zap.Logger
	verbose     bool
	configPath  string
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
	stdout      io.Writer
	stderr      io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("snacktime", flag.ExitOnError),
		program: "snacktime",
		log:     zap.NewNop(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	r.fs.BoolVar(&r.verbose, "verbose", false, "log debug output to stderr")
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "configuration file (.rc, .yaml or .yml)")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	// CLI > env > config > default; an empty flag falls through in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "toolbar theme (light, dark, cheesy or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	log, err := newLogger(r.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	r.log = log
	defer func() { _ = r.log.Sync() }()

	r.loadConfig()
	r.notifier = notify.New(notify.LoadPreferences(os.Getenv), notify.WithLogger(r.log))
	set := map[string]bool{}
	r.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["notify-save"] {
		r.saveAlerts = r.config.Notify.Save
	}
	if !set["notify-copy"] {
		r.copyAlerts = r.config.Notify.Copy
	}
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "backgrounds":
		cmd, err = parseBackgroundsCmd(subArgs, r)
	case "brushes":
		cmd, err = parseBrushesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{root: r.subcommand("version")}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) loadConfig() {
	loader := config.NewLoader(version, r.configPath)
	cfg, err := loader.Load()
	if err != nil {
		r.log.Warn("failed to load config, using defaults", zap.Error(err))
		fmt.Fprintf(r.stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	cfg.ApplyEnv(os.Getenv)
	r.config = cfg
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = r.config.Theme
	}
	loader := theme.NewLoader()
	loader.Custom = r.config.Themes
	t, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(r.stderr, "warning: failed to load theme %q: %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

// subcommand returns a copy of r whose help names the subcommand.
func (r *root) subcommand(name string) *root {
	sub := *r
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
