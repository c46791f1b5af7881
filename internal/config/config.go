package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leoyouyang/snack-time/internal/brush"
	"github.com/leoyouyang/snack-time/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool `yaml:"save"`
	Copy bool `yaml:"copy"`
}

// Config holds the application configuration.
type Config struct {
	Brush          string
	Background     int
	Spacing        float64
	Jitter         float64
	Width          int
	Height         int
	Output         string
	SaveDir        string
	BackgroundsDir string
	Theme          string
	Shadow         bool
	Notify         Notify
	Themes         map[string]*theme.Theme
}

const (
	DefaultWidth   = 1024
	DefaultHeight  = 768
	DefaultSpacing = 10
	DefaultJitter  = 15
	maxDimension   = 1 << 14
)

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Brush:   "pringles",
		Spacing: DefaultSpacing,
		Jitter:  DefaultJitter,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Shadow:  true,
		Themes:  make(map[string]*theme.Theme),
	}
}

// Environment variables consulted by ApplyEnv.
const (
	EnvTheme = "SNACKTIME_THEME"
	EnvBrush = "SNACKTIME_BRUSH"
)

// ApplyEnv overrides fields from the environment. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := getenv(EnvBrush); v != "" {
		c.Brush = v
	}
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := brush.New(c.Brush, nil); err != nil {
		errs = append(errs, fmt.Errorf("brush: %w", err))
	}
	if c.Background < 0 {
		errs = append(errs, fmt.Errorf("background: must not be negative, got %d", c.Background))
	}
	if !(c.Spacing > 0) {
		errs = append(errs, fmt.Errorf("spacing: must be positive, got %v", c.Spacing))
	}
	if !(c.Jitter >= 0) {
		errs = append(errs, fmt.Errorf("jitter: must not be negative, got %v", c.Jitter))
	}
	if c.Width <= 0 || c.Width > maxDimension || c.Height <= 0 || c.Height > maxDimension {
		errs = append(errs, fmt.Errorf("size: %dx%d outside 1..%d", c.Width, c.Height, maxDimension))
	}
	return errors.Join(errs...)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "brush = %s\n", c.Brush)
	fmt.Fprintf(&sb, "background = %d\n", c.Background)
	fmt.Fprintf(&sb, "spacing = %v\n", c.Spacing)
	fmt.Fprintf(&sb, "jitter = %v\n", c.Jitter)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "shadow = %v\n", c.Shadow)
	for _, kv := range [][2]string{
		{"theme", c.Theme},
		{"output", c.Output},
		{"save_dir", c.SaveDir},
		{"backgrounds_dir", c.BackgroundsDir},
	} {
		if kv[1] != "" {
			fmt.Fprintf(&sb, "%s = %s\n", kv[0], kv[1])
		}
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	for _, name := range c.themeNames() {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Key, theme.FormatColor(f.Value))
		}
	}
	return sb.String()
}

func (c *Config) themeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
