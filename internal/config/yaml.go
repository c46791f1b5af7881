package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/leoyouyang/snack-time/internal/theme"
)

// yamlFile is the on-disk YAML layout. Pointer fields distinguish an absent
// key from a zero value so defaults survive.
type yamlFile struct {
	Brush          *string                      `yaml:"brush,omitempty"`
	Background     *int                         `yaml:"background,omitempty"`
	Spacing        *float64                     `yaml:"spacing,omitempty"`
	Jitter         *float64                     `yaml:"jitter,omitempty"`
	Width          *int                         `yaml:"width,omitempty"`
	Height         *int                         `yaml:"height,omitempty"`
	Output         string                       `yaml:"output,omitempty"`
	SaveDir        string                       `yaml:"save_dir,omitempty"`
	BackgroundsDir string                       `yaml:"backgrounds_dir,omitempty"`
	Theme          string                       `yaml:"theme,omitempty"`
	Shadow         *bool                        `yaml:"shadow,omitempty"`
	Notify         *Notify                      `yaml:"notify,omitempty"`
	Themes         map[string]map[string]string `yaml:"themes,omitempty"`
}

// ParseYAML reads YAML configuration from an io.Reader.
func ParseYAML(r io.Reader) (*Config, error) {
	var f yamlFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	cfg := New()
	setIf(&cfg.Brush, f.Brush)
	setIf(&cfg.Background, f.Background)
	setIf(&cfg.Spacing, f.Spacing)
	setIf(&cfg.Jitter, f.Jitter)
	setIf(&cfg.Width, f.Width)
	setIf(&cfg.Height, f.Height)
	setIf(&cfg.Shadow, f.Shadow)
	setIf(&cfg.Notify, f.Notify)
	cfg.Output = f.Output
	cfg.SaveDir = f.SaveDir
	cfg.BackgroundsDir = f.BackgroundsDir
	cfg.Theme = f.Theme

	for name, fields := range f.Themes {
		t := theme.Default()
		t.Name = name
		for k, v := range fields {
			if err := t.Set(k, v); err != nil {
				return nil, fmt.Errorf("theme %s: %w", name, err)
			}
		}
		cfg.Themes[name] = t
	}
	return cfg, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	f := yamlFile{
		Brush:          &c.Brush,
		Background:     &c.Background,
		Spacing:        &c.Spacing,
		Jitter:         &c.Jitter,
		Width:          &c.Width,
		Height:         &c.Height,
		Output:         c.Output,
		SaveDir:        c.SaveDir,
		BackgroundsDir: c.BackgroundsDir,
		Theme:          c.Theme,
		Shadow:         &c.Shadow,
		Notify:         &c.Notify,
	}
	if len(c.Themes) > 0 {
		f.Themes = make(map[string]map[string]string, len(c.Themes))
		for name, t := range c.Themes {
			fields := map[string]string{"Name": t.Name}
			for _, fl := range t.Fields() {
				fields[fl.Key] = theme.FormatColor(fl.Value)
			}
			f.Themes[name] = fields
		}
	}
	return yaml.Marshal(&f)
}
