package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // build version; "dev" enables the working directory rc
	OverridePath string
	// Home replaces the user's home directory, for tests.
	Home string
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first configuration file found, or returns defaults.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile parses path as YAML when it ends in .yaml or .yml, rc otherwise.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg *Config
	if isYAML(path) {
		cfg, err = ParseYAML(f)
	} else {
		cfg, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in the format its extension implies.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if isYAML(path) {
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}
	return os.WriteFile(path, []byte(cfg.String()), 0o644)
}

// Write prints cfg as rc, or YAML when asYAML is set.
func Write(w io.Writer, cfg *Config, asYAML bool) error {
	if !asYAML {
		_, err := io.WriteString(w, cfg.String())
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// UserConfigPath is where `config save` writes by default.
func (l *Loader) UserConfigPath() string {
	return filepath.Join(l.home(), ".config", "snacktime", "config.rc")
}

func (l *Loader) home() string {
	if l.Home != "" {
		return l.Home
	}
	home, _ := os.UserHomeDir()
	return home
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".snacktimerc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	dir := filepath.Join(l.home(), ".config", "snacktime")
	for _, name := range []string{"config.rc", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
