package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leoyouyang/snack-time/internal/theme"
)

// Parse reads rc-format configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				// start from defaults so missing keys are fine
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		key, value, ok := splitKV(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case current != nil:
			err = current.Set(key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			where := "root section"
			if section != "" {
				where = "section [" + section + "]"
			}
			return nil, fmt.Errorf("line %d: error in %s: %w", lineNo, where, err)
		}
	}

	return cfg, scanner.Err()
}

// splitKV accepts "key = value" and "key: value"; '=' wins when both appear.
func splitKV(line string) (string, string, bool) {
	sep := "="
	if !strings.Contains(line, "=") {
		sep = ":"
	}
	key, value, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return strings.TrimSpace(key), value, true
}

func setRootField(cfg *Config, key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "brush":
		cfg.Brush = value
	case "background":
		cfg.Background, err = strconv.Atoi(value)
	case "spacing":
		cfg.Spacing, err = strconv.ParseFloat(value, 64)
	case "jitter":
		cfg.Jitter, err = strconv.ParseFloat(value, 64)
	case "width":
		cfg.Width, err = strconv.Atoi(value)
	case "height":
		cfg.Height, err = strconv.Atoi(value)
	case "shadow":
		cfg.Shadow, err = strconv.ParseBool(value)
	case "output":
		cfg.Output = value
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "backgrounds_dir":
		cfg.BackgroundsDir = value
	}
	if err != nil {
		return fmt.Errorf("invalid value for key %s: %w", key, err)
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
