package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datepick/internal/dates"
	"datepick/internal/picker"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults for the picker. Command-line flags override it.
type Config struct {
	Picker *PickerConfig `json:"picker,omitempty" yaml:"picker,omitempty"`

	// TUI holds optional preferences for the interactive picker.
	TUI *TUIConfig `json:"tui,omitempty" yaml:"tui,omitempty"`
}

type PickerConfig struct {
	Locale             string `json:"locale,omitempty" yaml:"locale,omitempty"`
	Format             string `json:"format,omitempty" yaml:"format,omitempty"`
	FirstWeekdaySunday bool   `json:"firstWeekdaySunday,omitempty" yaml:"firstWeekdaySunday,omitempty"`
	AutoApply          bool   `json:"autoApply,omitempty" yaml:"autoApply,omitempty"`
	LegacyMask         bool   `json:"legacyMask,omitempty" yaml:"legacyMask,omitempty"`
	Static             bool   `json:"static,omitempty" yaml:"static,omitempty"`

	// Bounds are YYYY-MM-DD.
	MinDate string `json:"minDate,omitempty" yaml:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty" yaml:"maxDate,omitempty"`
}

type TUIConfig struct {
	// Theme is "light", "dark" or "auto".
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.datepick).
	if v := strings.TrimSpace(os.Getenv("DATEPICK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datepick"), nil
}

// Path returns the config file in use. config.yaml wins when present;
// otherwise config.json (which Save writes).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	yml := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(yml); err == nil {
		return yml, nil
	}
	return filepath.Join(dir, "config.json"), nil
}

func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if strings.HasSuffix(path, ".yaml") {
		err = yaml.Unmarshal(b, &cfg)
	} else {
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes cfg in the format of the file Path selects.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var b []byte
	if strings.HasSuffix(path, ".yaml") {
		b, err = yaml.Marshal(cfg)
	} else {
		b, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, filepath.Base(path)+".*.tmp", path, b, 0o644)
}

// Options converts the stored defaults into picker options.
func (c *Config) Options() (picker.Options, error) {
	var o picker.Options
	if c == nil || c.Picker == nil {
		return o, nil
	}
	p := c.Picker
	o.Locale = p.Locale
	o.Format = p.Format
	o.FirstWeekdaySunday = p.FirstWeekdaySunday
	o.AutoApply = p.AutoApply
	o.LegacyMask = p.LegacyMask
	o.Static = p.Static
	var err error
	if o.MinDate, err = parseBound("minDate", p.MinDate); err != nil {
		return o, err
	}
	if o.MaxDate, err = parseBound("maxDate", p.MaxDate); err != nil {
		return o, err
	}
	return o, nil
}

func parseBound(key, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := dates.ParseISO(s)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", key, err)
	}
	t := d.Time()
	return &t, nil
}

// Set updates one picker key from its string form, as typed on the command line.
func (c *Config) Set(key, value string) error {
	if c.Picker == nil {
		c.Picker = &PickerConfig{}
	}
	p := c.Picker
	value = strings.TrimSpace(value)
	parseBool := func() (bool, error) {
		switch strings.ToLower(value) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0", "":
			return false, nil
		}
		return false, fmt.Errorf("%s: expected true or false, got %q", key, value)
	}
	var err error
	switch key {
	case "locale":
		p.Locale = value
	case "format":
		if value != "" {
			if err := dates.ValidatePattern(value); err != nil {
				return err
			}
		}
		p.Format = value
	case "firstWeekdaySunday":
		p.FirstWeekdaySunday, err = parseBool()
	case "autoApply":
		p.AutoApply, err = parseBool()
	case "legacyMask":
		p.LegacyMask, err = parseBool()
	case "static":
		p.Static, err = parseBool()
	case "minDate", "maxDate":
		if _, err := parseBound(key, value); err != nil {
			return err
		}
		if key == "minDate" {
			p.MinDate = value
		} else {
			p.MaxDate = value
		}
	case "theme":
		switch strings.ToLower(value) {
		case "", "auto", "light", "dark":
		default:
			return fmt.Errorf("theme: expected light, dark or auto, got %q", value)
		}
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.Theme = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return err
}

// Keys lists the names accepted by Set.
func Keys() []string {
	return []string{"locale", "format", "firstWeekdaySunday", "autoApply", "legacyMask", "static", "minDate", "maxDate", "theme"}
}
