package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("DATEPICK_CONFIG_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Picker != nil || cfg.TUI != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	o, err := cfg.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if o.Locale != "" || o.MinDate != nil {
		t.Fatalf("expected zero options, got %+v", o)
	}
}

func TestSetSaveLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEPICK_CONFIG_DIR", dir)

	cfg := &Config{}
	for _, kv := range [][2]string{
		{"locale", "en-US"},
		{"format", "DD/MM/YYYY"},
		{"firstWeekdaySunday", "true"},
		{"autoApply", "yes"},
		{"minDate", "2024-01-01"},
		{"maxDate", "2024-12-31"},
		{"theme", "Dark"},
	} {
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("set %s: %v", kv[0], err)
		}
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Fatalf("expected config.json written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	o, err := loaded.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if o.Locale != "en-US" || o.Format != "DD/MM/YYYY" || !o.FirstWeekdaySunday || !o.AutoApply || o.LegacyMask {
		t.Fatalf("unexpected options %+v", o)
	}
	if o.MinDate == nil || !o.MinDate.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected minDate %v", o.MinDate)
	}
}

func TestLoad_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEPICK_CONFIG_DIR", dir)
	yml := "picker:\n  locale: en-US\n  legacyMask: true\n  static: true\ntui:\n  theme: light\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"picker":{"locale":"pt-BR"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Picker == nil || cfg.Picker.Locale != "en-US" || !cfg.Picker.LegacyMask || !cfg.Picker.Static {
		t.Fatalf("expected YAML config, got %+v", cfg.Picker)
	}
	if cfg.TUI == nil || cfg.TUI.Theme != "light" {
		t.Fatalf("expected theme light, got %+v", cfg.TUI)
	}

	cfg.Picker.Format = "D MMMM YYYY"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Picker.Format != "D MMMM YYYY" {
		t.Fatalf("expected YAML save to persist format, got %q", again.Picker.Format)
	}
}

func TestSet_Rejects(t *testing.T) {
	cfg := &Config{}
	bad := [][2]string{
		{"minDate", "01/02/2024"},
		{"autoApply", "maybe"},
		{"format", "[none]"},
		{"theme", "neon"},
		{"colour", "red"},
	}
	for _, kv := range bad {
		if err := cfg.Set(kv[0], kv[1]); err == nil {
			t.Fatalf("expected Set(%q, %q) to fail", kv[0], kv[1])
		}
	}
}

func TestOptions_BadBoundInFile(t *testing.T) {
	cfg := &Config{Picker: &PickerConfig{MaxDate: "tomorrow"}}
	if _, err := cfg.Options(); err == nil {
		t.Fatalf("expected error for unparseable maxDate")
	}
}
