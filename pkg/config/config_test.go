package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "syntree.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[render]
font_size = 18.0
v_space = 48.0
monochrome = true
formats = ["svg", "json"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.FontSize != 18 || cfg.Render.VSpace != 48 {
		t.Errorf("geometry = (%v, %v), want (18, 48)", cfg.Render.FontSize, cfg.Render.VSpace)
	}
	if !cfg.Render.Monochrome {
		t.Error("monochrome not loaded")
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("formats = %v, want two entries", cfg.Render.Formats)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("a missing config file must not error, got %v", err)
	}
	if cfg.Render.FontSize != 0 || len(cfg.Render.Formats) != 0 {
		t.Errorf("missing file must yield the zero config, got %+v", cfg)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "[render\nfont_size = ")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestApplyPrecedence(t *testing.T) {
	cfg := Config{Render: Render{
		FontSize:   18,
		VSpace:     48,
		Monochrome: true,
		Formats:    []string{"svg"},
	}}

	// Flag-set values survive; zero values take the file's settings.
	opts := pipeline.Options{FontSize: 22}
	cfg.Apply(&opts)

	if opts.FontSize != 22 {
		t.Errorf("FontSize = %v, flag value must win", opts.FontSize)
	}
	if opts.VSpace != 48 {
		t.Errorf("VSpace = %v, want the file's 48", opts.VSpace)
	}
	if !opts.Monochrome {
		t.Error("monochrome must apply")
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestApplyEmptyConfig(t *testing.T) {
	opts := pipeline.Options{}
	Config{}.Apply(&opts)
	if opts.FontSize != 0 || opts.VSpace != 0 || opts.HGap != 0 || opts.Margin != 0 {
		t.Errorf("empty config must not set geometry, got %+v", opts)
	}
	if opts.Monochrome || opts.TerminalLines || len(opts.Formats) != 0 {
		t.Errorf("empty config must not set flags, got %+v", opts)
	}
}
