// Package config loads user-level render defaults from a TOML file.
//
// The CLI looks for syntree.toml in the XDG config directory; every field
// is optional and overrides the built-in default, while command-line flags
// override the file in turn.
//
//	[render]
//	font_size = 18.0
//	v_space = 48.0
//	monochrome = true
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/pipeline"
)

// Config mirrors the file layout.
type Config struct {
	Render Render `toml:"render"`
}

// Render holds the render defaults section.
type Render struct {
	FontSize      float64  `toml:"font_size"`
	VSpace        float64  `toml:"v_space"`
	HGap          float64  `toml:"h_gap"`
	Margin        float64  `toml:"margin"`
	TerminalLines bool     `toml:"terminal_lines"`
	Monochrome    bool     `toml:"monochrome"`
	Formats       []string `toml:"formats"`
}

// Load reads a config file. A missing file is not an error and yields the
// zero config; a file that fails to parse is an ErrCodeInvalidConfig.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}

// Apply copies the file's non-zero settings onto pipeline options that are
// still at their zero value, preserving flag overrides already applied.
func (c Config) Apply(opts *pipeline.Options) {
	r := c.Render
	if opts.FontSize == 0 && r.FontSize != 0 {
		opts.FontSize = r.FontSize
	}
	if opts.VSpace == 0 && r.VSpace != 0 {
		opts.VSpace = r.VSpace
	}
	if opts.HGap == 0 && r.HGap != 0 {
		opts.HGap = r.HGap
	}
	if opts.Margin == 0 && r.Margin != 0 {
		opts.Margin = r.Margin
	}
	if r.TerminalLines {
		opts.TerminalLines = true
	}
	if r.Monochrome {
		opts.Monochrome = true
	}
	if len(opts.Formats) == 0 && len(r.Formats) > 0 {
		opts.Formats = r.Formats
	}
}
