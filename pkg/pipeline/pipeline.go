// Package pipeline provides the core rendering pipeline for syntree.
//
// This package implements the complete parse → layout → resolve → render
// pipeline used by both the CLI and the HTTP API. Centralizing it keeps
// behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: bracket notation → linked tree
//  2. Layout: half-widths, coordinates, subtree depths
//  3. Resolve: movement tail/head pairs, routing, clearance
//  4. Render: encode the geometry in the requested formats
//
// Each render allocates its own tree and per-link scratch state; nothing
// is shared between runs, so one Runner can serve concurrent requests.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "[S [NP the dog] [VP barked]]",
//	    Formats: []string{"png"},
//	})
//	png := result.Artifacts["png"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/syntree-dev/syntree/pkg/cache"
	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/syntax"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run. The struct
// supports JSON serialization for API requests; zero values mean "use the
// default".
type Options struct {
	// Source is the bracket-notation input.
	Source string `json:"source"`

	// Geometry configuration; see layout.Config for semantics.
	FontSize  float64 `json:"font_size,omitempty"`
	VSpace    float64 `json:"v_space,omitempty"`
	HGap      float64 `json:"h_gap,omitempty"`
	Margin    float64 `json:"margin,omitempty"`
	PadTop    float64 `json:"pad_top,omitempty"`
	PadBottom float64 `json:"pad_bottom,omitempty"`

	// TerminalLines forces connector lines above all terminals.
	TerminalLines bool `json:"terminal_lines,omitempty"`

	// Monochrome disables the colored rendering mode. The inverted name
	// keeps "color on" as the zero value.
	Monochrome bool `json:"monochrome,omitempty"`

	// Formats are the requested output formats (default: png).
	Formats []string `json:"formats,omitempty"`

	// Graph selects the structural Graphviz view: png and svg artifacts
	// come from the Graphviz engine instead of the metric layout. The
	// json geometry export is not available in this mode.
	Graph bool `json:"graph,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent: calling it repeatedly has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source is required")
	}

	def := layout.DefaultConfig()
	if o.FontSize == 0 {
		o.FontSize = def.FontSize
	}
	if o.VSpace == 0 {
		o.VSpace = def.VSpace
	}
	if o.HGap == 0 {
		o.HGap = def.HGap
	}
	if o.Margin == 0 {
		o.Margin = def.Margin
	}
	if o.PadTop == 0 {
		o.PadTop = def.PadTop
	}
	if o.PadBottom == 0 {
		o.PadBottom = def.PadBottom
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// LayoutConfig converts the options to the layout engine's configuration.
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{
		FontSize:      o.FontSize,
		VSpace:        o.VSpace,
		HGap:          o.HGap,
		PadTop:        o.PadTop,
		PadBottom:     o.PadBottom,
		Margin:        o.Margin,
		TerminalLines: o.TerminalLines,
		Color:         !o.Monochrome,
	}
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:        format,
		Graph:         o.Graph,
		FontSize:      o.FontSize,
		VSpace:        o.VSpace,
		HGap:          o.HGap,
		Margin:        o.Margin,
		TerminalLines: o.TerminalLines,
		Color:         !o.Monochrome,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the parsed, laid-out tree.
	Root *syntax.Node

	// Links are the resolved movement lines (drawable or not).
	Links []*layout.Movement

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LinkCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}
