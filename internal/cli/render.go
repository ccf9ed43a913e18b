package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syntree-dev/syntree/pkg/config"
	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	expr          string  // inline bracket notation (alternative to a file argument)
	output        string  // output file path (or base path for multiple formats)
	fontSize      float64 // label font size in points
	vspace        float64 // vertical distance between tree levels
	hgap          float64 // minimum horizontal gap between subtrees
	margin        float64 // canvas margin around the tree
	terminalLines bool    // draw connector lines above all terminals
	mono          bool    // render without color
	graph         bool    // structural Graphviz view instead of the metric layout
	noCache       bool    // disable the artifact cache
	refresh       bool    // recompute even if a cached artifact exists
}

// renderCommand creates the render command for generating tree images.
//
// The bracket source comes from a file argument, from --expr, or from stdin
// when the argument is "-". Flags override the config file, which overrides
// the built-in defaults.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a bracket-notation tree to PNG, SVG, DOT, or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			source, err := readSource(input, opts.expr)
			if err != nil {
				return err
			}

			popts := pipeline.Options{
				Source:        source,
				FontSize:      opts.fontSize,
				VSpace:        opts.vspace,
				HGap:          opts.hgap,
				Margin:        opts.margin,
				TerminalLines: opts.terminalLines,
				Monochrome:    opts.mono,
				Graph:         opts.graph,
				Formats:       parseFormats(formatsStr),
				Refresh:       opts.refresh,
				Logger:        c.Logger,
			}
			if formatsStr == "" {
				popts.Formats = nil // let the config file pick, then default
			}
			if err := applyConfigFile(&popts); err != nil {
				return err
			}
			if len(popts.Formats) == 0 {
				popts.Formats = []string{pipeline.FormatPNG}
			}
			if err := pipeline.ValidateFormats(popts.Formats); err != nil {
				return err
			}

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Rendering tree")
			spinner.Start()
			result, err := runner.Execute(cmd.Context(), popts)
			if err != nil {
				spinner.StopWithError("Render failed")
				return err
			}
			spinner.Stop()

			paths, err := writeArtifacts(result.Artifacts, popts.Formats, opts.output, input)
			if err != nil {
				return err
			}

			printSuccess("Rendered %s", describeSource(input, opts.expr))
			for _, l := range result.Links {
				if !l.Drawable {
					printWarning("movement <%s> has no reachable head; line not drawn", l.Tail.Tail)
				}
			}
			for _, p := range paths {
				printFile(p)
			}
			printStats(result.Stats.NodeCount, result.Stats.LinkCount, result.CacheInfo.RenderHit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.expr, "expr", "e", "", "inline bracket notation instead of a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, dot, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "label font size in points")
	cmd.Flags().Float64Var(&opts.vspace, "spacing", 0, "vertical distance between tree levels")
	cmd.Flags().Float64Var(&opts.hgap, "hgap", 0, "minimum horizontal gap between subtrees")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "canvas margin around the tree")
	cmd.Flags().BoolVar(&opts.terminalLines, "terminal-lines", false, "draw connector lines above all terminals")
	cmd.Flags().BoolVar(&opts.mono, "mono", false, "render without color")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "render the structural Graphviz view instead of the metric layout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached artifact exists")

	return cmd
}

// readSource resolves the bracket source from --expr, stdin ("-"), or a file.
func readSource(input, expr string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	switch input {
	case "":
		return "", errors.New(errors.ErrCodeInvalidInput, "provide a file argument or --expr")
	case "-":
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", input)
			}
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", input)
		}
		return string(data), nil
	}
}

// describeSource names the input for status messages.
func describeSource(input, expr string) string {
	switch {
	case expr != "":
		return "expression"
	case input == "-":
		return "stdin"
	default:
		return input
	}
}

// applyConfigFile layers the user config file onto options still at their
// zero value. A missing file is fine; an unreadable home directory just
// skips the config layer.
func applyConfigFile(opts *pipeline.Options) error {
	path, err := configPath()
	if err != nil {
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.Apply(opts)
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input (or uses "tree"
// for inline expressions). If output ends in a format extension, that
// extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return "tree"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered artifact to disk and returns the
// written paths. A single format with an explicit --output goes to that
// exact path; otherwise files are named base.format.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	var paths []string

	if len(formats) == 1 && output != "" {
		if err := os.WriteFile(output, artifacts[formats[0]], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", output, err)
		}
		return []string{output}, nil
	}

	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
