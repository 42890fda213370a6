package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockrender/pkg/errors"
	docio "github.com/matzehuels/blockrender/pkg/io"
	"github.com/matzehuels/blockrender/pkg/pipeline"
	"github.com/matzehuels/blockrender/pkg/render/constants"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file (single format) or base path
	formats     []string // svg, png, json, dot, structure
	inputFormat string   // yaml, toml or json; inferred from the file name when empty
	renderer    string
	theme       string   // built-in theme name or theme file
	constants   string   // constant override file
	set         []string // key=value constant overrides
	rtl         bool
	flow        bool
	scale       float64
	background  bool
	noText      bool
	check       bool
	refresh     bool
	cache       cacheOpts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a workspace document to SVG, PNG, JSON or DOT",
		Long: `Render measures and draws every block of a workspace document.

The document is YAML, TOML or JSON. Use "-" to read it from stdin together
with --input-format.`,
		Example: `  blockrender render program.yaml
  blockrender render program.yaml -r zelos -f svg,png --scale 3
  blockrender render program.toml --rtl --set notch_width=20 -o out.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot, structure (comma-separated)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "document format: yaml, toml, json (default: from file extension)")
	cmd.Flags().StringVarP(&opts.renderer, "renderer", "r", pipeline.DefaultRenderer, "renderer name (see 'blockrender renderers')")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", pipeline.DefaultTheme, "built-in theme name or theme file (.toml, .yaml)")
	cmd.Flags().StringVar(&opts.constants, "constants", "", "constant override file (.toml, .yaml)")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "override one constant, e.g. --set corner_radius=4 (repeatable)")
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "render right-to-left")
	cmd.Flags().BoolVar(&opts.flow, "flow", false, "stack top-level blocks vertically, ignoring document coordinates")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.background, "background", false, "paint the theme background")
	cmd.Flags().BoolVar(&opts.noText, "no-text", false, "omit field text")
	cmd.Flags().BoolVar(&opts.check, "check", false, "parse the SVG back and verify every block is present")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().BoolVar(&opts.cache.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.cache.redisURL, "redis", "", "cache artifacts in redis (redis://host:port/db)")

	return cmd
}

// runRender reads the document, runs the pipeline and writes one file per
// format.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	timer := newStageTimer(c.Logger)

	data, docFormat, err := readDocument(input, opts.inputFormat)
	if err != nil {
		return err
	}
	overrides, err := loadOverrides(opts.constants, opts.set)
	if err != nil {
		return err
	}
	timer.lap("read")

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering "+displayName(input))
	spinner.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Document:       data,
		DocumentFormat: docFormat,
		Renderer:       opts.renderer,
		Theme:          opts.theme,
		Overrides:      overrides,
		RTL:            opts.rtl,
		Flow:           opts.flow,
		Formats:        opts.formats,
		Scale:          opts.scale,
		Background:     opts.background,
		NoText:         opts.noText,
		Check:          opts.check,
		Refresh:        opts.refresh,
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	timer.lap("pipeline")

	base := basePath(opts.output, input)
	var written []string
	for _, format := range opts.formats {
		path := outputPath(base, format)
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return err
		}
		written = append(written, path)
	}

	timer.lap("write")

	c.ui.ok("Rendered %s with %s", displayName(input), opts.renderer)
	for i, path := range written {
		c.ui.artifact(path, len(result.Artifacts[opts.formats[i]]))
	}
	c.ui.summary(result)
	if input != "-" {
		c.ui.hint("Browse the measured rows", "blockrender inspect "+input+" -r "+opts.renderer)
	}
	timer.done("render complete")
	return nil
}

// readDocument loads input and resolves its format.
func readDocument(input, format string) ([]byte, string, error) {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		if format == "" {
			return nil, "", errors.New(errors.ErrCodeInvalidInput, "--input-format is required when reading stdin")
		}
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
		if os.IsNotExist(err) {
			return nil, "", errors.New(errors.ErrCodeFileNotFound, "no such file: %s", input)
		}
	}
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", input, err)
	}

	if format == "" {
		format = docio.FormatFromPath(input)
	}
	if format == "" {
		return nil, "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format of %s (use --input-format)", input)
	}
	return data, format, nil
}

// loadOverrides merges the override file with --set assignments, which win.
func loadOverrides(file string, set []string) (constants.Overrides, error) {
	out := constants.Overrides{}
	if file != "" {
		fromFile, err := constants.LoadOverrides(file)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, fromFile)
	}
	if len(set) > 0 {
		pairs, err := constants.ParseAssignments(set)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, pairs)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// outputExt maps formats to file suffixes.
var outputExt = map[string]string{
	pipeline.FormatSVG:       ".svg",
	pipeline.FormatPNG:       ".png",
	pipeline.FormatJSON:      "_geometry.json",
	pipeline.FormatDOT:       ".dot",
	pipeline.FormatStructure: "_structure.svg",
}

// basePath derives the base output path from the output and input file paths.
// Known output extensions are stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "workspace"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, known := range outputExt {
		if strings.HasSuffix(output, known) {
			return strings.TrimSuffix(output, known)
		}
	}
	if filepath.Ext(output) == ".json" {
		return strings.TrimSuffix(output, ".json")
	}
	return output
}

func outputPath(base, format string) string {
	return base + outputExt[format]
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func displayName(input string) string {
	if input == "-" {
		return "stdin"
	}
	return filepath.Base(input)
}
