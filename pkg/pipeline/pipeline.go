// Package pipeline runs a workspace document through the renderer.
//
// The pipeline has three stages, shared by the CLI and the render server:
//
//  1. Parse: decode the document into block stacks ([Parse])
//  2. Layout: measure, draw and position every block ([Layout])
//  3. Render: encode the scene into the requested formats ([Render])
//
// [Runner] strings the stages together and caches artifacts keyed by the
// document hash and every option that changes the output:
//
//	runner := pipeline.NewRunner(c, nil, builtin.NewRegistry(), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Document:       data,
//	    DocumentFormat: "yaml",
//	    Renderer:       "zelos",
//	    Formats:        []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/cache"
	"github.com/matzehuels/blockrender/pkg/errors"
	docio "github.com/matzehuels/blockrender/pkg/io"
	"github.com/matzehuels/blockrender/pkg/render/builtin"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/sink"
	"github.com/matzehuels/blockrender/pkg/theme"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

// Defaults shared by the CLI and the server.
const (
	DefaultRenderer = builtin.Default
	DefaultTheme    = theme.DefaultName
	DefaultScale    = sink.DefaultScale
	MaxScale        = sink.MaxScale
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	// FormatDOT is the Graphviz source of the block structure diagram.
	FormatDOT = "dot"
	// FormatStructure is the structure diagram rendered to SVG.
	FormatStructure = "structure"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatJSON, FormatDOT, FormatStructure}

// Options configures a pipeline run.
type Options struct {
	// Document is the raw workspace document.
	Document       []byte `json:"-"`
	DocumentFormat string `json:"document_format"`

	Renderer  string              `json:"renderer,omitempty"`
	Theme     string              `json:"theme,omitempty"`
	Overrides constants.Overrides `json:"overrides,omitempty"`
	RTL       bool                `json:"rtl,omitempty"`
	// Flow stacks top-level blocks vertically, ignoring document
	// coordinates.
	Flow bool `json:"flow,omitempty"`

	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background bool     `json:"background,omitempty"`
	NoText     bool     `json:"no_text,omitempty"`
	// Check parses emitted SVG back and fails the run if a block is missing.
	Check bool `json:"check,omitempty"`

	// Refresh skips cache lookups but still stores results.
	Refresh bool        `json:"refresh,omitempty"`
	Logger  *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Roots and Scene are nil when every artifact came from the cache.
	Roots []*block.Node
	Scene *workspace.Scene

	// DocHash is the SHA-256 of the document bytes.
	DocHash   string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	BlockCount int
	StackCount int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	// RenderHit is set when every requested artifact came from the cache.
	RenderHit bool
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %v)", format, ValidFormats)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDocumentFormat checks that a document format is supported.
func ValidateDocumentFormat(format string) error {
	if format == "yml" || slices.Contains(docio.Formats, format) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid document format: %q (must be one of: %v)", format, docio.Formats)
}

// ValidateAndSetDefaults checks required fields and applies defaults. It
// is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Document) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if err := ValidateDocumentFormat(o.DocumentFormat); err != nil {
		return err
	}
	if o.Renderer == "" {
		o.Renderer = DefaultRenderer
	}
	if err := errors.ValidateRendererName(o.Renderer); err != nil {
		return err
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = slices.Compact(slices.Clone(o.Formats))
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if !(o.Scale > 0) || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %v], got %v", MaxScale, o.Scale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SceneKeyOpts returns the cache key options for the measured scene.
// themeKey identifies the resolved theme contents.
func (o *Options) SceneKeyOpts(themeKey string) cache.SceneKeyOpts {
	return cache.SceneKeyOpts{
		Renderer:  o.Renderer,
		Theme:     themeKey,
		Overrides: o.Overrides,
		RTL:       o.RTL,
		Flow:      o.Flow,
	}
}

// ArtifactKeyOpts returns the cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Check: o.Check && format == FormatSVG}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if format == FormatSVG || format == FormatPNG {
		k.Background = o.Background
		k.NoText = o.NoText
	}
	return k
}
