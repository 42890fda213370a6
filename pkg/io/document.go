package io

import (
	"path/filepath"
	"strings"
)

// Supported document formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Formats lists the accepted format names.
var Formats = []string{FormatYAML, FormatTOML, FormatJSON}

// Document is the serialized form of a workspace.
type Document struct {
	RTL    bool    `toml:"rtl,omitempty" yaml:"rtl,omitempty" json:"rtl,omitempty"`
	Blocks []Block `toml:"blocks" yaml:"blocks" json:"blocks"`
}

// Block is one serialized block and everything attached to it.
type Block struct {
	ID    string  `toml:"id,omitempty" yaml:"id,omitempty" json:"id,omitempty"`
	Type  string  `toml:"type" yaml:"type" json:"type"`
	Style string  `toml:"style,omitempty" yaml:"style,omitempty" json:"style,omitempty"`
	X     float64 `toml:"x,omitempty" yaml:"x,omitempty" json:"x,omitempty"`
	Y     float64 `toml:"y,omitempty" yaml:"y,omitempty" json:"y,omitempty"`

	Previous *Connection `toml:"previous,omitempty" yaml:"previous,omitempty" json:"previous,omitempty"`
	Next     *Connection `toml:"next,omitempty" yaml:"next,omitempty" json:"next,omitempty"`
	Output   *Connection `toml:"output,omitempty" yaml:"output,omitempty" json:"output,omitempty"`

	Inline          bool   `toml:"inline,omitempty" yaml:"inline,omitempty" json:"inline,omitempty"`
	Collapsed       bool   `toml:"collapsed,omitempty" yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Summary         string `toml:"summary,omitempty" yaml:"summary,omitempty" json:"summary,omitempty"`
	Shadow          bool   `toml:"shadow,omitempty" yaml:"shadow,omitempty" json:"shadow,omitempty"`
	InsertionMarker bool   `toml:"insertion_marker,omitempty" yaml:"insertion_marker,omitempty" json:"insertion_marker,omitempty"`
	Selected        bool   `toml:"selected,omitempty" yaml:"selected,omitempty" json:"selected,omitempty"`
	Hat             string `toml:"hat,omitempty" yaml:"hat,omitempty" json:"hat,omitempty"`
	// OutputShape is "hexagonal", "round" or "square".
	OutputShape string `toml:"output_shape,omitempty" yaml:"output_shape,omitempty" json:"output_shape,omitempty"`

	Icons  []Size  `toml:"icons,omitempty" yaml:"icons,omitempty" json:"icons,omitempty"`
	Inputs []Input `toml:"inputs,omitempty" yaml:"inputs,omitempty" json:"inputs,omitempty"`

	// NextBlock is the block chained below this one.
	NextBlock *Block `toml:"next_block,omitempty" yaml:"next_block,omitempty" json:"next_block,omitempty"`
}

// Connection declares a connection point and its type checks.
type Connection struct {
	Check []string `toml:"check,omitempty" yaml:"check,omitempty" json:"check,omitempty"`
}

// Input is one input slot.
type Input struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	// Type is "value", "statement", "dummy" (the default) or "end_row".
	Type   string   `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Align  string   `toml:"align,omitempty" yaml:"align,omitempty" json:"align,omitempty"`
	Hidden bool     `toml:"hidden,omitempty" yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Check  []string `toml:"check,omitempty" yaml:"check,omitempty" json:"check,omitempty"`
	Fields []Field  `toml:"fields,omitempty" yaml:"fields,omitempty" json:"fields,omitempty"`
	Block  *Block   `toml:"block,omitempty" yaml:"block,omitempty" json:"block,omitempty"`
}

// Field is a text field, or a fixed-size field when width and height are set.
type Field struct {
	Name     string  `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Text     string  `toml:"text,omitempty" yaml:"text,omitempty" json:"text,omitempty"`
	Editable bool    `toml:"editable,omitempty" yaml:"editable,omitempty" json:"editable,omitempty"`
	FlipRTL  bool    `toml:"flip_rtl,omitempty" yaml:"flip_rtl,omitempty" json:"flip_rtl,omitempty"`
	Width    float64 `toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"`
	Height   float64 `toml:"height,omitempty" yaml:"height,omitempty" json:"height,omitempty"`
}

// Size is an icon size.
type Size struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
}

// FormatFromPath returns the document format implied by a file extension,
// or "" when the extension is not recognized.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}
