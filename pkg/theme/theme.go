// Package theme holds block colouring and workspace component styles.
//
// A [Theme] maps block style names to [BlockStyle] colour triples. Colours
// may be given as hex strings or as a hue in degrees; missing secondary
// and tertiary colours are derived from the primary one.
package theme

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockrender/pkg/errors"
)

const (
	// hueSaturation and hueValue convert a bare hue into a colour.
	hueSaturation = 0.45
	hueValue      = 0.65

	secondaryBlend = 0.6
	tertiaryBlend  = 0.3

	fallbackColour = "#a5a5a5"
)

// BlockStyle is the colouring for one family of blocks.
type BlockStyle struct {
	ColourPrimary   string `toml:"colour_primary" yaml:"colour_primary" json:"colour_primary"`
	ColourSecondary string `toml:"colour_secondary" yaml:"colour_secondary" json:"colour_secondary"`
	ColourTertiary  string `toml:"colour_tertiary" yaml:"colour_tertiary" json:"colour_tertiary"`
	Hat             string `toml:"hat" yaml:"hat" json:"hat,omitempty"`
}

// ComponentStyles colour the parts of the canvas that are not blocks.
type ComponentStyles struct {
	WorkspaceBackgroundColour string `toml:"workspace_background_colour" yaml:"workspace_background_colour" json:"workspace_background_colour"`
	SelectedGlowColour        string `toml:"selected_glow_colour" yaml:"selected_glow_colour" json:"selected_glow_colour"`
	FieldTextColour           string `toml:"field_text_colour" yaml:"field_text_colour" json:"field_text_colour"`
	FieldBackgroundColour     string `toml:"field_background_colour" yaml:"field_background_colour" json:"field_background_colour"`
}

// Theme is a named set of block styles and component styles.
type Theme struct {
	Name        string                `toml:"name" yaml:"name" json:"name"`
	BlockStyles map[string]BlockStyle `toml:"block_styles" yaml:"block_styles" json:"block_styles"`
	Components  ComponentStyles       `toml:"components" yaml:"components" json:"components"`
	// StartHats draws a hat on every top-level block without a previous
	// or output connection.
	StartHats bool `toml:"start_hats" yaml:"start_hats" json:"start_hats"`
}

// Style resolves a block style by name. Unknown names fall back to a grey
// style so an unstyled block still renders.
func (t *Theme) Style(name string) BlockStyle {
	if s, ok := t.BlockStyles[name]; ok {
		return s
	}
	if hue, err := strconv.ParseFloat(name, 64); err == nil {
		s, _ := BlockStyle{ColourPrimary: strconv.FormatFloat(hue, 'f', -1, 64)}.Normalize()
		return s
	}
	s, _ := BlockStyle{ColourPrimary: fallbackColour}.Normalize()
	return s
}

// StyleNames returns the block style names in sorted order.
func (t *Theme) StyleNames() []string {
	names := make([]string, 0, len(t.BlockStyles))
	for n := range t.BlockStyles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Normalize resolves every style to hex colours, deriving the secondary
// and tertiary colours when absent.
func (t *Theme) Normalize() error {
	if t.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "theme has no name")
	}
	for name, s := range t.BlockStyles {
		ns, err := s.Normalize()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "theme %q style %q", t.Name, name)
		}
		t.BlockStyles[name] = ns
	}
	if t.Components.WorkspaceBackgroundColour == "" {
		t.Components.WorkspaceBackgroundColour = "#ffffff"
	}
	if t.Components.SelectedGlowColour == "" {
		t.Components.SelectedGlowColour = "#fc3"
	}
	if t.Components.FieldTextColour == "" {
		t.Components.FieldTextColour = "#000000"
	}
	if t.Components.FieldBackgroundColour == "" {
		t.Components.FieldBackgroundColour = "#ffffff"
	}
	return nil
}

// Normalize returns s with all three colours as hex strings.
func (s BlockStyle) Normalize() (BlockStyle, error) {
	primary, err := ParseColour(s.ColourPrimary)
	if err != nil {
		return s, err
	}
	white := colorful.Color{R: 1, G: 1, B: 1}

	out := BlockStyle{ColourPrimary: primary.Hex(), Hat: s.Hat}
	if s.ColourSecondary == "" {
		out.ColourSecondary = primary.BlendRgb(white, secondaryBlend).Clamped().Hex()
	} else if c, err := ParseColour(s.ColourSecondary); err != nil {
		return s, err
	} else {
		out.ColourSecondary = c.Hex()
	}
	if s.ColourTertiary == "" {
		out.ColourTertiary = primary.BlendRgb(white, tertiaryBlend).Clamped().Hex()
	} else if c, err := ParseColour(s.ColourTertiary); err != nil {
		return s, err
	} else {
		out.ColourTertiary = c.Hex()
	}
	return out, nil
}

// ParseColour accepts "#rgb", "#rrggbb" or a hue in degrees.
func ParseColour(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidInput, "empty colour")
	}
	if hue, err := strconv.ParseFloat(s, 64); err == nil {
		return colorful.Hsv(hue, hueSaturation, hueValue), nil
	}
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid colour %q", s)
	}
	return c, nil
}
