// Package constants holds the sizes and shapes a renderer lays blocks
// out with.
//
// A [Provider] is built once per renderer per theme. Its numeric fields
// may be overridden before [Provider.Init] builds the shapes; after that
// the provider is treated as read-only by every measure and draw pass.
package constants

import (
	"math"
	"sort"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// Provider is the constants table of a renderer.
type Provider struct {
	NoPadding          float64
	SmallPadding       float64
	MediumPadding      float64
	MediumLargePadding float64
	LargePadding       float64

	// TallInputFieldOffsetY is the offset of fields in a row that also
	// holds a statement input.
	TallInputFieldOffsetY float64

	TabHeight          float64
	TabOffsetFromTop   float64
	TabVerticalOverlap float64
	TabWidth           float64

	NotchWidth                float64
	NotchHeight               float64
	NotchOffsetLeft           float64
	StatementInputNotchOffset float64

	MinBlockWidth          float64
	MinBlockHeight         float64
	EmptyBlockSpacerHeight float64
	// MinRowHeight floors the height of every content row.
	MinRowHeight float64

	DummyInputMinHeight       float64
	DummyInputShadowMinHeight float64

	CornerRadius float64

	StatementBottomSpacer     float64
	StatementInputPaddingLeft float64
	BetweenStatementPaddingY  float64

	TopRowMinHeight                  float64
	TopRowPrecedesStatementMinHeight float64
	BottomRowMinHeight               float64
	BottomRowAfterStatementMinHeight float64

	AddStartHats   bool
	StartHatHeight float64
	StartHatWidth  float64

	SpacerDefaultHeight float64

	EmptyInlineInputPadding   float64
	EmptyInlineInputHeight    float64
	ExternalValueInputPadding float64
	EmptyStatementInputHeight float64

	JaggedTeethHeight float64
	JaggedTeethWidth  float64

	// DarkPathOffset is the width of the shadow edge drawn by renderers
	// with a highlight pass.
	DarkPathOffset float64

	// MaxInlineWidth wraps inline inputs onto a new row once a row would
	// grow past it. Zero disables wrapping.
	MaxInlineWidth float64

	// GridUnit and MaxDynamicConnectionShapeWidth size dynamic shapes.
	GridUnit                       float64
	MaxDynamicConnectionShapeWidth float64

	FieldTextFontSize   float64
	FieldTextFontFamily string

	Notch          Shape
	PuzzleTab      Shape
	StartHatShape  Hat
	JaggedTeeth    Teeth
	InsideCorners  InsideCorners
	OutsideCorners OutsideCorners

	// Hexagonal, Rounded and Squared are set by renderers with dynamic
	// connection shapes.
	Hexagonal Shape
	Rounded   Shape
	Squared   Shape

	// Builder rebuilds the shapes from the current sizes.
	Builder func(p *Provider)
	// Selector picks the shape drawn for a connection.
	Selector func(p *Provider, b block.Block, c block.Connection) Shape

	Theme *theme.Theme

	initialized bool
}

// Init builds the shapes. It is idempotent.
func (p *Provider) Init() {
	if p.initialized {
		return
	}
	if p.Builder != nil {
		p.Builder(p)
	}
	p.initialized = true
}

// Initialized reports whether shapes have been built.
func (p *Provider) Initialized() bool { return p.initialized }

// Rebuild rebuilds the shapes after sizes changed.
func (p *Provider) Rebuild() {
	p.initialized = false
	p.Init()
}

// ShapeFor returns the shape drawn for connection c on block b.
func (p *Provider) ShapeFor(b block.Block, c block.Connection) Shape {
	if p.Selector == nil {
		return BaseShapeFor(p, b, c)
	}
	return p.Selector(p, b, c)
}

// SetTheme attaches a theme and picks up its start hat preference.
func (p *Provider) SetTheme(t *theme.Theme) {
	p.Theme = t
	if t != nil && t.StartHats {
		p.AddStartHats = true
	}
}

// BlockStyle resolves the colouring for a style name through the theme.
func (p *Provider) BlockStyle(name string) theme.BlockStyle {
	if p.Theme == nil {
		t, _ := theme.Get(theme.DefaultName)
		return t.Style(name)
	}
	return p.Theme.Style(name)
}

// Overrides replace named numeric constants. Keys are snake_case field
// names such as "corner_radius". Booleans use 0 and 1.
type Overrides map[string]float64

func (p *Provider) numbers() map[string]*float64 {
	return map[string]*float64{
		"no_padding":                            &p.NoPadding,
		"small_padding":                         &p.SmallPadding,
		"medium_padding":                        &p.MediumPadding,
		"medium_large_padding":                  &p.MediumLargePadding,
		"large_padding":                         &p.LargePadding,
		"tall_input_field_offset_y":             &p.TallInputFieldOffsetY,
		"tab_height":                            &p.TabHeight,
		"tab_offset_from_top":                   &p.TabOffsetFromTop,
		"tab_vertical_overlap":                  &p.TabVerticalOverlap,
		"tab_width":                             &p.TabWidth,
		"notch_width":                           &p.NotchWidth,
		"notch_height":                          &p.NotchHeight,
		"notch_offset_left":                     &p.NotchOffsetLeft,
		"statement_input_notch_offset":          &p.StatementInputNotchOffset,
		"min_block_width":                       &p.MinBlockWidth,
		"min_block_height":                      &p.MinBlockHeight,
		"empty_block_spacer_height":             &p.EmptyBlockSpacerHeight,
		"min_row_height":                        &p.MinRowHeight,
		"dummy_input_min_height":                &p.DummyInputMinHeight,
		"dummy_input_shadow_min_height":         &p.DummyInputShadowMinHeight,
		"corner_radius":                         &p.CornerRadius,
		"statement_bottom_spacer":               &p.StatementBottomSpacer,
		"statement_input_padding_left":          &p.StatementInputPaddingLeft,
		"between_statement_padding_y":           &p.BetweenStatementPaddingY,
		"top_row_min_height":                    &p.TopRowMinHeight,
		"top_row_precedes_statement_min_height": &p.TopRowPrecedesStatementMinHeight,
		"bottom_row_min_height":                 &p.BottomRowMinHeight,
		"bottom_row_after_statement_min_height": &p.BottomRowAfterStatementMinHeight,
		"start_hat_height":                      &p.StartHatHeight,
		"start_hat_width":                       &p.StartHatWidth,
		"spacer_default_height":                 &p.SpacerDefaultHeight,
		"empty_inline_input_padding":            &p.EmptyInlineInputPadding,
		"empty_inline_input_height":             &p.EmptyInlineInputHeight,
		"external_value_input_padding":          &p.ExternalValueInputPadding,
		"empty_statement_input_height":          &p.EmptyStatementInputHeight,
		"jagged_teeth_height":                   &p.JaggedTeethHeight,
		"jagged_teeth_width":                    &p.JaggedTeethWidth,
		"dark_path_offset":                      &p.DarkPathOffset,
		"max_inline_width":                      &p.MaxInlineWidth,
		"grid_unit":                             &p.GridUnit,
		"max_dynamic_connection_shape_width":    &p.MaxDynamicConnectionShapeWidth,
		"field_text_font_size":                  &p.FieldTextFontSize,
	}
}

// Keys lists every override key in sorted order.
func (p *Provider) Keys() []string {
	nums := p.numbers()
	keys := make([]string, 0, len(nums)+1)
	for k := range nums {
		keys = append(keys, k)
	}
	keys = append(keys, "add_start_hats")
	sort.Strings(keys)
	return keys
}

// signedConstants are offsets rather than sizes and may be negative.
var signedConstants = map[string]bool{
	"statement_bottom_spacer": true,
}

// Apply writes overrides into the provider and rebuilds the shapes.
// Unknown keys, non-finite values and negative sizes are rejected without
// modifying p.
func (p *Provider) Apply(o Overrides) error {
	if len(o) == 0 {
		return nil
	}
	nums := p.numbers()
	for k, v := range o {
		if k == "add_start_hats" {
			continue
		}
		if _, ok := nums[k]; !ok {
			return errors.New(errors.ErrCodeInvalidConstants, "unknown constant %q", k)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidConstants, "constant %q must be finite, got %v", k, v)
		}
		if v < 0 && !signedConstants[k] {
			return errors.New(errors.ErrCodeInvalidConstants, "constant %q must not be negative, got %v", k, v)
		}
	}
	for k, v := range o {
		if k == "add_start_hats" {
			p.AddStartHats = v != 0
			continue
		}
		*nums[k] = v
	}
	p.Rebuild()
	return nil
}

// Value returns the current value of an override key.
func (p *Provider) Value(key string) (float64, bool) {
	if key == "add_start_hats" {
		if p.AddStartHats {
			return 1, true
		}
		return 0, true
	}
	ptr, ok := p.numbers()[key]
	if !ok {
		return 0, false
	}
	return *ptr, true
}
