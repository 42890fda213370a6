package constants

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
)

func TestNewBaseDefaults(t *testing.T) {
	p := NewBase()

	assert.True(t, p.Initialized())
	assert.Equal(t, 15.0, p.NotchWidth)
	assert.Equal(t, 4.0, p.NotchHeight)
	assert.Equal(t, 24.0, p.MinBlockHeight)
	assert.Equal(t, p.TabHeight, p.DummyInputMinHeight)
	assert.Equal(t, 26.0, p.EmptyInlineInputHeight)
	assert.Equal(t, p.MediumPadding, p.TopRowMinHeight)
	assert.Equal(t, p.LargePadding, p.BottomRowAfterStatementMinHeight)
}

func TestBaseShapes(t *testing.T) {
	p := NewBase()

	assert.Equal(t, " l 6,4  3,0  6,-4 ", p.Notch.PathLeft)
	assert.Equal(t, " l -6,4  -3,0  -6,-4 ", p.Notch.PathRight)
	assert.Equal(t, " c 0,10  -8,-8  -8,7.5  s 8,-2.5  8,7.5 ", p.PuzzleTab.PathDown)
	assert.Equal(t, " c 0,-10  -8,8  -8,-7.5  s 8,2.5  8,-7.5 ", p.PuzzleTab.PathUp)
	assert.Equal(t, " m 0,8 a 8 8 0 0,1 8,-8 ", p.OutsideCorners.TopLeft)
	assert.Equal(t, "a 8 8 0 0,0 -8,8 ", p.InsideCorners.PathTop)
	assert.Equal(t, " c 30,-15  70,-15  100,0 ", p.StartHatShape.Path)
	assert.Equal(t, " l 6,3  -12,6  6,3 ", p.JaggedTeeth.Path)
}

type conn struct{ typ block.ConnectionType }

func (c conn) Type() block.ConnectionType    { return c.typ }
func (c conn) Check() []string               { return nil }
func (c conn) Target() block.Block           { return nil }
func (c conn) SetOffsetInBlock(_, _ float64) {}

func TestShapeFor(t *testing.T) {
	p := NewBase()

	assert.Equal(t, KindPuzzle, p.ShapeFor(nil, conn{block.InputValue}).Kind)
	assert.Equal(t, KindPuzzle, p.ShapeFor(nil, conn{block.OutputValue}).Kind)
	assert.Equal(t, KindNotch, p.ShapeFor(nil, conn{block.NextStatement}).Kind)
	assert.Equal(t, KindNotch, p.ShapeFor(nil, conn{block.PreviousStatement}).Kind)

	assert.Panics(t, func() { p.ShapeFor(nil, conn{block.ConnectionType(99)}) })
}

func TestApplyOverrides(t *testing.T) {
	p := NewBase()

	require.NoError(t, p.Apply(Overrides{"notch_width": 10, "corner_radius": 4, "add_start_hats": 1}))
	assert.Equal(t, 10.0, p.NotchWidth)
	assert.Equal(t, 10.0, p.Notch.Width)
	assert.True(t, p.AddStartHats)
	assert.Contains(t, p.OutsideCorners.TopRight, "a 4 4")

	v, ok := p.Value("corner_radius")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)
}

func TestApplyRejectsBadOverrides(t *testing.T) {
	p := NewBase()

	err := p.Apply(Overrides{"notch_width": 9, "bogus": 1})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConstants))
	assert.Equal(t, 15.0, p.NotchWidth, "failed apply must not modify the provider")

	err = p.Apply(Overrides{"corner_radius": -1})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConstants))

	err = p.Apply(Overrides{"corner_radius": math.Inf(1)})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConstants))
}

func TestApplyAllowsSignedOffsets(t *testing.T) {
	p := NewBase()
	require.NoError(t, p.Apply(Overrides{"statement_bottom_spacer": -8}))
	assert.Equal(t, -8.0, p.StatementBottomSpacer)
}

func TestKeys(t *testing.T) {
	keys := NewBase().Keys()
	assert.Contains(t, keys, "add_start_hats")
	assert.Contains(t, keys, "max_inline_width")
	assert.IsIncreasing(t, keys)
}

func TestParseOverrides(t *testing.T) {
	o, err := ParseOverrides([]byte("corner_radius = 4\nlarge_padding = 12.5\nadd_start_hats = true\n"), "toml")
	require.NoError(t, err)
	assert.Equal(t, Overrides{"corner_radius": 4, "large_padding": 12.5, "add_start_hats": 1}, o)

	o, err = ParseOverrides([]byte("corner_radius: 2\n"), "yml")
	require.NoError(t, err)
	assert.Equal(t, Overrides{"corner_radius": 2}, o)

	_, err = ParseOverrides([]byte("corner_radius = \"big\"\n"), "toml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConstants))

	_, err = ParseOverrides(nil, "json")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestParseAssignments(t *testing.T) {
	o, err := ParseAssignments([]string{"notch_width=10", "min_block_height = 24"})
	require.NoError(t, err)
	assert.Equal(t, Overrides{"notch_width": 10, "min_block_height": 24}, o)

	o, err = ParseAssignments(nil)
	require.NoError(t, err)
	assert.Nil(t, o)

	_, err = ParseAssignments([]string{strings.Repeat("=", 3)})
	assert.Error(t, err)
}
