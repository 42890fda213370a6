package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/builtin"
	"github.com/matzehuels/blockrender/pkg/theme"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

func scene(t *testing.T, renderer string, rtl, selected bool) *workspace.Scene {
	t.Helper()
	r, err := builtin.NewRegistry().Init(renderer, theme.Classic(), nil)
	require.NoError(t, err)

	root := block.NewNode("set", "variables_set", block.WithPrevious(), block.WithNext(), block.WithStyle("variable_blocks"))
	root.AddInput("VALUE", block.ValueInput, block.NewTextField("", "set", false), block.NewTextField("VAR", "x & y", true))
	sum := block.NewNode("sum", "math_arithmetic", block.WithOutput("Number"), block.WithInline(), block.WithStyle("math_blocks"))
	sum.AddInput("A", block.ValueInput)
	sum.AddInput("B", block.ValueInput, block.NewTextField("OP", "+", false))
	root.Input("VALUE").Attach(sum)
	root.Selected = selected

	root.Walk(func(n *block.Node) bool {
		n.SetRTL(rtl)
		return true
	})
	return workspace.Render(r, []*block.Node{root})
}

func TestRenderSVG(t *testing.T) {
	s := scene(t, "thrasos", false, false)
	out := string(RenderSVG(s))

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `id="block-set"`)
	assert.Contains(t, out, `id="block-sum"`)
	assert.Equal(t, s.Count(), strings.Count(out, `class="block"`))
	assert.Contains(t, out, "x &amp; y")
	assert.NotContains(t, out, "scale(-1,1)")
	assert.NotContains(t, out, "block-selected")
}

func TestRenderSVGWithoutText(t *testing.T) {
	out := string(RenderSVG(scene(t, "thrasos", false, false), WithoutText(), WithBackground()))
	assert.NotContains(t, out, "<text")
	assert.Contains(t, out, "fill:"+theme.Classic().Components.WorkspaceBackgroundColour)
}

func TestRenderSVGRTLMirrorsBlocksOnly(t *testing.T) {
	s := scene(t, "geras", true, false)
	out := string(RenderSVG(s))

	assert.Equal(t, s.Count(), strings.Count(out, "scale(-1,1)"))
	assert.Contains(t, out, `class="block-fields"`)
	assert.Contains(t, out, `class="block-highlight"`)
}

func TestRenderSVGSelection(t *testing.T) {
	out := string(RenderSVG(scene(t, "thrasos", false, true), WithTheme(theme.Dark())))
	assert.Equal(t, 1, strings.Count(out, `class="block-selected"`))
	assert.Contains(t, out, theme.Dark().Components.SelectedGlowColour)
}

func TestRenderSVGInputOutlines(t *testing.T) {
	out := string(RenderSVG(scene(t, "zelos", false, false)))
	assert.Equal(t, 2, strings.Count(out, `class="block-outline"`))
	assert.Contains(t, out, `data-input="A"`)
}

func TestCheckSVG(t *testing.T) {
	for _, name := range builtin.NewRegistry().Names() {
		t.Run(name, func(t *testing.T) {
			s := scene(t, name, false, false)
			res, err := CheckSVG(RenderSVG(s), s.Count())
			require.NoError(t, err)
			assert.Equal(t, s.Count(), res.Blocks)
			assert.GreaterOrEqual(t, res.Paths, s.Count())
		})
	}

	s := scene(t, "thrasos", false, false)
	_, err := CheckSVG(RenderSVG(s), s.Count()+1)
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	s := scene(t, "thrasos", false, false)
	data, err := RenderPNG(s, WithScale(1.5))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int(math.Ceil(s.Width*1.5)), img.Bounds().Dx())
	assert.Equal(t, int(math.Ceil(s.Height*1.5)), img.Bounds().Dy())

	_, err = RenderPNG(s, WithScale(0))
	assert.Error(t, err)

	_, err = RenderPNG(s, WithScale(MaxScale*25))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "%v", err)
}

func TestToPNGRejectsHugeRasters(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10000" height="10000"></svg>`)
	_, err := ToPNG(svg, 10000, 10000, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "%v", err)

	_, err = ToPNG(svg, 10, 10, math.Inf(1))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "%v", err)
}

func TestRenderJSON(t *testing.T) {
	s := scene(t, "zelos", false, false)
	data, err := RenderJSON(s, WithJSONPaths(), WithJSONElements())
	require.NoError(t, err)

	var out jsonOutput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "zelos", out.Renderer)
	require.Len(t, out.Blocks, 2)

	set := out.Blocks[0]
	assert.Equal(t, "set", set.ID)
	assert.Equal(t, "top", set.Rows[0].Kind)
	assert.Equal(t, "bottom", set.Rows[len(set.Rows)-1].Kind)
	assert.Contains(t, set.Connections, "previous")
	assert.Contains(t, set.Connections, "input:VALUE")
	assert.NotEmpty(t, set.Path)

	sum := out.Blocks[1]
	assert.Equal(t, 1, sum.Depth)
	assert.Equal(t, "round", sum.OutputShape)
	assert.Len(t, sum.Outlines, 2)
}

func TestRenderJSONDefaultsAreCompact(t *testing.T) {
	data, err := RenderJSON(scene(t, "thrasos", false, false))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"path"`)
	assert.NotContains(t, string(data), `"elements"`)
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		1.5:     "1.5",
		2.005:   "2.01",
		-3.333:  "-3.33",
		-0.0001: "0",
		100:     "100",
	}
	for in, want := range tests {
		assert.Equal(t, want, num(in), "num(%v)", in)
	}
}
