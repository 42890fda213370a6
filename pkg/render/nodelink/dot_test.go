package nodelink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/theme"
)

func tree() []*block.Node {
	loop := block.NewNode("loop", "controls_repeat", block.WithPrevious(), block.WithNext(), block.WithStyle("loop_blocks"))
	loop.AddInput("TIMES", block.ValueInput)
	loop.AddInput("DO", block.StatementInput)
	n := block.NewNode("n", "math_number", block.WithOutput(), block.WithShadow())
	loop.Input("TIMES").Attach(n)
	body := block.NewNode("body", "text_print", block.WithPrevious(), block.WithNext())
	loop.Input("DO").Attach(body)
	after := block.NewNode("after", "text_print", block.WithPrevious())
	loop.AttachNext(after)
	return []*block.Node{loop}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(tree(), Options{})

	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `"loop" [label="controls_repeat"]`)
	assert.Contains(t, dot, `"loop" -> "n" [label="TIMES"]`)
	assert.Contains(t, dot, `"loop" -> "body" [label="DO"]`)
	assert.Contains(t, dot, `"loop" -> "after" [style=dashed, label="next"]`)
	assert.Contains(t, dot, `rounded,filled,dashed`)
}

func TestToDOTDetailedWithTheme(t *testing.T) {
	roots := tree()
	roots[0].SetRenderedSize(block.Size{Width: 120, Height: 80})
	th := theme.Modern()

	dot := ToDOT(roots, Options{Detailed: true, Theme: th})

	assert.Contains(t, dot, `id: loop\nstyle: loop_blocks\nsize: 120x80`)
	assert.Contains(t, dot, th.Style("loop_blocks").ColourPrimary)
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out, w, h := normalizeViewBox(in)

	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)
	assert.Contains(t, string(out), `viewBox="0 0 100.00 50.00" width="100" height="50"`)

	same, w, _ := normalizeViewBox([]byte("<svg/>"))
	assert.Equal(t, "<svg/>", string(same))
	assert.Zero(t, w)
}
