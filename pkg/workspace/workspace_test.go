package workspace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/builtin"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
	"github.com/matzehuels/blockrender/pkg/theme"
)

func label(text string) *block.TextField { return block.NewTextField("", text, false) }

func newRenderer(t *testing.T, name string) *renderer.Renderer {
	t.Helper()
	r, err := builtin.NewRegistry().Init(name, theme.Modern(), nil)
	require.NoError(t, err)
	return r
}

// program builds
//
//	if (a = b) do
//	  print
//	say
func program(rtl bool) *block.Node {
	ifBlock := block.NewNode("if", "controls_if", block.WithPrevious(), block.WithNext(), block.WithStyle("logic_blocks"))
	ifBlock.AddInput("IF0", block.ValueInput, label("if"))
	ifBlock.AddInput("DO0", block.StatementInput, label("do"))

	cmp := block.NewNode("cmp", "logic_compare", block.WithOutput("Boolean"), block.WithInline(), block.WithStyle("logic_blocks"))
	cmp.AddInput("A", block.ValueInput)
	cmp.AddInput("B", block.ValueInput, block.NewTextField("OP", "=", true))
	num := block.NewNode("num", "math_number", block.WithOutput("Number"), block.WithShadow(), block.WithStyle("math_blocks"))
	num.AddInput("", block.DummyInput, block.NewTextField("NUM", "42", true))
	cmp.Input("A").Attach(num)
	ifBlock.Input("IF0").Attach(cmp)

	printBlock := block.NewNode("print", "text_print", block.WithPrevious(), block.WithNext())
	printBlock.AddInput("", block.DummyInput, label("print"))
	ifBlock.Input("DO0").Attach(printBlock)

	say := block.NewNode("say", "text_print", block.WithPrevious(), block.WithNext())
	say.AddInput("", block.DummyInput, label("say"))
	ifBlock.AttachNext(say)

	if rtl {
		ifBlock.Walk(func(n *block.Node) bool {
			n.SetRTL(true)
			return true
		})
	}
	return ifBlock
}

func assertConnected(t *testing.T, parentX, parentY float64, pc *block.NodeConnection, childX, childY float64, cc *block.NodeConnection) {
	t.Helper()
	px, py := pc.Offset()
	cx, cy := cc.Offset()
	assert.InDelta(t, parentX+px, childX+cx, 1e-9, "x")
	assert.InDelta(t, parentY+py, childY+cy, 1e-9, "y")
}

func TestChildrenSitOnParentConnections(t *testing.T) {
	for _, name := range builtin.NewRegistry().Names() {
		for _, rtl := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/rtl=%v", name, rtl), func(t *testing.T) {
				root := program(rtl)
				scene := Render(newRenderer(t, name), []*block.Node{root})
				require.Equal(t, 5, scene.Count())

				get := func(id string) *Item {
					it, ok := scene.Find(id)
					require.True(t, ok, id)
					return it
				}
				ifIt, cmp, num, stmt, say := get("if"), get("cmp"), get("num"), get("print"), get("say")

				assertConnected(t, ifIt.X, ifIt.Y, ifIt.Block.Input("IF0").Connection().(*block.NodeConnection),
					cmp.X, cmp.Y, cmp.Block.OutputConn())
				assertConnected(t, cmp.X, cmp.Y, cmp.Block.Input("A").Connection().(*block.NodeConnection),
					num.X, num.Y, num.Block.OutputConn())
				assertConnected(t, ifIt.X, ifIt.Y, ifIt.Block.Input("DO0").Connection().(*block.NodeConnection),
					stmt.X, stmt.Y, stmt.Block.PreviousConn())
				assertConnected(t, ifIt.X, ifIt.Y, ifIt.Block.NextConn(),
					say.X, say.Y, say.Block.PreviousConn())

				assert.Equal(t, 0, ifIt.Depth)
				assert.Equal(t, 2, num.Depth)
			})
		}
	}
}

func TestParentsPrecedeChildren(t *testing.T) {
	scene := Render(newRenderer(t, "thrasos"), []*block.Node{program(false)})

	var ids []string
	for _, it := range scene.Items {
		ids = append(ids, it.Block.ID())
	}
	assert.Equal(t, []string{"if", "cmp", "num", "print", "say"}, ids)
}

func TestChildWidensParent(t *testing.T) {
	r := newRenderer(t, "thrasos")

	bare := block.NewNode("cmp", "logic_compare", block.WithOutput(), block.WithInline())
	bare.AddInput("A", block.ValueInput)
	empty := Render(r, []*block.Node{bare})

	withChild := block.NewNode("cmp", "logic_compare", block.WithOutput(), block.WithInline())
	withChild.AddInput("A", block.ValueInput)
	wide := block.NewNode("txt", "text", block.WithOutput())
	wide.AddInput("", block.DummyInput, label("a rather long piece of text"))
	withChild.Input("A").Attach(wide)
	full := Render(r, []*block.Node{withChild})

	e, _ := empty.Find("cmp")
	f, _ := full.Find("cmp")
	assert.Greater(t, f.Info.Width, e.Info.Width)
}

func TestFlowStacksVertically(t *testing.T) {
	a := block.NewNode("a", "noop", block.WithPrevious(), block.WithNext())
	b := block.NewNode("b", "noop", block.WithPrevious(), block.WithNext())

	scene := Render(newRenderer(t, "thrasos"), []*block.Node{a, b}, WithGap(10), WithMargin(5))

	ia, _ := scene.Find("a")
	ib, _ := scene.Find("b")
	assert.Equal(t, 5.0, ia.X)
	assert.Equal(t, 5.0, ia.Y)
	assert.InDelta(t, ia.Y+ia.Info.Height+10, ib.Y, 1e-9)
	assert.InDelta(t, ib.Y+ib.Info.Height+5, scene.Height, 1e-9)
}

func TestDocumentCoordinatesKeepRelativePlacement(t *testing.T) {
	a := block.NewNode("a", "noop", block.WithPrevious(), block.WithNext())
	a.X, a.Y = 100, 40
	b := block.NewNode("b", "noop", block.WithPrevious(), block.WithNext())
	b.X, b.Y = 300, 10

	scene := Render(newRenderer(t, "zelos"), []*block.Node{a, b})

	ia, _ := scene.Find("a")
	ib, _ := scene.Find("b")
	assert.InDelta(t, 200, ib.X-ia.X, 1e-9)
	assert.InDelta(t, -30, ib.Y-ia.Y, 1e-9)
	assert.Equal(t, DefaultMargin, ia.X)
	assert.Equal(t, DefaultMargin, ib.Y)
	assert.Equal(t, ib.X, b.X)
}

func TestCollapsedHidesChildren(t *testing.T) {
	root := program(false)
	root.SetCollapsed(true)

	scene := Render(newRenderer(t, "geras"), []*block.Node{root})

	_, ok := scene.Find("cmp")
	assert.False(t, ok)
	_, ok = scene.Find("say")
	assert.True(t, ok)
}

func TestHiddenInputChildrenSkipped(t *testing.T) {
	root := program(false)
	root.Input("IF0").SetVisible(false)

	scene := Render(newRenderer(t, "thrasos"), []*block.Node{root})
	assert.Equal(t, 3, scene.Count())
}

func TestShadowUsesParentTertiary(t *testing.T) {
	r := newRenderer(t, "thrasos")
	scene := Render(r, []*block.Node{program(false)})

	num, _ := scene.Find("num")
	parent := r.Constants().BlockStyle("logic_blocks")
	assert.Equal(t, parent.ColourTertiary, num.Path.Stroke())
	assert.Equal(t, r.Constants().BlockStyle("math_blocks").ColourSecondary, num.Path.Fill())
}

func TestSelection(t *testing.T) {
	root := program(false)
	root.Selected = true

	scene := Render(newRenderer(t, "thrasos"), []*block.Node{root})

	it, _ := scene.Find("if")
	overlay, ok := it.Path.Selected()
	assert.True(t, ok)
	assert.Equal(t, it.Path.Path(), overlay)

	say, _ := scene.Find("say")
	_, ok = say.Path.Selected()
	assert.False(t, ok)
}

func TestEmptyScene(t *testing.T) {
	scene := Render(newRenderer(t, "thrasos"), nil, WithMargin(3))
	assert.Equal(t, 0, scene.Count())
	assert.Equal(t, 6.0, scene.Width)
}
