package geras

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/pathobject"
	"github.com/matzehuels/blockrender/pkg/render/svgpath"
)

func TestConstants(t *testing.T) {
	c := NewConstants()
	assert.Equal(t, 1.0, c.DarkPathOffset)
	assert.Equal(t, -c.NotchHeight/2, c.StatementBottomSpacer)
}

func TestConnectedInlineInputIsInset(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(nil, nil))

	b := block.NewNode("add", "math_add", block.WithOutput("Number"), block.WithInline())
	b.AddInput("A", block.ValueInput)
	child := block.NewNode("n", "math_number", block.WithOutput("Number"))
	child.SetRenderedSize(block.Size{Width: 30, Height: 25})
	require.True(t, b.Input("A").Attach(child))

	ri := r.Measure(b)
	require.Len(t, ri.InputRows, 1)
	row := ri.InputRows[0]
	require.True(t, row.HasInlineInput)
	in := row.LastInput().InputConn()
	assert.Equal(t, 31.0, in.Width)
	assert.Equal(t, 26.0, in.Height)
}

func TestHighlightPath(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(nil, nil))

	b := block.NewNode("s", "print", block.WithPrevious(), block.WithNext())
	b.AddInput("", block.DummyInput, block.NewTextField("", "print", false))
	obj := pathobject.New()
	ri := r.Render(b, obj)

	hl := obj.Highlight()
	assert.True(t, strings.HasPrefix(hl, " M 0.5,8 a 7.5 7.5 0 0,1 7.5,-7.5 "), hl)
	assert.True(t, strings.HasSuffix(hl, svgpath.LineOnAxis("V", ri.BottomRow.Baseline-highlightOffset)), hl)
}

func TestHighlightSkipsOutputTab(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(nil, nil))

	b := block.NewNode("v", "value", block.WithOutput())
	b.AddInput("", block.DummyInput, block.NewTextField("", "x", false))
	obj := pathobject.New()
	ri := r.Render(b, obj)

	out := ri.OutputConnection
	hl := obj.Highlight()
	// Top edge, then the left edge above and below the tab.
	assert.Equal(t, 3, strings.Count(hl, " M "))
	assert.Contains(t, hl, svgpath.LineOnAxis("V", out.ConnectionOffsetY))
}

func TestHighlightNeedsHighlightSink(t *testing.T) {
	r := New()
	require.NoError(t, r.Init(nil, nil))
	b := block.NewNode("s", "print", block.WithPrevious())

	var sink plainSink
	assert.NotPanics(t, func() { r.Render(b, &sink) })
	assert.NotEmpty(t, sink.path)
}

type plainSink struct{ path string }

func (s *plainSink) SetPath(d string)                 { s.path = d }
func (s *plainSink) SetOutlinePath(string, string)    {}
func (s *plainSink) ApplyColour(pathobject.Colouring) {}
func (s *plainSink) FlipRTL()                         {}
func (s *plainSink) UpdateSelected(bool)              {}
func (s *plainSink) BeginDrawing()                    {}
func (s *plainSink) EndDrawing()                      {}
