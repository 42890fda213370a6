package pathobject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/theme"
)

var style = theme.BlockStyle{ColourPrimary: "#5b80a5", ColourSecondary: "#bdccdb", ColourTertiary: "#496684"}

func TestStaleOutlinesRemoved(t *testing.T) {
	o := New()

	o.BeginDrawing()
	o.SetOutlinePath("A", "M 0,0")
	o.SetOutlinePath("B", "M 1,1")
	o.SetOutlinePath("C", "M 2,2")
	o.EndDrawing()
	assert.Len(t, o.Outlines(), 3)

	o.BeginDrawing()
	o.SetOutlinePath("A", "M 0,0")
	o.SetOutlinePath("C", "M 3,3")
	o.EndDrawing()

	got := o.Outlines()
	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "M 3,3", got[1].D)
}

func TestSelectionOverlayFollowsPath(t *testing.T) {
	o := New()
	o.SetPath("M 0,0 z")

	o.UpdateSelected(true)
	o.UpdateSelected(true)
	d, ok := o.Selected()
	assert.True(t, ok)
	assert.Equal(t, "M 0,0 z", d)

	o.SetPath("M 1,1 z")
	d, _ = o.Selected()
	assert.Equal(t, "M 1,1 z", d)

	o.UpdateSelected(false)
	d, ok = o.Selected()
	assert.False(t, ok)
	assert.Empty(t, d)
}

func TestApplyColour(t *testing.T) {
	o := New()
	o.SetOutlinePath("X", "M 0,0")

	o.ApplyColour(Colouring{Style: style})
	assert.Equal(t, "#5b80a5", o.Fill())
	assert.Equal(t, "#496684", o.Stroke())
	assert.Equal(t, "#496684", o.Outlines()[0].Fill)

	o.SetOutlinePath("Y", "M 1,1")
	assert.Equal(t, "#496684", o.Outlines()[1].Fill)

	o.ApplyColour(Colouring{Style: style, Shadow: true})
	assert.Equal(t, "#bdccdb", o.Fill())
	assert.Equal(t, "none", o.Stroke())

	o.ApplyColour(Colouring{Style: style, Shadow: true, ParentTertiary: "#000000"})
	assert.Equal(t, "#000000", o.Stroke())
}

func TestFlipResetsEachPass(t *testing.T) {
	o := New()
	o.BeginDrawing()
	o.FlipRTL()
	assert.True(t, o.Drawing())
	o.EndDrawing()
	assert.True(t, o.RTL())

	o.BeginDrawing()
	o.EndDrawing()
	assert.False(t, o.RTL())
}

func TestCapabilities(t *testing.T) {
	var s Sink = New()

	h, ok := s.(HighlightSink)
	assert.True(t, ok)
	h.SetHighlightPath("M 0.5,0.5")

	r, ok := s.(ShapeRecorder)
	assert.True(t, ok)
	r.SetOutputShape(constants.KindRound)

	o := s.(*Object)
	assert.Equal(t, "M 0.5,0.5", o.Highlight())
	assert.Equal(t, constants.KindRound, o.OutputShape())
}
