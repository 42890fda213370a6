package geras

import (
	"strings"

	"github.com/matzehuels/blockrender/pkg/render/draw"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/pathobject"
	"github.com/matzehuels/blockrender/pkg/render/svgpath"
)

// highlightOffset keeps the highlight stroke inside the block outline.
const highlightOffset = 0.5

func drawHighlight(d *draw.Drawer) {
	hs, ok := d.Sink().(pathobject.HighlightSink)
	if !ok {
		return
	}
	hs.SetHighlightPath(HighlightPath(d.Info))
}

// HighlightPath returns the light edge along the top and left of a
// measured block. The output tab and start hat are left unlit.
func HighlightPath(ri *info.RenderInfo) string {
	c := ri.Constants
	var b strings.Builder

	x := ri.StartX + highlightOffset
	y := ri.StartY + highlightOffset
	radius := c.CornerRadius - highlightOffset
	rounded := !ri.TopLeftSquare() && radius > 0

	if !ri.HasHat() {
		if rounded {
			b.WriteString(svgpath.MoveTo(x, y+radius))
			b.WriteString(svgpath.Arc("a", "0 0,1", radius, svgpath.Point(radius, -radius)))
		} else {
			b.WriteString(svgpath.MoveTo(x, y))
		}
		b.WriteString(svgpath.LineOnAxis("H", ri.StartX+ri.TopRow.Width-highlightOffset))
	}

	leftTop := y
	if rounded {
		leftTop += radius
	}
	b.WriteString(svgpath.MoveTo(x, leftTop))
	if out := ri.OutputConnection; out != nil {
		b.WriteString(svgpath.LineOnAxis("V", out.ConnectionOffsetY))
		b.WriteString(svgpath.MoveTo(x, out.ConnectionOffsetY+out.Height))
	}
	b.WriteString(svgpath.LineOnAxis("V", ri.BottomRow.Baseline-highlightOffset))
	return b.String()
}
