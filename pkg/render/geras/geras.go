// Package geras is the legacy renderer: classic shapes with an embossed
// look. Connected inputs are inset by a dark shadow edge and a light
// highlight runs along the top and left of every block.
package geras

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/draw"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
)

// Name is the registry name of the renderer.
const Name = "geras"

// New returns an uninitialized geras renderer.
func New() *renderer.Renderer {
	return &renderer.Renderer{
		Name:           Name,
		Description:    "legacy embossed blocks with highlight edges",
		MakeConstants:  NewConstants,
		MakeRenderInfo: NewRenderInfo,
		MakeDrawer:     NewDrawer,
	}
}

// NewConstants returns the base constants with a one pixel shadow edge.
func NewConstants() *constants.Provider {
	p := constants.NewBase()
	p.DarkPathOffset = 1
	p.StatementBottomSpacer = -p.NotchHeight / 2
	p.Rebuild()
	return p
}

// NewRenderInfo snapshots b with fields pushed down in tall rows.
func NewRenderInfo(c *constants.Provider, b block.Block) *info.RenderInfo {
	return info.New(c, b, info.Policy{ElemCenterline: elemCenterline})
}

// NewDrawer creates a drawer that also emits the highlight path.
func NewDrawer(b block.Block, ri *info.RenderInfo) *draw.Drawer {
	return draw.New(b, ri, draw.Hooks{AfterDraw: drawHighlight})
}

// elemCenterline offsets fields and icons in rows holding inline or
// statement inputs so they line up with the top of the input.
func elemCenterline(ri *info.RenderInfo, row measurable.Rower, elem measurable.Measurable) float64 {
	if measurable.IsSpacer(elem) || measurable.IsTopRow(row) || measurable.IsBottomRow(row) {
		return info.DefaultElemCenterline(ri, row, elem)
	}
	r := row.RowBase()
	e := elem.Elem()
	switch {
	case measurable.IsField(elem) || measurable.IsIcon(elem):
		y := r.YPos + e.Height/2
		if (r.HasInlineInput || r.HasStatement) && e.Height+ri.Constants.TallInputFieldOffsetY <= r.Height {
			y += ri.Constants.TallInputFieldOffsetY
		}
		return y
	case measurable.IsInlineInput(elem):
		return r.YPos + e.Height/2
	default:
		return r.YPos + r.Height/2
	}
}
