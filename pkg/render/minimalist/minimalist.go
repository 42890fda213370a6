// Package minimalist is a bare renderer with uniform spacing. It is a
// starting point for custom renderers rather than a finished look.
package minimalist

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
)

// Name is the registry name of the renderer.
const Name = "minimalist"

// New returns an uninitialized minimalist renderer.
func New() *renderer.Renderer {
	return &renderer.Renderer{
		Name:           Name,
		Description:    "uniform spacing, base shapes",
		MakeConstants:  constants.NewBase,
		MakeRenderInfo: NewRenderInfo,
	}
}

// NewRenderInfo snapshots b with uniform spacing between elements and
// rows.
func NewRenderInfo(c *constants.Provider, b block.Block) *info.RenderInfo {
	return info.New(c, b, info.Policy{
		InRowSpacing:    inRowSpacing,
		SpacerRowHeight: spacerRowHeight,
	})
}

func inRowSpacing(ri *info.RenderInfo, prev, next measurable.Measurable) float64 {
	// Notches stay where the connection offsets say they are.
	if measurable.IsCorner(prev) && measurable.IsPreviousOrNextConnection(next) {
		return info.DefaultInRowSpacing(ri, prev, next)
	}
	return ri.Constants.MediumPadding
}

func spacerRowHeight(ri *info.RenderInfo, prev, next measurable.Rower) float64 {
	if measurable.IsTopRow(prev) && measurable.IsBottomRow(next) {
		return ri.Constants.EmptyBlockSpacerHeight
	}
	return ri.Constants.MediumPadding
}
