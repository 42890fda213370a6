package zelos

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
)

// NewRenderInfo snapshots b with the zelos layout rules.
func NewRenderInfo(c *constants.Provider, b block.Block) *info.RenderInfo {
	return info.New(c, b, info.Policy{
		InRowSpacing:      inRowSpacing,
		SpacerRowHeight:   spacerRowHeight,
		ElemCenterline:    elemCenterline,
		RightSquareTop:    func(ri *info.RenderInfo) bool { return ri.TopLeftSquare() },
		RightSquareBottom: func(ri *info.RenderInfo) bool { return ri.BottomLeftSquare() },
		BeforeFinalize:    finalizeOutputConnection,
		AfterFinalize:     finalizeRightSide,
	})
}

// flatSided reports whether the block is a value block drawn with a
// dynamic shape on both sides.
func flatSided(ri *info.RenderInfo) bool {
	out := ri.OutputConnection
	return out != nil && out.IsDynamicShape && !ri.HasStatementInput && !ri.BottomRow.HasNextConnection
}

func inRowSpacing(ri *info.RenderInfo, prev, next measurable.Measurable) float64 {
	c := ri.Constants

	// Dynamic shapes supply their own padding at both ends of a row.
	if (prev == nil || next == nil) && flatSided(ri) {
		return c.NoPadding
	}
	if prev == nil && measurable.IsStatementInput(next) {
		return c.StatementInputPaddingLeft
	}
	if measurable.IsLeftRoundCorner(prev) && measurable.IsPreviousOrNextConnection(next) {
		return next.Elem().NotchOffset - c.CornerRadius
	}
	if measurable.IsLeftSquareCorner(prev) && measurable.IsPreviousOrNextConnection(next) {
		return next.Elem().NotchOffset
	}
	if measurable.IsLeftSquareCorner(prev) && measurable.IsHat(next) {
		return c.NoPadding
	}
	return c.MediumPadding
}

func spacerRowHeight(ri *info.RenderInfo, prev, next measurable.Rower) float64 {
	c := ri.Constants
	p, n := prev.RowBase(), next.RowBase()

	if measurable.IsTopRow(prev) && measurable.IsBottomRow(next) {
		return c.EmptyBlockSpacerHeight
	}

	follows := measurable.IsInputRow(prev) && p.HasStatement
	precedes := measurable.IsInputRow(next) && n.HasStatement
	if follows || precedes {
		height := max(c.NotchHeight, c.InsideCorners.RightHeight)
		if follows && precedes {
			return max(height, c.DummyInputMinHeight)
		}
		return height
	}

	if top, ok := prev.(*measurable.TopRow); ok {
		if !top.HasPreviousConnection && (ri.OutputConnection == nil || ri.HasStatementInput) {
			return abs(c.NotchHeight - c.CornerRadius)
		}
		return c.NoPadding
	}
	if bottom, ok := next.(*measurable.BottomRow); ok {
		if ri.OutputConnection == nil {
			return max(ri.TopRow.MinHeight, max(c.NotchHeight, c.CornerRadius)) - c.CornerRadius
		}
		if !bottom.HasNextConnection && ri.HasStatementInput {
			return abs(c.NotchHeight - c.CornerRadius)
		}
		return c.NoPadding
	}
	return c.MediumPadding
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// elemCenterline keeps the fields of a statement row level with the top
// of the C shape.
func elemCenterline(ri *info.RenderInfo, row measurable.Rower, elem measurable.Measurable) float64 {
	r := row.RowBase()
	if r.HasStatement && !measurable.IsSpacer(elem) && !measurable.IsStatementInput(elem) {
		return r.YPos + ri.Constants.EmptyStatementInputHeight/2
	}
	if measurable.IsSpacer(elem) || measurable.IsTopRow(row) || measurable.IsBottomRow(row) {
		return info.DefaultElemCenterline(ri, row, elem)
	}
	return r.YPos + r.Height/2
}

// finalizeOutputConnection sizes a dynamic output shape from the final
// block height and widens the block by its left and right halves.
func finalizeOutputConnection(ri *info.RenderInfo) {
	out := ri.OutputConnection
	if out == nil || !out.IsDynamicShape {
		return
	}

	var height float64
	for _, row := range ri.Rows {
		height += row.RowBase().Height
	}
	if ri.BottomRow.HasNextConnection {
		height -= ri.BottomRow.DescenderHeight
	}

	shape := out.Shape
	out.Height = shape.HeightFor(height)
	out.Width = shape.WidthFor(height)
	out.StartX = out.Width
	out.ConnectionOffsetY = shape.Dyn.OffsetY(out.Height)
	out.ConnectionOffsetX = shape.Dyn.OffsetX(out.Width)

	var rightWidth float64
	if !ri.HasStatementInput && !ri.BottomRow.HasNextConnection {
		rightWidth = out.Width
		ri.RightSide.Height = out.Height
		ri.RightSide.Width = rightWidth
		ri.RightSide.Centerline = out.Height / 2
		ri.RightSide.XPos = ri.Width + rightWidth
	}

	ri.StartX = out.Width
	ri.Width += out.Width + rightWidth
}

func finalizeRightSide(ri *info.RenderInfo) {
	ri.WidthWithChildren += ri.RightSide.Width
}
