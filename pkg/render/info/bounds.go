package info

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
)

func (ri *RenderInfo) computeBounds() {
	var widestStatementRowFields, blockWidth, widestRowWithConnectedBlocks float64

	for _, row := range ri.Rows {
		row.Measure()
		r := row.RowBase()
		blockWidth = max(blockWidth, r.Width)
		if r.HasStatement {
			last := r.LastInput()
			inner := r.Width - last.Elem().Width
			widestStatementRowFields = max(widestStatementRowFields, inner)
		}
		widestRowWithConnectedBlocks = max(widestRowWithConnectedBlocks, r.WidthWithConnectedBlocks)
	}

	ri.StatementEdge = widestStatementRowFields
	ri.Width = max(blockWidth, ri.Constants.MinBlockWidth)
	for _, row := range ri.Rows {
		if r := row.RowBase(); r.HasStatement {
			r.StatementEdge = ri.StatementEdge
		}
	}

	ri.WidthWithChildren = max(ri.Width, widestRowWithConnectedBlocks)

	if ri.OutputConnection != nil {
		ri.StartX = ri.OutputConnection.Width
		ri.Width += ri.OutputConnection.Width
		ri.WidthWithChildren += ri.OutputConnection.Width
	}
}

func (ri *RenderInfo) alignRowElements() {
	for _, row := range ri.Rows {
		r := row.RowBase()
		if r.HasStatement {
			ri.alignStatementRow(row.(*measurable.InputRow))
			continue
		}
		desired := ri.desiredRowWidth(row)
		missing := desired - r.Width
		if missing > 0 {
			ri.addAlignmentPadding(row, missing)
		}
		if measurable.IsTopRow(row) || measurable.IsBottomRow(row) {
			r.WidthWithConnectedBlocks = r.Width
		}
	}
}

func (ri *RenderInfo) desiredRowWidth(_ measurable.Rower) float64 {
	return ri.Width - ri.StartX
}

// addAlignmentPadding widens the row's spacers so its elements honour
// the row alignment. Rows ending in an external input keep the input
// flush with the right edge.
func (ri *RenderInfo) addAlignmentPadding(row measurable.Rower, missing float64) {
	r := row.RowBase()
	firstSpacer := r.FirstSpacer()
	lastSpacer := r.LastSpacer()
	if r.HasExternalInput || r.HasStatement {
		r.WidthWithConnectedBlocks += missing
	}

	switch {
	case r.Align == block.AlignLeft && firstSpacer != nil && lastSpacer != nil:
		lastSpacer.Width += missing
	case r.Align == block.AlignCentre && firstSpacer != nil && lastSpacer != nil:
		firstSpacer.Width += missing / 2
		lastSpacer.Width += missing / 2
	case r.Align == block.AlignRight && firstSpacer != nil:
		firstSpacer.Width += missing
	case lastSpacer != nil:
		lastSpacer.Width += missing
	default:
		return
	}
	r.Width += missing
}

func (ri *RenderInfo) alignStatementRow(row *measurable.InputRow) {
	statement := row.LastInput()
	currentWidth := row.Width - statement.Elem().Width
	desired := ri.StatementEdge
	missing := desired - currentWidth
	if missing > 0 {
		ri.addAlignmentPadding(row, missing)
	}

	// Stretch the statement input to the right edge of the block.
	currentWidth = row.Width
	desired = ri.desiredRowWidth(row)
	statement.Elem().Width += desired - currentWidth
	statement.Elem().Height = max(statement.Elem().Height, row.Height)
	row.Width += desired - currentWidth
	row.WidthWithConnectedBlocks = max(row.Width, ri.StatementEdge+row.ConnectedBlockWidths)
}

func (ri *RenderInfo) finalize() {
	c := ri.Constants
	ri.padToMinHeight()
	if ri.policy.BeforeFinalize != nil {
		ri.policy.BeforeFinalize(ri)
	}

	var widest, yCursor float64
	for _, row := range ri.Rows {
		r := row.RowBase()
		r.YPos = yCursor
		r.XPos = ri.StartX
		yCursor += r.Height
		widest = max(widest, r.WidthWithConnectedBlocks)
		ri.recordElemPositions(row)
	}

	if ri.OutputConnection != nil {
		if next := ri.Block.NextBlock(); next != nil {
			widest = max(widest, block.StackSize(next, c.NotchHeight).Width)
		}
	}

	ri.BottomRow.Baseline = yCursor - ri.BottomRow.DescenderHeight
	ri.WidthWithChildren = widest + ri.StartX
	ri.Height = yCursor
	ri.StartY = ri.TopRow.Capline

	if ri.policy.AfterFinalize != nil {
		ri.policy.AfterFinalize(ri)
	}
}

// padToMinHeight grows the bottom row so the body, hat excluded, is
// never shorter than the minimum block height.
func (ri *RenderInfo) padToMinHeight() {
	var total float64
	for _, row := range ri.Rows {
		total += row.RowBase().Height
	}
	heightWithoutHat := total - ri.TopRow.AscenderHeight
	if diff := ri.Constants.MinBlockHeight - heightWithoutHat; diff > 0 {
		ri.BottomRow.Height += diff
	}
}

func (ri *RenderInfo) recordElemPositions(row measurable.Rower) {
	r := row.RowBase()
	xCursor := r.XPos
	for _, elem := range r.Elements {
		e := elem.Elem()
		if measurable.IsSpacer(elem) {
			e.Height = r.Height
		}
		e.XPos = xCursor
		e.Centerline = ri.elemCenterline(row, elem)
		xCursor += e.Width
	}
}

func (ri *RenderInfo) elemCenterline(row measurable.Rower, elem measurable.Measurable) float64 {
	if ri.policy.ElemCenterline != nil {
		return ri.policy.ElemCenterline(ri, row, elem)
	}
	return DefaultElemCenterline(ri, row, elem)
}
