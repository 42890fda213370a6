package zelos

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/draw"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
	"github.com/matzehuels/blockrender/pkg/render/pathobject"
	"github.com/matzehuels/blockrender/pkg/render/svgpath"
)

// NewDrawer creates the zelos drawer for a measured block.
func NewDrawer(b block.Block, ri *info.RenderInfo) *draw.Drawer {
	return draw.New(b, ri, draw.Hooks{
		Outline:        drawOutline,
		Left:           drawLeft,
		StatementInput: drawStatementInput,
		RightSideRow:   drawRightSideRow,
		InlineInput:    drawInlineInput,
		AfterDraw:      recordOutputShape,
	})
}

func drawOutline(d *draw.Drawer) {
	if !flatSided(d.Info) {
		d.DrawOutline()
		return
	}
	out := d.Info.OutputConnection
	top, bottom := d.Info.TopRow, d.Info.BottomRow

	d.PositionPreviousConnection()
	d.WriteOutline(svgpath.MoveBy(top.XPos, d.Info.StartY))
	d.WriteOutline(svgpath.LineOnAxis("h", top.Width))
	d.WriteOutline(out.Shape.Dyn.RightDown(out.Height))

	d.PositionNextConnection()
	d.WriteOutline(svgpath.LineOnAxis("V", bottom.Baseline))
	d.WriteOutline(svgpath.LineOnAxis("h", -bottom.Width))

	drawLeftDynamic(d)
}

func drawLeft(d *draw.Drawer) {
	if out := d.Info.OutputConnection; out != nil && out.IsDynamicShape {
		drawLeftDynamic(d)
		return
	}
	d.DrawLeft()
}

func drawLeftDynamic(d *draw.Drawer) {
	out := d.Info.OutputConnection
	d.PositionOutputConnection()
	d.WriteOutline(out.Shape.Up(out.Height))
	d.WriteOutline("z")
}

// drawStatementInput closes the C with a notch unless the nested stack
// already ends in a next connection that fills it.
func drawStatementInput(d *draw.Drawer, row *measurable.InputRow) {
	in := row.LastInput().InputConn()
	var notch string
	if !endsWithNext(in.ConnectedBlock) {
		notch = in.Shape.PathLeft
	}
	d.DrawStatementInput(row, notch)
}

func endsWithNext(b block.Block) bool {
	if b == nil {
		return false
	}
	for b.NextBlock() != nil {
		b = b.NextBlock()
	}
	return b.Next() != nil
}

// drawRightSideRow rounds the inside corners on the right of spacer rows
// that border a statement input.
func drawRightSideRow(d *draw.Drawer, row measurable.Rower) {
	r := row.RowBase()
	if r.Height <= 0 {
		return
	}
	spacer, ok := row.(*measurable.SpacerRow)
	if !ok || !(spacer.PrecedesStatement || spacer.FollowsStatement) {
		d.DrawRightSideRow(row)
		return
	}

	corners := d.Constants.InsideCorners
	remaining := spacer.Height
	if spacer.PrecedesStatement {
		remaining -= corners.RightHeight
	}
	if spacer.FollowsStatement {
		d.WriteOutline(corners.PathBottomRight)
	}
	if remaining > 0 {
		d.WriteOutline(svgpath.LineOnAxis("V", spacer.YPos+remaining))
	}
	if spacer.PrecedesStatement {
		d.WriteOutline(corners.PathTopRight)
	}
}

// drawInlineInput outlines an empty inline input as its own shape named
// after the input. Filled inputs are covered by their child.
func drawInlineInput(d *draw.Drawer, in *measurable.InlineInput) {
	d.PositionInlineInputConnection(in)
	if in.ConnectedBlock != nil || d.Info.IsInsertionMarker {
		return
	}

	width := in.Width - in.ConnectionWidth*2
	yPos := in.Centerline - in.Height/2
	connectionRight := in.XPos + in.ConnectionWidth

	shape := in.Shape
	var right, left string
	if shape.IsDynamic() {
		right, left = shape.Dyn.RightDown(in.Height), shape.Dyn.PathUp(in.Height)
	} else {
		right, left = svgpath.LineOnAxis("v", in.Height), svgpath.LineOnAxis("v", -in.Height)
	}

	path := svgpath.MoveTo(connectionRight, yPos) +
		svgpath.LineOnAxis("h", width) +
		right +
		svgpath.LineOnAxis("h", -width) +
		left +
		"z"
	d.Sink().SetOutlinePath(in.Input.Name(), path)
}

func recordOutputShape(d *draw.Drawer) {
	out := d.Info.OutputConnection
	if out == nil {
		return
	}
	if rec, ok := d.Sink().(pathobject.ShapeRecorder); ok {
		rec.SetOutputShape(out.Shape.Kind)
	}
}
