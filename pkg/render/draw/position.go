package draw

import "github.com/matzehuels/blockrender/pkg/render/measurable"

// PositionInlineInputConnection records where a child plugs into an
// inline input.
func (d *Drawer) PositionInlineInputConnection(in *measurable.InlineInput) {
	if in.Model == nil {
		return
	}
	yPos := in.Centerline - in.Height/2
	x := in.XPos + in.ConnectionWidth + in.ConnectionOffsetX
	in.Model.SetOffsetInBlock(d.Info.ConnectionX(x), yPos+in.ConnectionOffsetY)
}

// PositionStatementInputConnection records where the first nested
// statement attaches.
func (d *Drawer) PositionStatementInputConnection(row *measurable.InputRow) {
	in := row.LastInput().InputConn()
	if in.Model == nil {
		return
	}
	x := row.XPos + row.StatementEdge + in.NotchOffset
	in.Model.SetOffsetInBlock(d.Info.ConnectionX(x), row.YPos)
}

// PositionExternalValueConnection records where a child hangs off the
// right edge.
func (d *Drawer) PositionExternalValueConnection(row measurable.Rower) {
	r := row.RowBase()
	in := r.LastInput().InputConn()
	if in.Model == nil {
		return
	}
	in.Model.SetOffsetInBlock(d.Info.ConnectionX(r.XPos+r.Width), r.YPos)
}

// PositionPreviousConnection records the notch on the top edge.
func (d *Drawer) PositionPreviousConnection() {
	top := d.Info.TopRow
	if top.Connection == nil {
		return
	}
	x := top.XPos + top.NotchOffset
	top.Connection.Model.SetOffsetInBlock(d.Info.ConnectionX(x), 0)
}

// PositionNextConnection records the tab on the bottom edge.
func (d *Drawer) PositionNextConnection() {
	bottom := d.Info.BottomRow
	if bottom.Connection == nil {
		return
	}
	x := bottom.Connection.XPos
	bottom.Connection.Model.SetOffsetInBlock(d.Info.ConnectionX(x), bottom.Baseline)
}

// PositionOutputConnection records the output tab on the left edge.
func (d *Drawer) PositionOutputConnection() {
	out := d.Info.OutputConnection
	if out == nil {
		return
	}
	x := d.Info.StartX + out.ConnectionOffsetX
	out.Model.SetOffsetInBlock(d.Info.ConnectionX(x), out.ConnectionOffsetY)
}
