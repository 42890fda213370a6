// Package draw implements the draw pass.
//
// A [Drawer] walks a measured [info.RenderInfo] and emits the block
// outline as SVG path data, places fields and icons, and records every
// connection position on the block model. Renderer variants change
// individual steps through [Hooks] and call the exported base steps for
// everything they keep.
package draw

import (
	"strings"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
	"github.com/matzehuels/blockrender/pkg/render/pathobject"
	"github.com/matzehuels/blockrender/pkg/render/svgpath"
)

// Hooks replace individual draw steps. Nil hooks use the base step.
type Hooks struct {
	Outline        func(d *Drawer)
	Left           func(d *Drawer)
	StatementInput func(d *Drawer, row *measurable.InputRow)
	RightSideRow   func(d *Drawer, row measurable.Rower)
	InlineInput    func(d *Drawer, in *measurable.InlineInput)
	// AfterDraw runs once the path is set, before the pass is closed.
	AfterDraw func(d *Drawer)
}

// Drawer draws one measured block.
type Drawer struct {
	Block     block.Block
	Info      *info.RenderInfo
	Constants *constants.Provider

	hooks   Hooks
	sink    pathobject.Sink
	outline strings.Builder
	inline  strings.Builder
}

// New creates a drawer for a measured block.
func New(b block.Block, ri *info.RenderInfo, hooks Hooks) *Drawer {
	return &Drawer{Block: b, Info: ri, Constants: ri.Constants, hooks: hooks}
}

// Sink returns the sink of the pass in progress.
func (d *Drawer) Sink() pathobject.Sink { return d.sink }

// WriteOutline appends to the block outline.
func (d *Drawer) WriteOutline(frag string) { d.outline.WriteString(frag) }

// WriteInline appends to the inline-input holes path.
func (d *Drawer) WriteInline(frag string) { d.inline.WriteString(frag) }

// OutlinePath returns the outline written so far.
func (d *Drawer) OutlinePath() string { return d.outline.String() }

// InlinePath returns the inline holes written so far.
func (d *Drawer) InlinePath() string { return d.inline.String() }

// Draw runs the draw pass into sink. The block must already be measured.
func (d *Drawer) Draw(sink pathobject.Sink) {
	d.Info.Measure()
	d.sink = sink
	d.outline.Reset()
	d.inline.Reset()

	sink.BeginDrawing()
	d.drawOutline()
	d.DrawInternals()
	sink.SetPath(d.outline.String() + "\n" + d.inline.String())
	if d.Info.RTL {
		sink.FlipRTL()
	}
	d.recordSizeOnBlock()
	if d.hooks.AfterDraw != nil {
		d.hooks.AfterDraw(d)
	}
	sink.EndDrawing()
	d.sink = nil
}

func (d *Drawer) recordSizeOnBlock() {
	d.Block.SetRenderedSize(block.Size{Width: d.Info.WidthWithChildren, Height: d.Info.Height})
}

func (d *Drawer) drawOutline() {
	if d.hooks.Outline != nil {
		d.hooks.Outline(d)
		return
	}
	d.DrawOutline()
}

// DrawOutline draws the top, each middle row, the bottom and the left.
func (d *Drawer) DrawOutline() {
	d.DrawTop()
	rows := d.Info.Rows
	for _, row := range rows[1 : len(rows)-1] {
		r := row.RowBase()
		switch {
		case r.HasJaggedEdge:
			d.DrawJaggedEdge(row)
		case r.HasStatement:
			d.drawStatementInput(row.(*measurable.InputRow))
		case r.HasExternalInput:
			d.DrawValueInput(row)
		default:
			d.drawRightSideRow(row)
		}
	}
	d.DrawBottom()
	d.drawLeft()
}

// DrawTop draws the top edge, including corners, notch and hat.
func (d *Drawer) DrawTop() {
	top := d.Info.TopRow
	c := d.Constants
	d.PositionPreviousConnection()

	d.WriteOutline(svgpath.MoveBy(top.XPos, d.Info.StartY))
	for _, elem := range top.Elements {
		switch e := elem.(type) {
		case *measurable.RoundCorner:
			if e.Right {
				d.WriteOutline(c.OutsideCorners.TopRight)
			} else {
				d.WriteOutline(c.OutsideCorners.TopLeft)
			}
		case *measurable.PreviousConnection:
			d.WriteOutline(e.Shape.PathLeft)
		case *measurable.Hat:
			d.WriteOutline(c.StartHatShape.Path)
		case *measurable.InRowSpacer:
			d.WriteOutline(svgpath.LineOnAxis("h", e.Width))
		}
	}
	d.WriteOutline(svgpath.LineOnAxis("v", top.Height))
}

// DrawJaggedEdge draws the torn right edge of a collapsed block.
func (d *Drawer) DrawJaggedEdge(row measurable.Rower) {
	teeth := d.Constants.JaggedTeeth
	remainder := row.RowBase().Height - teeth.Height
	d.WriteOutline(teeth.Path + svgpath.LineOnAxis("v", remainder))
}

// DrawValueInput draws the tab of an external value input.
func (d *Drawer) DrawValueInput(row measurable.Rower) {
	r := row.RowBase()
	in := r.LastInput().InputConn()
	d.PositionExternalValueConnection(row)

	d.WriteOutline(svgpath.LineOnAxis("H", in.XPos+in.Width) +
		in.Shape.Down(in.Height) +
		svgpath.LineOnAxis("v", r.Height-in.ConnectionHeight))
}

func (d *Drawer) drawStatementInput(row *measurable.InputRow) {
	if d.hooks.StatementInput != nil {
		d.hooks.StatementInput(d, row)
		return
	}
	d.DrawStatementInput(row, "")
}

// DrawStatementInput draws the C-shaped mouth of a statement input.
// bottomNotch is drawn after the inner bottom corner.
func (d *Drawer) DrawStatementInput(row *measurable.InputRow, bottomNotch string) {
	in := row.LastInput().InputConn()
	corners := d.Constants.InsideCorners
	x := in.XPos + in.NotchOffset + in.Shape.Width

	innerTopLeft := in.Shape.PathRight +
		svgpath.LineOnAxis("h", -(in.NotchOffset-corners.Width)) +
		corners.PathTop
	innerHeight := row.Height - 2*corners.Height
	innerBottomLeft := corners.PathBottom +
		svgpath.LineOnAxis("h", in.NotchOffset-corners.Width) +
		bottomNotch

	d.WriteOutline(svgpath.LineOnAxis("H", x) +
		innerTopLeft +
		svgpath.LineOnAxis("v", innerHeight) +
		innerBottomLeft +
		svgpath.LineOnAxis("H", row.XPos+row.Width))

	d.PositionStatementInputConnection(row)
}

func (d *Drawer) drawRightSideRow(row measurable.Rower) {
	if d.hooks.RightSideRow != nil {
		d.hooks.RightSideRow(d, row)
		return
	}
	d.DrawRightSideRow(row)
}

// DrawRightSideRow draws the right edge of a row without inputs.
func (d *Drawer) DrawRightSideRow(row measurable.Rower) {
	r := row.RowBase()
	d.WriteOutline(svgpath.LineOnAxis("V", r.YPos+r.Height))
}

// DrawBottom draws the bottom edge right to left.
func (d *Drawer) DrawBottom() {
	bottom := d.Info.BottomRow
	c := d.Constants
	d.PositionNextConnection()

	var rightCornerYOffset float64
	var path strings.Builder
	for i := len(bottom.Elements) - 1; i >= 0; i-- {
		switch e := bottom.Elements[i].(type) {
		case *measurable.NextConnection:
			path.WriteString(e.Shape.PathRight)
		case *measurable.SquareCorner:
			if !e.Right {
				path.WriteString(svgpath.LineOnAxis("H", bottom.XPos))
			}
		case *measurable.RoundCorner:
			if e.Right {
				path.WriteString(c.OutsideCorners.BottomRight)
				rightCornerYOffset = c.OutsideCorners.RightHeight
			} else {
				path.WriteString(c.OutsideCorners.BottomLeft)
			}
		case *measurable.InRowSpacer:
			path.WriteString(svgpath.LineOnAxis("h", -e.Width))
		}
	}

	d.WriteOutline(svgpath.LineOnAxis("V", bottom.Baseline-rightCornerYOffset))
	d.WriteOutline(path.String())
}

func (d *Drawer) drawLeft() {
	if d.hooks.Left != nil {
		d.hooks.Left(d)
		return
	}
	d.DrawLeft()
}

// DrawLeft draws the left edge and closes the outline.
func (d *Drawer) DrawLeft() {
	out := d.Info.OutputConnection
	d.PositionOutputConnection()

	if out != nil {
		tabBottom := out.ConnectionOffsetY + out.Height
		d.WriteOutline(svgpath.LineOnAxis("V", tabBottom) + out.Shape.Up(d.Info.Height))
	}
	d.WriteOutline("z")
}

// DrawInternals draws inline input holes and places fields and icons.
func (d *Drawer) DrawInternals() {
	for _, row := range d.Info.Rows {
		for _, elem := range row.RowBase().Elements {
			switch e := elem.(type) {
			case *measurable.InlineInput:
				d.drawInlineInput(e)
			case *measurable.Field:
				d.LayoutField(e)
			case *measurable.Icon:
				d.LayoutIcon(e)
			}
		}
	}
}

func (d *Drawer) drawInlineInput(in *measurable.InlineInput) {
	if d.hooks.InlineInput != nil {
		d.hooks.InlineInput(d, in)
		return
	}
	d.DrawInlineInput(in)
}

// DrawInlineInput cuts the hole of an inline value input.
func (d *Drawer) DrawInlineInput(in *measurable.InlineInput) {
	width, height := in.Width, in.Height
	yPos := in.Centerline - height/2

	connectionTop := in.ConnectionOffsetY
	connectionBottom := in.ConnectionHeight + connectionTop
	connectionRight := in.XPos + in.ConnectionWidth

	d.WriteInline(svgpath.MoveTo(connectionRight, yPos) +
		svgpath.LineOnAxis("v", connectionTop) +
		in.Shape.Down(height) +
		svgpath.LineOnAxis("v", height-connectionBottom) +
		svgpath.LineOnAxis("h", width-in.ConnectionWidth) +
		svgpath.LineOnAxis("v", -height) +
		"z")

	d.PositionInlineInputConnection(in)
}

// LayoutField tells a field where it was placed.
func (d *Drawer) LayoutField(f *measurable.Field) {
	y := f.Centerline - f.Height/2
	x := d.Info.X(f.XPos, f.Width)
	f.Field.Place(x, y, d.Info.RTL && f.FlipRTL)
}

// LayoutIcon tells an icon where it was placed.
func (d *Drawer) LayoutIcon(i *measurable.Icon) {
	y := i.Centerline - i.Height/2
	i.Icon.Place(d.Info.X(i.XPos, i.Width), y)
}
