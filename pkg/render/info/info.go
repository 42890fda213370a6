// Package info implements the measure pass.
//
// A [RenderInfo] snapshots a block's structure into rows of measurables
// and computes every size and position the drawer needs. Measurement
// happens once per render; the drawer only reads the result.
package info

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
)

// Policy holds the layout rules a renderer variant may replace. Nil
// entries fall back to the defaults in this package.
type Policy struct {
	InRowSpacing    func(ri *RenderInfo, prev, next measurable.Measurable) float64
	SpacerRowHeight func(ri *RenderInfo, prev, next measurable.Rower) float64
	ElemCenterline  func(ri *RenderInfo, row measurable.Rower, elem measurable.Measurable) float64

	// RightSquareTop and RightSquareBottom decide the right-hand corners.
	// The defaults always draw them square.
	RightSquareTop    func(ri *RenderInfo) bool
	RightSquareBottom func(ri *RenderInfo) bool

	// AddInput places one input's element into a row.
	AddInput func(ri *RenderInfo, input block.Input, row *measurable.InputRow)

	// BeforeFinalize runs after alignment and before rows are positioned.
	BeforeFinalize func(ri *RenderInfo)
	// AfterFinalize runs once every size and position is known.
	AfterFinalize func(ri *RenderInfo)
}

// RenderInfo is the result of measuring one block.
type RenderInfo struct {
	Constants *constants.Provider
	Block     block.Block

	RTL               bool
	IsInline          bool
	IsCollapsed       bool
	IsInsertionMarker bool
	HasStatementInput bool

	Width             float64
	WidthWithChildren float64
	Height            float64
	// StatementEdge is the widest field run preceding a statement input.
	StatementEdge float64
	// StartX is where the block body begins, right of an output tab.
	StartX float64
	StartY float64

	OutputConnection *measurable.OutputConnection
	TopRow           *measurable.TopRow
	BottomRow        *measurable.BottomRow
	RightSide        *measurable.RightConnectionShape
	Rows             []measurable.Rower
	InputRows        []*measurable.InputRow

	// Inputs is the snapshot of visible inputs taken at construction.
	Inputs []block.Input

	policy   Policy
	measured bool
}

// New snapshots b. Call [RenderInfo.Measure] before reading any size.
func New(c *constants.Provider, b block.Block, p Policy) *RenderInfo {
	ri := &RenderInfo{
		Constants:         c,
		Block:             b,
		RTL:               b.RTL(),
		IsInline:          b.InputsInline() && !b.Collapsed(),
		IsCollapsed:       b.Collapsed(),
		IsInsertionMarker: b.InsertionMarker(),
		TopRow:            measurable.NewTopRow(c),
		BottomRow:         measurable.NewBottomRow(c),
		RightSide:         measurable.NewRightConnectionShape(),
		policy:            p,
	}
	if !ri.IsCollapsed {
		ri.Inputs = block.VisibleInputs(b)
	}
	if out := b.Output(); out != nil {
		ri.OutputConnection = measurable.NewOutputConnection(c, b, out)
	}
	return ri
}

// Policy returns the layout rules in effect.
func (ri *RenderInfo) Policy() Policy { return ri.policy }

// Measured reports whether Measure has run.
func (ri *RenderInfo) Measured() bool { return ri.measured }

// Measure runs the measure pass. It is idempotent.
func (ri *RenderInfo) Measure() {
	if ri.measured {
		return
	}
	ri.createRows()
	ri.addElemSpacing()
	ri.addRowSpacing()
	ri.computeBounds()
	ri.alignRowElements()
	ri.finalize()
	ri.measured = true
}

// X maps a left-to-right x position and width to the rendering
// direction. In RTL the element is mirrored about the block's centre.
func (ri *RenderInfo) X(x, width float64) float64 {
	if ri.RTL {
		return ri.Width - x - width
	}
	return x
}

// ConnectionX maps a connection point's x position to the rendering
// direction.
func (ri *RenderInfo) ConnectionX(x float64) float64 {
	if ri.RTL {
		return ri.Width - x
	}
	return x
}

// HasHat reports whether the block is drawn with a start hat.
func (ri *RenderInfo) HasHat() bool {
	b := ri.Block
	if b.Previous() != nil || b.Output() != nil {
		return false
	}
	if h := b.Hat(); h != "" {
		return h == "cap"
	}
	return ri.Constants.AddStartHats
}
