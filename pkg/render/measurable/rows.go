package measurable

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
)

// Row is the geometry shared by all rows.
type Row struct {
	Type     Type
	Elements []Measurable

	Width     float64
	MinWidth  float64
	Height    float64
	MinHeight float64
	// WidthWithConnectedBlocks includes children hanging off external
	// value inputs and nested in statement inputs.
	WidthWithConnectedBlocks float64

	XPos float64
	YPos float64

	HasExternalInput bool
	HasStatement     bool
	HasInlineInput   bool
	HasDummyInput    bool
	HasJaggedEdge    bool

	// StatementEdge is the x position of a statement input's left wall.
	StatementEdge float64
	NotchOffset   float64

	Align    block.Align
	AlignSet bool
}

func newRow(c *constants.Provider, t Type) Row {
	return Row{Type: TypeRow | t, NotchOffset: c.NotchOffsetLeft}
}

// RowBase returns the shared geometry.
func (r *Row) RowBase() *Row { return r }

// LastInput returns the last input element, or nil.
func (r *Row) LastInput() Input {
	for i := len(r.Elements) - 1; i >= 0; i-- {
		if in, ok := r.Elements[i].(Input); ok {
			return in
		}
	}
	return nil
}

// FirstSpacer returns the first in-row spacer, or nil.
func (r *Row) FirstSpacer() *InRowSpacer {
	for _, e := range r.Elements {
		if s, ok := e.(*InRowSpacer); ok {
			return s
		}
	}
	return nil
}

// LastSpacer returns the last in-row spacer, or nil.
func (r *Row) LastSpacer() *InRowSpacer {
	for i := len(r.Elements) - 1; i >= 0; i-- {
		if s, ok := r.Elements[i].(*InRowSpacer); ok {
			return s
		}
	}
	return nil
}

// Rower is any row of a block.
type Rower interface {
	RowBase() *Row
	Measure()
	StartsWithElemSpacer() bool
	EndsWithElemSpacer() bool
}

// TopRow holds the top corners, the previous connection and the hat.
type TopRow struct {
	Row
	// Capline is the y offset where the block body starts, below the hat.
	Capline               float64
	AscenderHeight        float64
	HasPreviousConnection bool
	Connection            *PreviousConnection
}

func NewTopRow(c *constants.Provider) *TopRow {
	return &TopRow{Row: newRow(c, TypeTopRow)}
}

func (r *TopRow) StartsWithElemSpacer() bool { return false }
func (r *TopRow) EndsWithElemSpacer() bool   { return false }

func (r *TopRow) Measure() {
	var height, width, ascender float64
	for _, e := range r.Elements {
		width += e.Elem().Width
		if IsSpacer(e) {
			continue
		}
		if h, ok := e.(*Hat); ok {
			ascender = max(ascender, h.AscenderHeight)
		} else {
			height = max(height, e.Elem().Height)
		}
	}
	r.Width = max(r.MinWidth, width)
	r.Height = max(r.MinHeight, height) + ascender
	r.AscenderHeight = ascender
	r.Capline = ascender
	r.WidthWithConnectedBlocks = r.Width
}

// BottomRow holds the bottom corners and the next connection.
type BottomRow struct {
	Row
	HasNextConnection bool
	Connection        *NextConnection
	// DescenderHeight is how far the next tab hangs below the baseline.
	DescenderHeight float64
	// Baseline is the y position of the block's bottom edge.
	Baseline float64
}

func NewBottomRow(c *constants.Provider) *BottomRow {
	return &BottomRow{Row: newRow(c, TypeBottomRow)}
}

func (r *BottomRow) StartsWithElemSpacer() bool { return false }
func (r *BottomRow) EndsWithElemSpacer() bool   { return false }

func (r *BottomRow) Measure() {
	var height, width, descender float64
	for _, e := range r.Elements {
		width += e.Elem().Width
		if IsSpacer(e) {
			continue
		}
		if IsNextConnection(e) {
			descender = max(descender, e.Elem().Height)
		} else {
			height = max(height, e.Elem().Height)
		}
	}
	r.Width = max(r.MinWidth, width)
	r.Height = max(r.MinHeight, height) + descender
	r.DescenderHeight = descender
	r.WidthWithConnectedBlocks = r.Width
}

// InputRow holds fields, icons and inputs.
type InputRow struct {
	Row
	ConnectedBlockWidths float64
}

func NewInputRow(c *constants.Provider) *InputRow {
	r := &InputRow{Row: newRow(c, TypeInputRow)}
	r.MinHeight = c.MinRowHeight
	return r
}

func (r *InputRow) StartsWithElemSpacer() bool { return true }

func (r *InputRow) EndsWithElemSpacer() bool {
	return !r.HasExternalInput && !r.HasStatement
}

func (r *InputRow) Measure() {
	r.Width = r.MinWidth
	r.Height = r.MinHeight
	r.ConnectedBlockWidths = 0
	for _, e := range r.Elements {
		r.Width += e.Elem().Width
		switch in := e.(type) {
		case *StatementInput:
			if in.ConnectedBlock != nil {
				r.ConnectedBlockWidths = in.ConnectedBlockWidth
			}
		case *ExternalValueInput:
			if in.ConnectedBlockWidth != 0 {
				r.ConnectedBlockWidths = in.ConnectedBlockWidth - in.ConnectionWidth
			}
		}
		if !IsSpacer(e) {
			r.Height = max(r.Height, e.Elem().Height)
		}
	}
	r.WidthWithConnectedBlocks = r.Width + r.ConnectedBlockWidths
}

// SpacerRow is vertical space between two rows.
type SpacerRow struct {
	Row
	FollowsStatement  bool
	PrecedesStatement bool
}

func NewSpacerRow(c *constants.Provider, height, width float64) *SpacerRow {
	r := &SpacerRow{Row: newRow(c, TypeSpacer|TypeBetweenRowSpacer)}
	r.Height = height
	r.Width = width
	r.Elements = []Measurable{NewInRowSpacer(width)}
	return r
}

func (r *SpacerRow) StartsWithElemSpacer() bool { return true }
func (r *SpacerRow) EndsWithElemSpacer() bool   { return true }

// Measure is a no-op; spacer rows are sized at construction.
func (r *SpacerRow) Measure() {}

// IsTopRow reports whether r is the top row.
func IsTopRow(r Rower) bool {
	_, ok := r.(*TopRow)
	return ok
}

// IsBottomRow reports whether r is the bottom row.
func IsBottomRow(r Rower) bool {
	_, ok := r.(*BottomRow)
	return ok
}

// IsInputRow reports whether r holds inputs.
func IsInputRow(r Rower) bool {
	_, ok := r.(*InputRow)
	return ok
}

// IsSpacerRow reports whether r is vertical padding.
func IsSpacerRow(r Rower) bool {
	_, ok := r.(*SpacerRow)
	return ok
}
