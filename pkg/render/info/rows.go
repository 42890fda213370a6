package info

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
)

func (ri *RenderInfo) createRows() {
	ri.populateTopRow()
	ri.Rows = append(ri.Rows, ri.TopRow)

	active := measurable.NewInputRow(ri.Constants)
	ri.InputRows = append(ri.InputRows, active)

	for _, icon := range ri.Block.Icons() {
		if icon.Visible() {
			active.Elements = append(active.Elements, measurable.NewIcon(icon))
		}
	}

	if ri.IsCollapsed {
		ri.addCollapsedRow(active)
	}

	var last block.Input
	for _, input := range ri.Inputs {
		if ri.shouldStartNewRow(input, last) {
			ri.Rows = append(ri.Rows, active)
			active = measurable.NewInputRow(ri.Constants)
			ri.InputRows = append(ri.InputRows, active)
		}

		var fields []measurable.Measurable
		for _, f := range input.Fields() {
			fields = append(fields, measurable.NewField(f, input))
		}

		if ri.IsInline && ri.exceedsInlineWidth(active, input, fields) {
			ri.Rows = append(ri.Rows, active)
			active = measurable.NewInputRow(ri.Constants)
			ri.InputRows = append(ri.InputRows, active)
		}

		active.Elements = append(active.Elements, fields...)
		ri.addInput(input, active)
		last = input
	}

	if ri.IsCollapsed || len(active.Elements) > 0 || active.HasDummyInput {
		ri.Rows = append(ri.Rows, active)
	} else {
		ri.InputRows = ri.InputRows[:len(ri.InputRows)-1]
	}

	ri.populateBottomRow()
	ri.Rows = append(ri.Rows, ri.BottomRow)
}

func (ri *RenderInfo) addCollapsedRow(row *measurable.InputRow) {
	c := ri.Constants
	if f := ri.Block.CollapsedSummary(); f != nil {
		row.Elements = append(row.Elements, measurable.NewField(f, nil))
	}
	row.Elements = append(row.Elements, measurable.NewJaggedEdge(c))
	row.HasJaggedEdge = true
	row.HasDummyInput = true
	row.MinHeight = max(row.MinHeight, c.DummyInputMinHeight)
}

// shouldStartNewRow decides whether input begins a new row given the
// previous input placed.
func (ri *RenderInfo) shouldStartNewRow(input, last block.Input) bool {
	if last == nil {
		return false
	}
	if last.Type() == block.EndRowInput {
		return true
	}
	if input.Type() == block.StatementInput || last.Type() == block.StatementInput {
		return true
	}
	if input.Type() == block.ValueInput || input.Type() == block.DummyInput || input.Type() == block.EndRowInput {
		return !ri.IsInline
	}
	return false
}

// exceedsInlineWidth reports whether adding input to a non-empty inline
// row would push it past the configured maximum width.
func (ri *RenderInfo) exceedsInlineWidth(row *measurable.InputRow, input block.Input, fields []measurable.Measurable) bool {
	limit := ri.Constants.MaxInlineWidth
	if limit <= 0 || len(row.Elements) == 0 || input.Type() == block.StatementInput {
		return false
	}
	var width float64
	for _, e := range row.Elements {
		width += e.Elem().Width
	}
	for _, f := range fields {
		width += f.Elem().Width
	}
	if input.Type() == block.ValueInput {
		width += measurable.NewInlineInput(ri.Constants, ri.Block, input).Width
	}
	return width > limit
}

func (ri *RenderInfo) addInput(input block.Input, row *measurable.InputRow) {
	if ri.policy.AddInput != nil {
		ri.policy.AddInput(ri, input, row)
	} else {
		ri.addInputDefault(input, row)
	}
	if !row.AlignSet {
		row.Align = input.Align()
		row.AlignSet = true
	}
}

func (ri *RenderInfo) addInputDefault(input block.Input, row *measurable.InputRow) {
	c := ri.Constants
	switch input.Type() {
	case block.ValueInput:
		if ri.IsInline {
			row.Elements = append(row.Elements, measurable.NewInlineInput(c, ri.Block, input))
			row.HasInlineInput = true
		} else {
			row.Elements = append(row.Elements, measurable.NewExternalValueInput(c, ri.Block, input))
			row.HasExternalInput = true
		}
	case block.StatementInput:
		row.Elements = append(row.Elements, measurable.NewStatementInput(c, ri.Block, input))
		row.HasStatement = true
		ri.HasStatementInput = true
	case block.DummyInput, block.EndRowInput:
		minHeight := c.DummyInputMinHeight
		if ri.Block.Shadow() {
			minHeight = c.DummyInputShadowMinHeight
		}
		row.MinHeight = max(row.MinHeight, minHeight)
		row.HasDummyInput = true
	}
}

// AddInputDefault exposes the default input placement to policies that
// only override some input types.
func (ri *RenderInfo) AddInputDefault(input block.Input, row *measurable.InputRow) {
	ri.addInputDefault(input, row)
}

func (ri *RenderInfo) populateTopRow() {
	c := ri.Constants
	b := ri.Block
	top := ri.TopRow

	hasPrevious := b.Previous() != nil
	hasHat := ri.HasHat()
	leftSquare := b.Output() != nil || hasHat || b.PreviousBlock() != nil

	if leftSquare {
		top.Elements = append(top.Elements, measurable.NewSquareCorner(c, false))
	} else {
		top.Elements = append(top.Elements, measurable.NewRoundCorner(c, false))
	}

	if hasHat {
		top.Elements = append(top.Elements, measurable.NewHat(c))
	} else if hasPrevious {
		top.HasPreviousConnection = true
		top.Connection = measurable.NewPreviousConnection(c, b, b.Previous())
		top.Elements = append(top.Elements, top.Connection)
	}

	precedesStatement := len(ri.Inputs) > 0 && ri.Inputs[0].Type() == block.StatementInput
	if precedesStatement && !ri.IsCollapsed {
		top.MinHeight = max(top.MinHeight, c.TopRowPrecedesStatementMinHeight)
	} else {
		top.MinHeight = max(top.MinHeight, c.TopRowMinHeight)
	}
	top.MinHeight = max(top.MinHeight, c.MinRowHeight)

	rightSquare := true
	if ri.policy.RightSquareTop != nil {
		rightSquare = ri.policy.RightSquareTop(ri)
	}
	if rightSquare {
		top.Elements = append(top.Elements, measurable.NewSquareCorner(c, true))
	} else {
		top.Elements = append(top.Elements, measurable.NewRoundCorner(c, true))
	}
}

// TopLeftSquare reports the top-left corner decision.
func (ri *RenderInfo) TopLeftSquare() bool {
	return measurable.IsLeftSquareCorner(ri.TopRow.Elements[0])
}

// BottomLeftSquare reports whether the bottom-left corner is square.
func (ri *RenderInfo) BottomLeftSquare() bool {
	return ri.Block.Output() != nil || ri.Block.NextBlock() != nil
}

func (ri *RenderInfo) populateBottomRow() {
	c := ri.Constants
	b := ri.Block
	bottom := ri.BottomRow

	bottom.HasNextConnection = b.Next() != nil

	followsStatement := !ri.IsCollapsed && len(ri.Inputs) > 0 &&
		ri.Inputs[len(ri.Inputs)-1].Type() == block.StatementInput
	if followsStatement {
		bottom.MinHeight = c.BottomRowAfterStatementMinHeight
	} else {
		bottom.MinHeight = c.BottomRowMinHeight
	}
	bottom.MinHeight = max(bottom.MinHeight, c.MinRowHeight)

	if ri.BottomLeftSquare() {
		bottom.Elements = append(bottom.Elements, measurable.NewSquareCorner(c, false))
	} else {
		bottom.Elements = append(bottom.Elements, measurable.NewRoundCorner(c, false))
	}

	if bottom.HasNextConnection {
		bottom.Connection = measurable.NewNextConnection(c, b, b.Next())
		bottom.Elements = append(bottom.Elements, bottom.Connection)
	}

	rightSquare := true
	if ri.policy.RightSquareBottom != nil {
		rightSquare = ri.policy.RightSquareBottom(ri)
	}
	if rightSquare {
		bottom.Elements = append(bottom.Elements, measurable.NewSquareCorner(c, true))
	} else {
		bottom.Elements = append(bottom.Elements, measurable.NewRoundCorner(c, true))
	}
}
