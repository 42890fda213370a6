package info

import (
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
)

func (ri *RenderInfo) addElemSpacing() {
	for _, row := range ri.Rows {
		r := row.RowBase()
		old := r.Elements
		r.Elements = make([]measurable.Measurable, 0, 2*len(old)+1)

		if row.StartsWithElemSpacer() {
			r.Elements = append(r.Elements, measurable.NewInRowSpacer(ri.inRowSpacing(nil, first(old))))
		}
		if len(old) == 0 {
			continue
		}
		for i := 0; i < len(old)-1; i++ {
			r.Elements = append(r.Elements, old[i])
			r.Elements = append(r.Elements, measurable.NewInRowSpacer(ri.inRowSpacing(old[i], old[i+1])))
		}
		r.Elements = append(r.Elements, old[len(old)-1])
		if row.EndsWithElemSpacer() {
			r.Elements = append(r.Elements, measurable.NewInRowSpacer(ri.inRowSpacing(old[len(old)-1], nil)))
		}
	}
}

func first(ms []measurable.Measurable) measurable.Measurable {
	if len(ms) == 0 {
		return nil
	}
	return ms[0]
}

func (ri *RenderInfo) addRowSpacing() {
	old := ri.Rows
	ri.Rows = make([]measurable.Rower, 0, 2*len(old))
	for i, row := range old {
		ri.Rows = append(ri.Rows, row)
		if i != len(old)-1 {
			ri.Rows = append(ri.Rows, ri.makeSpacerRow(row, old[i+1]))
		}
	}
}

func (ri *RenderInfo) makeSpacerRow(prev, next measurable.Rower) *measurable.SpacerRow {
	spacer := measurable.NewSpacerRow(ri.Constants, ri.spacerRowHeight(prev, next), ri.spacerRowWidth(prev, next))
	if prev.RowBase().HasStatement {
		spacer.FollowsStatement = true
	}
	if next.RowBase().HasStatement {
		spacer.PrecedesStatement = true
	}
	return spacer
}

func (ri *RenderInfo) spacerRowWidth(_, _ measurable.Rower) float64 {
	return ri.Width - ri.StartX
}

func (ri *RenderInfo) inRowSpacing(prev, next measurable.Measurable) float64 {
	if ri.policy.InRowSpacing != nil {
		return ri.policy.InRowSpacing(ri, prev, next)
	}
	return DefaultInRowSpacing(ri, prev, next)
}

func (ri *RenderInfo) spacerRowHeight(prev, next measurable.Rower) float64 {
	if ri.policy.SpacerRowHeight != nil {
		return ri.policy.SpacerRowHeight(ri, prev, next)
	}
	return DefaultSpacerRowHeight(ri, prev, next)
}

// DefaultInRowSpacing is the horizontal gap between two neighbouring
// elements. Either side may be nil at the start or end of a row.
func DefaultInRowSpacing(ri *RenderInfo, prev, next measurable.Measurable) float64 {
	c := ri.Constants

	if prev == nil {
		if measurable.IsEditable(next) {
			return c.MediumPadding
		}
		if measurable.IsInlineInput(next) {
			return c.MediumLargePadding
		}
		if measurable.IsStatementInput(next) {
			return c.StatementInputPaddingLeft
		}
		return c.LargePadding
	}

	// A non-input before the end of the row.
	if !measurable.IsInput(prev) && next == nil {
		switch {
		case measurable.IsEditable(prev):
			return c.MediumPadding
		case measurable.IsIcon(prev):
			// Icon-only rows get extra room so the block shape stays readable.
			return c.LargePadding*2 + 1
		case measurable.IsHat(prev):
			return c.NoPadding
		case measurable.IsPreviousOrNextConnection(prev):
			return c.LargePadding
		case measurable.IsLeftRoundCorner(prev):
			return c.MinBlockWidth
		case measurable.IsJaggedEdge(prev):
			return c.NoPadding
		}
		return c.LargePadding
	}

	// An input before the end of the row.
	if measurable.IsInput(prev) && next == nil {
		switch {
		case measurable.IsExternalInput(prev):
			return c.NoPadding
		case measurable.IsInlineInput(prev):
			return c.LargePadding
		case measurable.IsStatementInput(prev):
			return c.NoPadding
		}
	}

	// A non-input before an input.
	if !measurable.IsInput(prev) && measurable.IsInput(next) {
		if measurable.IsEditable(prev) {
			if measurable.IsInlineInput(next) || measurable.IsExternalInput(next) {
				return c.SmallPadding
			}
		} else {
			if measurable.IsInlineInput(next) || measurable.IsExternalInput(next) {
				return c.MediumLargePadding
			}
			if measurable.IsStatementInput(next) {
				return c.LargePadding
			}
		}
		return c.LargePadding - 1
	}

	if measurable.IsIcon(prev) && next != nil && !measurable.IsInput(next) {
		return c.LargePadding
	}

	if measurable.IsInlineInput(prev) && measurable.IsField(next) {
		if measurable.IsEditable(next) {
			return c.MediumPadding
		}
		return c.LargePadding
	}

	if measurable.IsLeftSquareCorner(prev) && next != nil {
		if measurable.IsHat(next) {
			return c.NoPadding
		}
		if measurable.IsPreviousOrNextConnection(next) {
			return notchOffset(c, next)
		}
	}

	// The notch offset is measured from the block edge, so the round
	// corner's width is already part of it.
	if measurable.IsLeftRoundCorner(prev) && next != nil {
		return notchOffset(c, next) - c.CornerRadius
	}

	if measurable.IsField(prev) && measurable.IsField(next) &&
		measurable.IsEditable(prev) == measurable.IsEditable(next) {
		return c.LargePadding
	}

	if measurable.IsJaggedEdge(next) {
		return c.LargePadding
	}

	return c.MediumPadding
}

// notchOffset returns the notch offset of a connection element, or the
// block default for anything else.
func notchOffset(c *constants.Provider, m measurable.Measurable) float64 {
	if measurable.IsConnection(m) {
		return m.Elem().NotchOffset
	}
	return c.NotchOffsetLeft
}

// DefaultSpacerRowHeight is the vertical gap between two rows.
func DefaultSpacerRowHeight(ri *RenderInfo, prev, next measurable.Rower) float64 {
	c := ri.Constants
	p, n := prev.RowBase(), next.RowBase()

	// An empty block still needs some body.
	if measurable.IsTopRow(prev) && measurable.IsBottomRow(next) {
		return c.EmptyBlockSpacerHeight
	}
	// Top and bottom rows carry their own padding.
	if measurable.IsTopRow(prev) || measurable.IsBottomRow(next) {
		return c.NoPadding
	}
	if p.HasExternalInput && n.HasExternalInput {
		return c.LargePadding
	}
	if !p.HasStatement && n.HasStatement {
		return c.BetweenStatementPaddingY
	}
	if p.HasStatement && n.HasStatement {
		return c.LargePadding
	}
	if p.HasDummyInput || n.HasDummyInput {
		return c.LargePadding
	}
	return c.MediumPadding
}

// DefaultElemCenterline is the vertical centre of elem within row.
func DefaultElemCenterline(ri *RenderInfo, row measurable.Rower, elem measurable.Measurable) float64 {
	r := row.RowBase()
	e := elem.Elem()

	if measurable.IsSpacer(elem) {
		return r.YPos + e.Height/2
	}
	switch rr := row.(type) {
	case *measurable.BottomRow:
		baseline := r.YPos + r.Height - rr.DescenderHeight
		if measurable.IsNextConnection(elem) {
			return baseline + e.Height/2
		}
		return baseline - e.Height/2
	case *measurable.TopRow:
		if measurable.IsHat(elem) {
			return rr.Capline - e.Height/2
		}
		return rr.Capline + e.Height/2
	}

	if measurable.IsField(elem) && r.HasStatement {
		return r.YPos + ri.Constants.TallInputFieldOffsetY + e.Height/2
	}
	return r.YPos + r.Height/2
}
