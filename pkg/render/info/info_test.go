package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
)

func provider(t *testing.T, o constants.Overrides) *constants.Provider {
	t.Helper()
	c := constants.NewBase()
	require.NoError(t, c.Apply(o))
	return c
}

func measure(c *constants.Provider, b block.Block) *RenderInfo {
	ri := New(c, b, Policy{})
	ri.Measure()
	return ri
}

func label(text string) *block.TextField { return block.NewTextField("", text, false) }

func fixtures() map[string]*block.Node {
	out := map[string]*block.Node{}

	stmt := block.NewNode("if", "controls_if", block.WithPrevious(), block.WithNext())
	stmt.AddInput("IF0", block.ValueInput, label("if"))
	stmt.AddInput("DO0", block.StatementInput, label("do"))
	child := block.NewNode("c1", "print", block.WithPrevious(), block.WithNext())
	child.SetRenderedSize(block.Size{Width: 90, Height: 30})
	stmt.Input("DO0").Attach(child)
	out["statement"] = stmt

	value := block.NewNode("cmp", "logic_compare", block.WithOutput("Boolean"), block.WithInline())
	value.AddInput("A", block.ValueInput)
	value.AddInput("B", block.ValueInput, block.NewTextField("OP", "=", true))
	out["inline value"] = value

	ext := block.NewNode("set", "variables_set", block.WithPrevious(), block.WithNext())
	ext.AddInput("VALUE", block.ValueInput, label("set x to"))
	ext.AddInput("OTHER", block.ValueInput, label("and")).SetAlign(block.AlignRight)
	arg := block.NewNode("n", "math_number", block.WithOutput("Number"))
	arg.SetRenderedSize(block.Size{Width: 40, Height: 25})
	ext.Input("VALUE").Attach(arg)
	out["external"] = ext

	hat := block.NewNode("start", "when_run", block.WithHat("cap"), block.WithNext())
	hat.AddInput("", block.DummyInput, label("when run")).SetAlign(block.AlignCentre)
	out["hat"] = hat

	empty := block.NewNode("empty", "noop", block.WithPrevious(), block.WithNext())
	out["empty"] = empty

	return out
}

func TestFieldScenarioSize(t *testing.T) {
	c := provider(t, constants.Overrides{
		"notch_width":           10,
		"notch_height":          4,
		"min_block_height":      24,
		"top_row_min_height":    0,
		"bottom_row_min_height": 0,
		"corner_radius":         0,
		"min_row_height":        0,
	})
	b := block.NewNode("b", "t")
	b.AddInput("", block.DummyInput, block.NewSizedField("F", block.Size{Width: 40, Height: 20}, false))

	ri := measure(c, b)

	// Leading padding, the field, then the trailing padding.
	assert.Equal(t, c.LargePadding+40+c.LargePadding, ri.Width)
	assert.Equal(t, 24.0, ri.Height)
}

func TestZeroInputBlock(t *testing.T) {
	c := provider(t, constants.Overrides{
		"corner_radius":             0,
		"notch_offset_left":         0,
		"empty_block_spacer_height": 0,
		"top_row_min_height":        0,
		"bottom_row_min_height":     0,
		"min_row_height":            0,
	})
	ri := measure(c, block.NewNode("z", "t"))

	require.Len(t, ri.Rows, 3)
	assert.True(t, measurable.IsTopRow(ri.Rows[0]))
	assert.True(t, measurable.IsSpacerRow(ri.Rows[1]))
	assert.True(t, measurable.IsBottomRow(ri.Rows[2]))
	assert.Empty(t, ri.InputRows)
	assert.Equal(t, c.MinBlockWidth, ri.Width)
	assert.Equal(t, c.MinBlockHeight, ri.Height)
}

func TestZeroInputBlockDefaults(t *testing.T) {
	c := constants.NewBase()
	ri := measure(c, fixtures()["empty"])

	require.Len(t, ri.Rows, 3)
	assert.GreaterOrEqual(t, ri.Width, c.MinBlockWidth)
	assert.GreaterOrEqual(t, ri.Height, c.MinBlockHeight)
}

func TestLayoutProperties(t *testing.T) {
	c := constants.NewBase()
	for name, b := range fixtures() {
		t.Run(name, func(t *testing.T) {
			ri := measure(c, b)

			var total float64
			for _, row := range ri.Rows {
				r := row.RowBase()
				total += r.Height
				assert.GreaterOrEqual(t, r.Height, 0.0)
				assert.InDelta(t, ri.Width-ri.StartX, r.Width, 1e-9, "row %s", r.Type)

				var sum float64
				for _, e := range r.Elements {
					assert.GreaterOrEqual(t, e.Elem().Width, 0.0)
					assert.GreaterOrEqual(t, e.Elem().Height, 0.0)
					sum += e.Elem().Width
				}
				assert.InDelta(t, r.Width, sum, 1e-9, "elements of %s", r.Type)

				if measurable.IsInputRow(row) {
					assert.GreaterOrEqual(t, r.Height, c.MinRowHeight)
				}
			}
			assert.InDelta(t, ri.Height, total, 1e-9)
			assert.GreaterOrEqual(t, ri.Width, c.MinBlockWidth)
			assert.GreaterOrEqual(t, ri.Height-ri.TopRow.AscenderHeight, c.MinBlockHeight)
			assert.GreaterOrEqual(t, ri.WidthWithChildren, ri.Width)
		})
	}
}

func TestMeasureIsDeterministic(t *testing.T) {
	c := constants.NewBase()
	b := fixtures()["statement"]

	first := measure(c, b)
	second := measure(c, b)
	first.Measure()

	assert.Equal(t, first.Width, second.Width)
	assert.Equal(t, first.Height, second.Height)
	assert.Equal(t, len(first.Rows), len(second.Rows))
}

func TestStatementInputOwnsRow(t *testing.T) {
	c := constants.NewBase()
	ri := measure(c, fixtures()["statement"])

	require.Len(t, ri.InputRows, 2)
	assert.True(t, ri.InputRows[0].HasExternalInput)
	assert.True(t, ri.InputRows[1].HasStatement)
	assert.True(t, ri.HasStatementInput)

	stmt := ri.InputRows[1].LastInput().(*measurable.StatementInput)
	assert.Equal(t, 30.0, stmt.Height)
	assert.Equal(t, ri.StatementEdge, ri.InputRows[1].StatementEdge)
	assert.Equal(t, c.BottomRowAfterStatementMinHeight, ri.BottomRow.MinHeight)
	assert.Equal(t, 90+ri.StatementEdge, ri.InputRows[1].WidthWithConnectedBlocks)
}

func TestExternalInputsBreakRows(t *testing.T) {
	c := constants.NewBase()
	ri := measure(c, fixtures()["external"])

	require.Len(t, ri.InputRows, 2)
	for _, row := range ri.InputRows {
		assert.True(t, row.HasExternalInput)
	}

	// The external input sits flush against the right edge.
	in := ri.InputRows[0].LastInput()
	assert.InDelta(t, ri.Width, in.Elem().XPos+in.Elem().Width, 1e-9)

	conn := in.InputConn()
	assert.Equal(t, 40.0, conn.ConnectedBlockWidth)
	assert.Equal(t, 40-conn.ConnectionWidth, ri.InputRows[0].ConnectedBlockWidths)
	assert.GreaterOrEqual(t, ri.WidthWithChildren, ri.Width+40-conn.ConnectionWidth)
}

func TestInlineInputsShareRow(t *testing.T) {
	c := constants.NewBase()
	ri := measure(c, fixtures()["inline value"])

	require.Len(t, ri.InputRows, 1)
	assert.True(t, ri.InputRows[0].HasInlineInput)
	assert.NotNil(t, ri.OutputConnection)
	assert.Equal(t, c.TabWidth, ri.StartX)
	assert.True(t, ri.TopLeftSquare())
	assert.True(t, ri.BottomLeftSquare())
}

func TestEndRowInputForcesBreak(t *testing.T) {
	c := constants.NewBase()
	b := block.NewNode("b", "t", block.WithInline())
	b.AddInput("A", block.EndRowInput, label("a"))
	b.AddInput("B", block.ValueInput, label("b"))
	b.AddInput("C", block.ValueInput, label("c"))

	ri := measure(c, b)
	require.Len(t, ri.InputRows, 2)
	assert.True(t, ri.InputRows[0].HasDummyInput)
	assert.True(t, ri.InputRows[1].HasInlineInput)
}

func TestMaxInlineWidthWraps(t *testing.T) {
	b := block.NewNode("b", "t", block.WithInline())
	for _, name := range []string{"A", "B", "C", "D"} {
		b.AddInput(name, block.ValueInput, label("item"))
	}

	unlimited := measure(constants.NewBase(), b)
	assert.Len(t, unlimited.InputRows, 1)

	c := provider(t, constants.Overrides{"max_inline_width": 100})
	wrapped := measure(c, b)
	assert.Greater(t, len(wrapped.InputRows), 1)
	for _, row := range wrapped.InputRows {
		inputs := 0
		for _, e := range row.Elements {
			if measurable.IsInput(e) {
				inputs++
			}
		}
		assert.GreaterOrEqual(t, inputs, 1)
	}
}

func TestCollapsedBlock(t *testing.T) {
	c := constants.NewBase()
	b := block.NewNode("b", "t", block.WithCollapsed(label("if ...")), block.WithPrevious())
	b.AddInput("DO", block.StatementInput)

	ri := measure(c, b)
	require.Len(t, ri.InputRows, 1)
	row := ri.InputRows[0]
	assert.True(t, row.HasJaggedEdge)
	assert.False(t, row.HasStatement)
	assert.Empty(t, ri.Inputs)

	var jagged int
	for _, e := range row.Elements {
		if measurable.IsJaggedEdge(e) {
			jagged++
		}
	}
	assert.Equal(t, 1, jagged)
}

func TestHiddenInputsSkipped(t *testing.T) {
	c := constants.NewBase()
	b := block.NewNode("b", "t")
	b.AddInput("A", block.DummyInput, label("shown"))
	b.AddInput("B", block.StatementInput).SetVisible(false)

	ri := measure(c, b)
	require.Len(t, ri.Inputs, 1)
	assert.False(t, ri.HasStatementInput)
}

func TestHatAndIcons(t *testing.T) {
	c := constants.NewBase()
	b := fixtures()["hat"]
	b2 := block.NewNode("i", "t", block.WithIcon(block.NewIcon(block.Size{Width: 17, Height: 17})))
	b2.AddInput("", block.DummyInput, label("x"))

	ri := measure(c, b)
	assert.True(t, ri.HasHat())
	assert.Equal(t, c.StartHatHeight, ri.TopRow.Capline)
	assert.Equal(t, c.StartHatHeight, ri.StartY)
	assert.True(t, ri.TopLeftSquare())

	ri2 := measure(c, b2)
	assert.True(t, measurable.IsIcon(ri2.InputRows[0].Elements[1]))
}

func TestStartHatsFromConstants(t *testing.T) {
	c := provider(t, constants.Overrides{"add_start_hats": 1})
	b := block.NewNode("b", "t", block.WithNext())
	assert.True(t, New(c, b, Policy{}).HasHat())

	noHat := block.NewNode("b", "t", block.WithNext(), block.WithHat("none"))
	assert.False(t, New(c, noHat, Policy{}).HasHat())
}

func TestAlignment(t *testing.T) {
	c := constants.NewBase()
	b := block.NewNode("b", "t")
	b.AddInput("L", block.DummyInput, label("a much longer label"))
	b.AddInput("C", block.DummyInput, label("mid")).SetAlign(block.AlignCentre)
	b.AddInput("R", block.DummyInput, label("r")).SetAlign(block.AlignRight)

	ri := measure(c, b)
	require.Len(t, ri.InputRows, 3)

	centre := ri.InputRows[1]
	first, last := centre.FirstSpacer(), centre.LastSpacer()
	assert.InDelta(t, first.Width, last.Width, 1e-9)

	right := ri.InputRows[2]
	field := right.Elements[1]
	trailing := right.Elements[2]
	assert.InDelta(t, ri.Width, field.Elem().XPos+field.Elem().Width+trailing.Elem().Width, 1e-9)
	assert.Equal(t, c.LargePadding, trailing.Elem().Width)
}

func TestRTLMirrorsPositions(t *testing.T) {
	c := constants.NewBase()
	b := fixtures()["statement"]
	ri := measure(c, b)

	assert.Equal(t, 10.0, ri.X(10, 5))
	ri.RTL = true
	assert.Equal(t, ri.Width-15, ri.X(10, 5))
	assert.Equal(t, ri.Width-10, ri.ConnectionX(10))
}

func TestSpacerRowHeights(t *testing.T) {
	c := constants.NewBase()
	ri := measure(c, fixtures()["statement"])

	// top, spacer, value row, spacer, statement row, spacer, bottom
	require.Len(t, ri.Rows, 7)
	assert.Equal(t, c.NoPadding, ri.Rows[1].RowBase().Height)
	assert.Equal(t, c.BetweenStatementPaddingY, ri.Rows[3].RowBase().Height)
	assert.True(t, ri.Rows[3].(*measurable.SpacerRow).PrecedesStatement)
	assert.True(t, ri.Rows[5].(*measurable.SpacerRow).FollowsStatement)
}

func TestCenterlines(t *testing.T) {
	c := constants.NewBase()
	ri := measure(c, fixtures()["statement"])

	stmtRow := ri.InputRows[1]
	for _, e := range stmtRow.Elements {
		if f, ok := e.(*measurable.Field); ok {
			assert.Equal(t, stmtRow.YPos+c.TallInputFieldOffsetY+f.Height/2, f.Centerline)
		}
	}

	next := ri.BottomRow.Connection
	require.NotNil(t, next)
	assert.Equal(t, ri.BottomRow.Baseline+next.Height/2, next.Centerline)
}
