package measurable

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
)

// InputConnection is the geometry shared by all inputs with a connection.
type InputConnection struct {
	Connection
	Input block.Input
	Align block.Align

	ConnectedBlock       block.Block
	ConnectedBlockWidth  float64
	ConnectedBlockHeight float64

	ConnectionOffsetX float64
	ConnectionOffsetY float64
	ConnectionWidth   float64
	ConnectionHeight  float64
}

// InputConn returns the shared input geometry.
func (in *InputConnection) InputConn() *InputConnection { return in }

// Input is implemented by every input element.
type Input interface {
	Measurable
	InputConn() *InputConnection
}

func newInputConnection(c *constants.Provider, b block.Block, input block.Input, t Type) InputConnection {
	in := InputConnection{
		Connection: newConnection(c, b, input.Connection(), TypeInput|t),
		Input:      input,
		Align:      input.Align(),
	}
	if child := block.ConnectedBlock(input); child != nil {
		in.ConnectedBlock = child
		size := block.StackSize(child, c.NotchHeight)
		in.ConnectedBlockWidth = size.Width
		in.ConnectedBlockHeight = size.Height
	}
	return in
}

// InlineInput is a value input drawn as a hole inside its row.
type InlineInput struct {
	InputConnection
}

func NewInlineInput(c *constants.Provider, b block.Block, input block.Input) *InlineInput {
	in := &InlineInput{InputConnection: newInputConnection(c, b, input, TypeInlineInput)}

	if in.ConnectedBlock == nil {
		in.Height = c.EmptyInlineInputHeight
		in.Width = c.EmptyInlineInputPadding
	} else {
		in.Width = in.ConnectedBlockWidth
		in.Height = in.ConnectedBlockHeight
	}

	if in.IsDynamicShape {
		in.ConnectionHeight = in.Shape.HeightFor(in.Height)
		in.ConnectionWidth = in.Shape.WidthFor(in.Height)
	} else {
		in.ConnectionHeight = in.Shape.Height
		in.ConnectionWidth = in.Shape.Width
	}
	if in.ConnectedBlock == nil {
		if in.IsDynamicShape {
			in.Width += in.ConnectionWidth * 2
		} else {
			in.Width += in.ConnectionWidth
		}
	}
	if in.IsDynamicShape {
		in.ConnectionOffsetY = in.Shape.Dyn.OffsetY(in.ConnectionHeight)
		in.ConnectionOffsetX = in.Shape.Dyn.OffsetX(in.ConnectionWidth)
	} else {
		in.ConnectionOffsetY = c.TabOffsetFromTop
	}

	// Connected children are inset by the width of the shadow edge.
	if in.ConnectedBlock != nil {
		in.Width += c.DarkPathOffset
		in.Height += c.DarkPathOffset
	}
	return in
}

// StatementInput is a C-shaped slot holding a statement stack.
type StatementInput struct {
	InputConnection
}

func NewStatementInput(c *constants.Provider, b block.Block, input block.Input) *StatementInput {
	in := &StatementInput{InputConnection: newInputConnection(c, b, input, TypeStatementInput)}

	if in.ConnectedBlock == nil {
		in.Height = c.EmptyStatementInputHeight
	} else {
		in.Height = in.ConnectedBlockHeight + c.StatementBottomSpacer + c.DarkPathOffset
	}
	in.Width = c.StatementInputNotchOffset + in.Shape.Width
	return in
}

// ExternalValueInput is a value input whose child hangs off the right edge.
type ExternalValueInput struct {
	InputConnection
}

func NewExternalValueInput(c *constants.Provider, b block.Block, input block.Input) *ExternalValueInput {
	in := &ExternalValueInput{InputConnection: newInputConnection(c, b, input, TypeExternalValueInput)}

	shapeHeight := in.Shape.HeightFor(c.TabHeight)
	if in.ConnectedBlock == nil {
		in.Height = shapeHeight
	} else {
		in.Height = in.ConnectedBlockHeight - c.TabOffsetFromTop - c.MediumPadding
	}
	in.ConnectionHeight = in.Shape.HeightFor(in.Height)
	in.ConnectionWidth = in.Shape.WidthFor(in.Height)
	in.Width = in.ConnectionWidth + c.ExternalValueInputPadding
	in.ConnectionOffsetY = c.TabOffsetFromTop
	return in
}
