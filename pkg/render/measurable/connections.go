package measurable

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
)

// Connection is the geometry of a connection point.
type Connection struct {
	Base
	Model          block.Connection
	Shape          constants.Shape
	IsDynamicShape bool
}

func newConnection(c *constants.Provider, b block.Block, model block.Connection, t Type) Connection {
	shape := c.ShapeFor(b, model)
	return Connection{
		Base: Base{
			Type:        TypeConnection | t,
			Width:       shape.Width,
			Height:      shape.Height,
			NotchOffset: c.NotchOffsetLeft,
		},
		Model:          model,
		Shape:          shape,
		IsDynamicShape: shape.IsDynamic(),
	}
}

// PreviousConnection is the notch in the top row.
type PreviousConnection struct {
	Connection
}

func NewPreviousConnection(c *constants.Provider, b block.Block, model block.Connection) *PreviousConnection {
	return &PreviousConnection{Connection: newConnection(c, b, model, TypePreviousConnection)}
}

// NextConnection is the tab in the bottom row.
type NextConnection struct {
	Connection
}

func NewNextConnection(c *constants.Provider, b block.Block, model block.Connection) *NextConnection {
	return &NextConnection{Connection: newConnection(c, b, model, TypeNextConnection)}
}

// OutputConnection is the tab on the left edge of value blocks.
type OutputConnection struct {
	Connection
	ConnectionOffsetX float64
	ConnectionOffsetY float64
	// StartX is where the block body begins, right of the tab.
	StartX float64
}

func NewOutputConnection(c *constants.Provider, b block.Block, model block.Connection) *OutputConnection {
	o := &OutputConnection{Connection: newConnection(c, b, model, TypeOutputConnection)}
	if o.IsDynamicShape {
		o.Width, o.Height = 0, 0
	}
	o.StartX = o.Width
	o.ConnectionOffsetY = c.TabOffsetFromTop
	return o
}
