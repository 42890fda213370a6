package measurable

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/constants"
)

// Field wraps a block field.
type Field struct {
	Base
	Field       block.Field
	IsEditable  bool
	FlipRTL     bool
	ParentInput block.Input
}

// NewField measures f. The field's size is read exactly once.
func NewField(f block.Field, parent block.Input) *Field {
	size := f.Size()
	return &Field{
		Base:        Base{Type: TypeField, Width: size.Width, Height: size.Height},
		Field:       f,
		IsEditable:  f.Editable(),
		FlipRTL:     f.FlipRTL(),
		ParentInput: parent,
	}
}

// Icon wraps a visible block icon.
type Icon struct {
	Base
	Icon block.Icon
}

// NewIcon measures i.
func NewIcon(i block.Icon) *Icon {
	size := i.Size()
	return &Icon{
		Base: Base{Type: TypeIcon, Width: size.Width, Height: size.Height},
		Icon: i,
	}
}

// Hat is the start hat above the top row.
type Hat struct {
	Base
	AscenderHeight float64
}

func NewHat(c *constants.Provider) *Hat {
	return &Hat{
		Base:           Base{Type: TypeHat, Width: c.StartHatShape.Width, Height: c.StartHatShape.Height},
		AscenderHeight: c.StartHatShape.Height,
	}
}

// InRowSpacer is horizontal space between two elements.
type InRowSpacer struct {
	Base
}

func NewInRowSpacer(width float64) *InRowSpacer {
	return &InRowSpacer{Base: Base{Type: TypeSpacer | TypeInRowSpacer, Width: width}}
}

// SquareCorner is a corner drawn without rounding.
type SquareCorner struct {
	Base
	Right bool
}

func NewSquareCorner(c *constants.Provider, right bool) *SquareCorner {
	t := TypeCorner | TypeLeftSquareCorner
	if right {
		t = TypeCorner | TypeRightSquareCorner
	}
	return &SquareCorner{
		Base:  Base{Type: t, Width: c.NoPadding, Height: c.NoPadding},
		Right: right,
	}
}

// RoundCorner is a corner drawn with the outside-corner arc.
type RoundCorner struct {
	Base
	Right bool
}

func NewRoundCorner(c *constants.Provider, right bool) *RoundCorner {
	t := TypeCorner | TypeLeftRoundCorner
	if right {
		t = TypeCorner | TypeRightRoundCorner
	}
	return &RoundCorner{
		Base:  Base{Type: t, Width: c.CornerRadius, Height: c.CornerRadius / 2},
		Right: right,
	}
}

// JaggedEdge marks the torn right side of a collapsed block.
type JaggedEdge struct {
	Base
}

func NewJaggedEdge(c *constants.Provider) *JaggedEdge {
	return &JaggedEdge{Base: Base{Type: TypeJaggedEdge, Width: c.JaggedTeeth.Width, Height: c.JaggedTeeth.Height}}
}

// RightConnectionShape is the right half of a dynamic output shape.
type RightConnectionShape struct {
	Base
}

func NewRightConnectionShape() *RightConnectionShape {
	return &RightConnectionShape{Base: Base{Type: TypeRightConnection}}
}
