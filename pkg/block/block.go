// Package block defines the block model the rendering engine reads.
//
// The engine only ever sees the interfaces in this file. [Node] is the
// in-memory implementation used by workspace documents, the CLI and
// tests; editors embedding the engine can supply their own.
package block

// ConnectionType identifies the role of a connection point.
type ConnectionType int

const (
	InputValue ConnectionType = iota + 1
	OutputValue
	NextStatement
	PreviousStatement
)

func (t ConnectionType) String() string {
	switch t {
	case InputValue:
		return "input_value"
	case OutputValue:
		return "output_value"
	case NextStatement:
		return "next_statement"
	case PreviousStatement:
		return "previous_statement"
	default:
		return "unknown"
	}
}

// InputType identifies the kind of an input slot.
type InputType int

const (
	// ValueInput accepts a block through its output connection.
	ValueInput InputType = iota + 1
	// StatementInput nests a stack of statement blocks.
	StatementInput
	// DummyInput holds fields only.
	DummyInput
	// EndRowInput holds fields and forces the next input onto a new row.
	EndRowInput
)

func (t InputType) String() string {
	switch t {
	case ValueInput:
		return "value"
	case StatementInput:
		return "statement"
	case DummyInput:
		return "dummy"
	case EndRowInput:
		return "end_row"
	default:
		return "unknown"
	}
}

// Align is the horizontal alignment of an input's contents within its row.
type Align int

const (
	AlignLeft Align = iota
	AlignCentre
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCentre:
		return "centre"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// OutputShape overrides the output connection shape for renderers with
// dynamic connection shapes.
type OutputShape int

const (
	OutputShapeNone OutputShape = iota
	OutputShapeHexagonal
	OutputShapeRound
	OutputShapeSquare
)

// Size is a width/height pair in workspace units.
type Size struct {
	Width  float64
	Height float64
}

// Sizer is implemented by anything that can report its own rendered size.
type Sizer interface {
	Size() Size
}

// Field is a visual element inside an input row (label, text box, dropdown).
type Field interface {
	Sizer
	Name() string
	Text() string
	Editable() bool
	// FlipRTL reports whether the field mirrors its own contents when the
	// block is rendered right-to-left.
	FlipRTL() bool
	// Place receives the field's final top-left position in block
	// coordinates after a draw pass.
	Place(x, y float64, flipped bool)
}

// Icon is a small clickable glyph shown before the first input.
type Icon interface {
	Sizer
	Visible() bool
	Place(x, y float64)
}

// Connection is an attachment point on a block.
type Connection interface {
	Type() ConnectionType
	// Check lists the type names accepted or produced by this connection.
	Check() []string
	// Target returns the block attached on the far side, or nil.
	Target() Block
	// SetOffsetInBlock records where the connection was drawn, relative to
	// the block's top-left corner.
	SetOffsetInBlock(x, y float64)
}

// Input is a slot on a block that can hold fields and possibly a child.
type Input interface {
	Name() string
	Type() InputType
	Align() Align
	Visible() bool
	Fields() []Field
	// Connection is nil for dummy and end-row inputs.
	Connection() Connection
}

// Block is a single visual block as seen by the renderer.
type Block interface {
	ID() string
	Type() string
	// Style names the theme block style used for colouring.
	Style() string
	Inputs() []Input
	Icons() []Icon
	InputsInline() bool
	Collapsed() bool
	// CollapsedSummary is the field shown in place of the inputs when the
	// block is collapsed. It may be nil.
	CollapsedSummary() Field
	Shadow() bool
	InsertionMarker() bool
	RTL() bool
	// Hat names the start hat drawn over the block, empty for none.
	Hat() string
	OutputShape() OutputShape

	Previous() Connection
	Next() Connection
	Output() Connection

	// PreviousBlock returns the block whose next connection holds this one.
	// A block nested directly in a statement input has none.
	PreviousBlock() Block
	// NextBlock returns the block attached below this one.
	NextBlock() Block

	// RenderedSize is the size recorded by the last draw pass.
	RenderedSize() Size
	SetRenderedSize(Size)
}

// HasHat reports whether b is drawn with a start hat.
func HasHat(b Block) bool {
	return b.Hat() != "" && b.Previous() == nil && b.Output() == nil
}

// VisibleInputs returns the inputs of b that take part in layout.
func VisibleInputs(b Block) []Input {
	all := b.Inputs()
	out := make([]Input, 0, len(all))
	for _, in := range all {
		if in.Visible() {
			out = append(out, in)
		}
	}
	return out
}

// ConnectedBlock returns the child attached to an input, or nil.
func ConnectedBlock(in Input) Block {
	if c := in.Connection(); c != nil {
		return c.Target()
	}
	return nil
}

// StackSize returns the size of b together with every block chained below
// it through next connections. Consecutive blocks overlap by tabHeight.
func StackSize(b Block, tabHeight float64) Size {
	s := b.RenderedSize()
	if next := b.NextBlock(); next != nil {
		ns := StackSize(next, tabHeight)
		s.Height += ns.Height - tabHeight
		s.Width = max(s.Width, ns.Width)
	}
	return s
}
