package constants

// Kind identifies a connection shape family.
type Kind int

const (
	KindPuzzle Kind = iota + 1
	KindNotch
	KindHexagonal
	KindRound
	KindSquare
)

func (k Kind) String() string {
	switch k {
	case KindPuzzle:
		return "puzzle"
	case KindNotch:
		return "notch"
	case KindHexagonal:
		return "hexagonal"
	case KindRound:
		return "round"
	case KindSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Dynamic computes the geometry of a connection shape that scales with
// the height of the element it is attached to.
type Dynamic struct {
	Width     func(height float64) float64
	Height    func(height float64) float64
	OffsetX   func(width float64) float64
	OffsetY   func(height float64) float64
	PathDown  func(height float64) string
	PathUp    func(height float64) string
	RightDown func(height float64) string
	RightUp   func(height float64) string
}

// Shape describes a connection shape. Notches use PathLeft/PathRight,
// tabs use PathDown/PathUp. Dynamic shapes carry their geometry in Dyn
// and ignore the fixed fields.
type Shape struct {
	Kind   Kind
	Width  float64
	Height float64

	PathLeft  string
	PathRight string
	PathDown  string
	PathUp    string

	Dyn *Dynamic
}

// IsDynamic reports whether the shape scales with its element.
func (s Shape) IsDynamic() bool { return s.Dyn != nil }

// WidthFor returns the shape width for an element of the given height.
func (s Shape) WidthFor(height float64) float64 {
	if s.Dyn != nil {
		return s.Dyn.Width(height)
	}
	return s.Width
}

// HeightFor returns the shape height for an element of the given height.
func (s Shape) HeightFor(height float64) float64 {
	if s.Dyn != nil {
		return s.Dyn.Height(height)
	}
	return s.Height
}

// Down returns the path going down the shape.
func (s Shape) Down(height float64) string {
	if s.Dyn != nil {
		return s.Dyn.PathDown(height)
	}
	return s.PathDown
}

// Up returns the path going up the shape.
func (s Shape) Up(height float64) string {
	if s.Dyn != nil {
		return s.Dyn.PathUp(height)
	}
	return s.PathUp
}

// Hat is the start hat drawn over top-level blocks.
type Hat struct {
	Width  float64
	Height float64
	Path   string
}

// Teeth is the jagged edge drawn on collapsed blocks.
type Teeth struct {
	Width  float64
	Height float64
	Path   string
}

// InsideCorners are the concave corners around statement inputs.
type InsideCorners struct {
	Width      float64
	Height     float64
	PathTop    string
	PathBottom string

	// Right variants exist only for renderers that draw a right-hand
	// corner around statement inputs.
	RightWidth      float64
	RightHeight     float64
	PathTopRight    string
	PathBottomRight string
}

// OutsideCorners are the convex corners of the block body.
type OutsideCorners struct {
	TopLeft     string
	TopRight    string
	BottomRight string
	BottomLeft  string
	RightHeight float64
}
