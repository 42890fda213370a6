package zelos

import (
	"slices"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/svgpath"
)

const gridUnit = 4

// NewConstants returns the grid-based constants with dynamic value shapes.
func NewConstants() *constants.Provider {
	p := constants.NewBase()
	gu := float64(gridUnit)
	p.GridUnit = gu

	p.SmallPadding = gu
	p.MediumPadding = 2 * gu
	p.MediumLargePadding = 3 * gu
	p.LargePadding = 4 * gu

	p.CornerRadius = gu
	p.NotchWidth = 9 * gu
	p.NotchHeight = 2 * gu
	p.NotchOffsetLeft = 3 * gu
	p.StatementInputNotchOffset = p.NotchOffsetLeft

	p.MinBlockWidth = 2 * gu
	p.MinBlockHeight = 12 * gu
	p.MinRowHeight = p.SmallPadding
	p.EmptyStatementInputHeight = 6 * gu
	p.TabOffsetFromTop = 0

	p.TopRowMinHeight = p.CornerRadius
	p.TopRowPrecedesStatementMinHeight = p.LargePadding
	p.BottomRowMinHeight = p.CornerRadius
	p.BottomRowAfterStatementMinHeight = 6 * gu

	// Nested stacks overlap the bottom of the C by one notch.
	p.StatementBottomSpacer = -p.NotchHeight
	p.StatementInputPaddingLeft = 4 * gu

	p.EmptyInlineInputPadding = 4 * gu
	p.EmptyInlineInputHeight = 8 * gu
	p.DummyInputMinHeight = 8 * gu
	p.DummyInputShadowMinHeight = 6 * gu

	p.FieldTextFontSize = 3 * gu
	p.MaxDynamicConnectionShapeWidth = 12 * gu

	p.JaggedTeethHeight = 0
	p.JaggedTeethWidth = 0
	p.StartHatHeight = 22
	p.StartHatWidth = 96

	p.Builder = buildShapes
	p.Selector = shapeFor
	p.Rebuild()
	return p
}

func buildShapes(p *constants.Provider) {
	constants.BuildBaseShapes(p)
	p.Notch = makeNotch(p)
	p.StartHatShape = makeStartHat(p)
	p.InsideCorners = makeInsideCorners(p)
	p.Hexagonal = makeHexagonal(p)
	p.Rounded = makeRounded(p)
	p.Squared = makeSquared(p)
}

// shapeFor picks the block's forced output shape first, then falls back
// to the connection's type check. Booleans are hexagonal; everything else
// is rounded.
func shapeFor(p *constants.Provider, b block.Block, c block.Connection) constants.Shape {
	switch c.Type() {
	case block.InputValue, block.OutputValue:
		switch b.OutputShape() {
		case block.OutputShapeHexagonal:
			return p.Hexagonal
		case block.OutputShapeRound:
			return p.Rounded
		case block.OutputShapeSquare:
			return p.Squared
		}
		check := c.Check()
		if len(check) == 0 && c.Target() != nil {
			if target := targetConnection(b, c); target != nil {
				check = target.Check()
			}
		}
		if slices.Contains(check, "Boolean") {
			return p.Hexagonal
		}
		return p.Rounded
	case block.PreviousStatement, block.NextStatement:
		return p.Notch
	default:
		panic(errors.New(errors.ErrCodeInternal, "unknown connection type %d", int(c.Type())))
	}
}

// targetConnection returns the connection on the other end of the value
// connection c owned by b.
func targetConnection(b block.Block, c block.Connection) block.Connection {
	target := c.Target()
	if c.Type() == block.InputValue {
		return target.Output()
	}
	for _, in := range target.Inputs() {
		if block.ConnectedBlock(in) == b {
			return in.Connection()
		}
	}
	return nil
}

func dynamicWidth(maxWidth float64) func(float64) float64 {
	return func(height float64) float64 {
		return min(height/2, maxWidth)
	}
}

func identity(v float64) float64 { return v }
func half(v float64) float64     { return v / 2 }
func negate(v float64) float64   { return -v }

func makeHexagonal(p *constants.Provider) constants.Shape {
	maxWidth := p.MaxDynamicConnectionShapeWidth

	path := func(height float64, up, right bool) string {
		width := min(height/2, maxWidth)
		forward, direction := 1.0, 1.0
		if up {
			forward = -1
		}
		if right {
			direction = -1
		}
		dy := forward * height / 2
		return svgpath.LineTo(-direction*width, dy) + svgpath.LineTo(direction*width, dy)
	}
	return constants.Shape{
		Kind: constants.KindHexagonal,
		Dyn: &constants.Dynamic{
			Width:     dynamicWidth(maxWidth),
			Height:    identity,
			OffsetX:   negate,
			OffsetY:   half,
			PathDown:  func(h float64) string { return path(h, false, false) },
			PathUp:    func(h float64) string { return path(h, true, false) },
			RightDown: func(h float64) string { return path(h, false, true) },
			RightUp:   func(h float64) string { return path(h, true, true) },
		},
	}
}

// roundPath draws a half stadium: a quarter arc, a straight run, and a
// second quarter arc. Left-hand paths bulge left of the edge and
// right-hand paths bulge right.
func roundPath(radius, straight float64, up, right bool) string {
	dx, dy := -1.0, 1.0
	if right {
		dx = 1
	}
	if up {
		dy = -1
	}
	sweep := "0 0,1"
	if up == right {
		sweep = "0 0,0"
	}
	return svgpath.Arc("a", sweep, radius, svgpath.Point(dx*radius, dy*radius)) +
		svgpath.LineOnAxis("v", dy*straight) +
		svgpath.Arc("a", sweep, radius, svgpath.Point(-dx*radius, dy*radius))
}

func makeRounded(p *constants.Provider) constants.Shape {
	maxWidth := p.MaxDynamicConnectionShapeWidth
	maxHeight := maxWidth * 2

	path := func(blockHeight float64, up, right bool) string {
		remaining := max(blockHeight-maxHeight, 0)
		height := min(blockHeight, maxHeight)
		return roundPath(height/2, remaining, up, right)
	}
	return constants.Shape{
		Kind: constants.KindRound,
		Dyn: &constants.Dynamic{
			Width:     dynamicWidth(maxWidth),
			Height:    identity,
			OffsetX:   negate,
			OffsetY:   half,
			PathDown:  func(h float64) string { return path(h, false, false) },
			PathUp:    func(h float64) string { return path(h, true, false) },
			RightDown: func(h float64) string { return path(h, false, true) },
			RightUp:   func(h float64) string { return path(h, true, true) },
		},
	}
}

func makeSquared(p *constants.Provider) constants.Shape {
	radius := p.CornerRadius

	path := func(height float64, up, right bool) string {
		return roundPath(radius, height-radius*2, up, right)
	}
	return constants.Shape{
		Kind: constants.KindSquare,
		Dyn: &constants.Dynamic{
			Width:     func(float64) float64 { return radius },
			Height:    identity,
			OffsetX:   negate,
			OffsetY:   half,
			PathDown:  func(h float64) string { return path(h, false, false) },
			PathUp:    func(h float64) string { return path(h, true, false) },
			RightDown: func(h float64) string { return path(h, false, true) },
			RightUp:   func(h float64) string { return path(h, true, true) },
		},
	}
}

// makeNotch builds the rounded statement notch.
func makeNotch(p *constants.Provider) constants.Shape {
	width, height := p.NotchWidth, p.NotchHeight
	innerWidth := width / 3
	curveWidth := innerWidth / 3
	halfHeight := height / 2
	quarterHeight := halfHeight / 2

	path := func(dir float64) string {
		return svgpath.Curve("c",
			svgpath.Point(dir*curveWidth/2, 0),
			svgpath.Point(dir*curveWidth*3/4, quarterHeight/2),
			svgpath.Point(dir*curveWidth, quarterHeight),
		) +
			svgpath.Line(svgpath.Point(dir*curveWidth, halfHeight)) +
			svgpath.Curve("c",
				svgpath.Point(dir*curveWidth/4, quarterHeight/2),
				svgpath.Point(dir*curveWidth/2, quarterHeight),
				svgpath.Point(dir*curveWidth, quarterHeight),
			) +
			svgpath.LineOnAxis("h", dir*innerWidth) +
			svgpath.Curve("c",
				svgpath.Point(dir*curveWidth/2, 0),
				svgpath.Point(dir*curveWidth*3/4, -quarterHeight/2),
				svgpath.Point(dir*curveWidth, -quarterHeight),
			) +
			svgpath.Line(svgpath.Point(dir*curveWidth, -halfHeight)) +
			svgpath.Curve("c",
				svgpath.Point(dir*curveWidth/4, -quarterHeight/2),
				svgpath.Point(dir*curveWidth/2, -quarterHeight),
				svgpath.Point(dir*curveWidth, -quarterHeight),
			)
	}
	return constants.Shape{
		Kind:      constants.KindNotch,
		Width:     width,
		Height:    height,
		PathLeft:  path(1),
		PathRight: path(-1),
	}
}

func makeStartHat(p *constants.Provider) constants.Hat {
	h, w := p.StartHatHeight, p.StartHatWidth
	return constants.Hat{
		Width:  w,
		Height: h,
		Path: svgpath.Curve("c",
			svgpath.Point(25, -h),
			svgpath.Point(71, -h),
			svgpath.Point(w, 0),
		),
	}
}

func makeInsideCorners(p *constants.Provider) constants.InsideCorners {
	r := p.CornerRadius
	return constants.InsideCorners{
		Width:           r,
		Height:          r,
		PathTop:         svgpath.Arc("a", "0 0,0", r, svgpath.Point(-r, r)),
		PathBottom:      svgpath.Arc("a", "0 0,0", r, svgpath.Point(r, r)),
		RightWidth:      r,
		RightHeight:     r,
		PathTopRight:    svgpath.Arc("a", "0 0,1", r, svgpath.Point(-r, r)),
		PathBottomRight: svgpath.Arc("a", "0 0,1", r, svgpath.Point(r, r)),
	}
}
