package constants

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/svgpath"
)

const tabVerticalOverlap = 2.5

// NewBase returns the provider shared by the classic renderers, with
// shapes built.
func NewBase() *Provider {
	p := &Provider{
		NoPadding:          0,
		SmallPadding:       3,
		MediumPadding:      5,
		MediumLargePadding: 8,
		LargePadding:       10,

		TallInputFieldOffsetY: 5,

		TabHeight:          15,
		TabOffsetFromTop:   5,
		TabVerticalOverlap: tabVerticalOverlap,
		TabWidth:           8,

		NotchWidth:  15,
		NotchHeight: 4,

		MinBlockWidth:          12,
		EmptyBlockSpacerHeight: 16,

		CornerRadius:    8,
		NotchOffsetLeft: 15,
		MinBlockHeight:  24,

		StatementBottomSpacer:     0,
		StatementInputPaddingLeft: 20,
		BetweenStatementPaddingY:  4,

		AddStartHats:   false,
		StartHatHeight: 15,
		StartHatWidth:  100,

		SpacerDefaultHeight: 15,

		EmptyInlineInputPadding:   14.5,
		EmptyStatementInputHeight: 24,
		ExternalValueInputPadding: 2,

		JaggedTeethHeight: 12,
		JaggedTeethWidth:  6,

		FieldTextFontSize:   block.DefaultFontSize,
		FieldTextFontFamily: "sans-serif",
	}

	p.DummyInputMinHeight = p.TabHeight
	p.DummyInputShadowMinHeight = p.TabHeight
	p.EmptyInlineInputHeight = p.TabHeight + 11
	p.TopRowMinHeight = p.MediumPadding
	p.TopRowPrecedesStatementMinHeight = p.LargePadding
	p.BottomRowMinHeight = p.MediumPadding
	p.BottomRowAfterStatementMinHeight = p.LargePadding
	p.MinRowHeight = p.SmallPadding
	p.StatementInputNotchOffset = p.NotchOffsetLeft

	p.Builder = BuildBaseShapes
	p.Selector = BaseShapeFor
	p.Init()
	return p
}

// BuildBaseShapes builds the puzzle tab, notch and corner shapes from the
// provider's current sizes.
func BuildBaseShapes(p *Provider) {
	p.Notch = makeNotch(p)
	p.PuzzleTab = makePuzzleTab(p)
	p.StartHatShape = makeStartHat(p)
	p.JaggedTeeth = makeJaggedTeeth(p)
	p.InsideCorners = makeInsideCorners(p)
	p.OutsideCorners = makeOutsideCorners(p)
}

// BaseShapeFor returns the puzzle tab for value connections and the notch
// for statement connections. An unknown connection type is a programming
// error and panics.
func BaseShapeFor(p *Provider, _ block.Block, c block.Connection) Shape {
	switch c.Type() {
	case block.InputValue, block.OutputValue:
		return p.PuzzleTab
	case block.PreviousStatement, block.NextStatement:
		return p.Notch
	default:
		panic(errors.New(errors.ErrCodeInternal, "unknown connection type %d", int(c.Type())))
	}
}

func makeNotch(p *Provider) Shape {
	width, height := p.NotchWidth, p.NotchHeight
	innerWidth := 3.0
	outerWidth := (width - innerWidth) / 2

	path := func(dir float64) string {
		return svgpath.Line(
			svgpath.Point(dir*outerWidth, height),
			svgpath.Point(dir*innerWidth, 0),
			svgpath.Point(dir*outerWidth, -height),
		)
	}
	return Shape{
		Kind:      KindNotch,
		Width:     width,
		Height:    height,
		PathLeft:  path(1),
		PathRight: path(-1),
	}
}

func makePuzzleTab(p *Provider) Shape {
	width, height := p.TabWidth, p.TabHeight
	overlap := p.TabVerticalOverlap

	// up is the direction of travel along the tab: -1 going up, 1 going down.
	path := func(up bool) string {
		forward, back := 1.0, -1.0
		if up {
			forward, back = -1, 1
		}
		halfHeight := height / 2
		control1Y := halfHeight + overlap
		control2Y := halfHeight + 0.5
		control3Y := overlap

		endPoint1 := svgpath.Point(-width, forward*halfHeight)
		endPoint2 := svgpath.Point(width, forward*halfHeight)

		return svgpath.Curve("c",
			svgpath.Point(0, forward*control1Y),
			svgpath.Point(-width, back*control2Y),
			endPoint1,
		) + svgpath.Curve("s",
			svgpath.Point(width, back*control3Y),
			endPoint2,
		)
	}
	return Shape{
		Kind:     KindPuzzle,
		Width:    width,
		Height:   height,
		PathDown: path(false),
		PathUp:   path(true),
	}
}

func makeStartHat(p *Provider) Hat {
	h, w := p.StartHatHeight, p.StartHatWidth
	return Hat{
		Width:  w,
		Height: h,
		Path: svgpath.Curve("c",
			svgpath.Point(30, -h),
			svgpath.Point(70, -h),
			svgpath.Point(w, 0),
		),
	}
}

func makeJaggedTeeth(p *Provider) Teeth {
	h, w := p.JaggedTeethHeight, p.JaggedTeethWidth
	return Teeth{
		Width:  w,
		Height: h,
		Path: svgpath.Line(
			svgpath.Point(w, h/4),
			svgpath.Point(-w*2, h/2),
			svgpath.Point(w, h/4),
		),
	}
}

func makeInsideCorners(p *Provider) InsideCorners {
	r := p.CornerRadius
	return InsideCorners{
		Width:      r,
		Height:     r,
		PathTop:    svgpath.Arc("a", "0 0,0", r, svgpath.Point(-r, r)),
		PathBottom: svgpath.Arc("a", "0 0,0", r, svgpath.Point(r, r)),
	}
}

func makeOutsideCorners(p *Provider) OutsideCorners {
	r := p.CornerRadius
	return OutsideCorners{
		TopLeft:     svgpath.MoveBy(0, r) + svgpath.Arc("a", "0 0,1", r, svgpath.Point(r, -r)),
		TopRight:    svgpath.Arc("a", "0 0,1", r, svgpath.Point(r, r)),
		BottomLeft:  svgpath.Arc("a", "0 0,1", r, svgpath.Point(-r, -r)),
		BottomRight: svgpath.Arc("a", "0 0,1", r, svgpath.Point(-r, r)),
		RightHeight: r,
	}
}
