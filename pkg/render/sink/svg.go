package sink

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/theme"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

const (
	fieldFontFamily = "sans-serif"
	fieldRadius     = 4.0
	fieldTextInset  = 5.0
	selectedWidth   = 2.5
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme      *theme.Theme
	background bool
	text       bool
}

// WithTheme colours the canvas, selection glow and field text.
func WithTheme(t *theme.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithBackground fills the canvas with the theme's workspace colour.
func WithBackground() SVGOption { return func(r *svgRenderer) { r.background = true } }

// WithoutText skips field text, leaving only block shapes.
func WithoutText() SVGOption { return func(r *svgRenderer) { r.text = false } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	t, _ := theme.Get(theme.DefaultName)
	r := svgRenderer{theme: t, text: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG writes the scene as a standalone SVG document.
func RenderSVG(s *workspace.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	comp := r.theme.Components

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(int(math.Ceil(s.Width)), int(math.Ceil(s.Height)),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(s.Width), num(s.Height)))
	canvas.Desc(fmt.Sprintf("%d blocks rendered by %s", s.Count(), s.Renderer))

	if r.background {
		canvas.Rect(0, 0, int(math.Ceil(s.Width)), int(math.Ceil(s.Height)), "fill:"+comp.WorkspaceBackgroundColour)
	}

	for _, it := range s.Items {
		r.renderBlock(canvas, it)
	}
	if r.text {
		for _, it := range s.Items {
			r.renderFields(canvas, it)
		}
	}

	canvas.End()
	return buf.Bytes()
}

func (r svgRenderer) renderBlock(canvas *svg.SVG, it *workspace.Item) {
	obj := it.Path
	transform := fmt.Sprintf("translate(%s,%s)", num(it.X), num(it.Y))
	if obj.RTL() {
		transform = fmt.Sprintf("translate(%s,%s) scale(-1,1)", num(it.X+it.Info.Width), num(it.Y))
	}
	canvas.Group(
		fmt.Sprintf(`id="block-%s"`, attr(it.Block.ID())),
		`class="block"`,
		fmt.Sprintf(`data-type="%s"`, attr(it.Block.Type())),
		fmt.Sprintf(`transform="%s"`, transform),
	)

	canvas.Path(obj.Path(),
		`class="block-path"`,
		fmt.Sprintf(`fill="%s"`, paint(obj.Fill())),
		fmt.Sprintf(`stroke="%s"`, paint(obj.Stroke())),
		`fill-rule="evenodd"`)

	if d := obj.Highlight(); d != "" {
		canvas.Path(d, `class="block-highlight"`, `fill="none"`, `stroke="#ffffff"`, `stroke-opacity="0.4"`)
	}
	for _, ol := range obj.Outlines() {
		canvas.Path(ol.D, `class="block-outline"`,
			fmt.Sprintf(`data-input="%s"`, attr(ol.Name)),
			fmt.Sprintf(`fill="%s"`, paint(ol.Fill)))
	}
	if overlay, ok := obj.Selected(); ok {
		canvas.Path(overlay, `class="block-selected"`, `fill="none"`,
			fmt.Sprintf(`stroke="%s"`, paint(r.theme.Components.SelectedGlowColour)),
			fmt.Sprintf(`stroke-width="%s"`, num(selectedWidth)))
	}
	canvas.Gend()
}

type placed interface {
	Placement() block.Placement
}

func (r svgRenderer) renderFields(canvas *svg.SVG, it *workspace.Item) {
	var fields []block.Field
	if it.Block.Collapsed() {
		if s := it.Block.CollapsedSummary(); s != nil {
			fields = append(fields, s)
		}
	} else {
		for _, in := range it.Block.NodeInputs() {
			if in.Visible() {
				fields = append(fields, in.Fields()...)
			}
		}
	}

	comp := r.theme.Components
	canvas.Group(`class="block-fields"`, fmt.Sprintf(`data-block="%s"`, attr(it.Block.ID())),
		fmt.Sprintf(`transform="translate(%s,%s)"`, num(it.X), num(it.Y)))
	for _, ic := range it.Block.Icons() {
		p, ok := ic.(placed)
		if !ok || !p.Placement().Placed || !ic.Visible() {
			continue
		}
		size := ic.Size()
		canvas.Path(rectPath(p.Placement().X, p.Placement().Y, size.Width, size.Height, size.Height/2),
			`class="block-icon"`, `fill="#ffffff"`, `fill-opacity="0.6"`)
	}
	for _, f := range fields {
		p, ok := f.(placed)
		if !ok || !p.Placement().Placed {
			continue
		}
		pl, size := p.Placement(), f.Size()
		if f.Editable() {
			canvas.Path(rectPath(pl.X, pl.Y, size.Width, size.Height, fieldRadius),
				`class="field-background"`, fmt.Sprintf(`fill="%s"`, paint(comp.FieldBackgroundColour)))
		}
		if f.Text() == "" {
			continue
		}
		x := pl.X
		if f.Editable() {
			x += fieldTextInset
		}
		canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(x), num(pl.Y+size.Height/2)))
		canvas.Text(0, 0, f.Text(), fieldStyle(f, comp))
		canvas.Gend()
	}
	canvas.Gend()
}

func fieldStyle(f block.Field, comp theme.ComponentStyles) string {
	size := block.DefaultFontSize
	if tf, ok := f.(*block.TextField); ok {
		size = tf.FontSize()
	}
	colour := "#ffffff"
	if f.Editable() {
		colour = comp.FieldTextColour
	}
	return fmt.Sprintf("font-family:%s;font-size:%spx;fill:%s;dominant-baseline:central",
		fieldFontFamily, num(size), paint(colour))
}

func rectPath(x, y, w, h, r float64) string {
	r = min(r, w/2, h/2)
	return fmt.Sprintf("M %s,%s h %s a %s %s 0 0,1 %s,%s v %s a %s %s 0 0,1 %s,%s h %s a %s %s 0 0,1 %s,%s v %s a %s %s 0 0,1 %s,%s z",
		num(x+r), num(y),
		num(w-2*r), num(r), num(r), num(r), num(r),
		num(h-2*r), num(r), num(r), num(-r), num(r),
		num(-(w - 2*r)), num(r), num(r), num(-r), num(-r),
		num(-(h - 2*r)), num(r), num(r), num(r), num(-r))
}
