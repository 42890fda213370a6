// Package pathobject holds the drawn output of one block.
//
// A drawer writes into a [Sink]; [Object] is the in-memory sink the
// workspace and the SVG writer read back. Optional capabilities such as
// highlight paths are separate interfaces so a sink only implements what
// it can show.
package pathobject

import (
	"sort"

	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// Sink receives the result of a draw pass.
type Sink interface {
	// SetPath replaces the main block path.
	SetPath(d string)
	// SetOutlinePath sets a named outline fragment, such as the hole of
	// an empty inline input.
	SetOutlinePath(name, d string)
	ApplyColour(c Colouring)
	// FlipRTL mirrors the drawn output for right-to-left rendering.
	FlipRTL()
	// UpdateSelected shows or hides the selection overlay.
	UpdateSelected(enable bool)
	// BeginDrawing and EndDrawing bracket a draw pass. Outlines not set
	// between them are discarded at EndDrawing.
	BeginDrawing()
	EndDrawing()
}

// HighlightSink receives the light edge drawn by renderers with a
// highlight pass.
type HighlightSink interface {
	SetHighlightPath(d string)
}

// ShapeRecorder receives the output shape chosen for the block.
type ShapeRecorder interface {
	SetOutputShape(k constants.Kind)
}

// Colouring is the style information applied after a draw pass.
type Colouring struct {
	Style  theme.BlockStyle
	Shadow bool
	// ParentTertiary outlines shadow blocks in their parent's colour
	// when set.
	ParentTertiary string
}

// Outline is a named path fragment.
type Outline struct {
	Name string
	D    string
	Fill string
}

// Object is the default in-memory [Sink].
type Object struct {
	path      string
	highlight string
	outlines  map[string]*Outline
	// pending holds outline names not yet refreshed in the current pass.
	pending map[string]struct{}
	drawing bool

	selected    bool
	overlay     string
	rtl         bool
	outputShape constants.Kind

	fill        string
	stroke      string
	outlineFill string
}

// New creates an empty object.
func New() *Object {
	return &Object{outlines: map[string]*Outline{}}
}

func (o *Object) SetPath(d string) {
	o.path = d
	if o.selected {
		o.overlay = d
	}
}

func (o *Object) SetOutlinePath(name, d string) {
	ol, ok := o.outlines[name]
	if !ok {
		ol = &Outline{Name: name, Fill: o.outlineFill}
		o.outlines[name] = ol
	}
	ol.D = d
	delete(o.pending, name)
}

func (o *Object) ApplyColour(c Colouring) {
	o.fill = c.Style.ColourPrimary
	o.stroke = c.Style.ColourTertiary
	o.outlineFill = c.Style.ColourTertiary
	if c.Shadow {
		o.fill = c.Style.ColourSecondary
		o.stroke = "none"
		if c.ParentTertiary != "" {
			o.stroke = c.ParentTertiary
		}
	}
	for _, ol := range o.outlines {
		ol.Fill = o.outlineFill
	}
}

func (o *Object) FlipRTL() { o.rtl = true }

func (o *Object) UpdateSelected(enable bool) {
	o.selected = enable
	if enable {
		o.overlay = o.path
	} else {
		o.overlay = ""
	}
}

func (o *Object) BeginDrawing() {
	o.drawing = true
	o.rtl = false
	o.pending = make(map[string]struct{}, len(o.outlines))
	for name := range o.outlines {
		o.pending[name] = struct{}{}
	}
}

func (o *Object) EndDrawing() {
	for name := range o.pending {
		delete(o.outlines, name)
	}
	o.pending = nil
	o.drawing = false
}

func (o *Object) SetHighlightPath(d string)       { o.highlight = d }
func (o *Object) SetOutputShape(k constants.Kind) { o.outputShape = k }

// Path returns the main block path.
func (o *Object) Path() string { return o.path }

// Highlight returns the light edge path, empty if none was drawn.
func (o *Object) Highlight() string { return o.highlight }

// Outlines returns the outline fragments sorted by name.
func (o *Object) Outlines() []Outline {
	out := make([]Outline, 0, len(o.outlines))
	for _, ol := range o.outlines {
		out = append(out, *ol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Selected returns the overlay path and whether the block is selected.
func (o *Object) Selected() (string, bool) { return o.overlay, o.selected }

// RTL reports whether the last draw pass flipped the output.
func (o *Object) RTL() bool { return o.rtl }

// Drawing reports whether a draw pass is in progress.
func (o *Object) Drawing() bool { return o.drawing }

// OutputShape returns the recorded output shape, zero if none.
func (o *Object) OutputShape() constants.Kind { return o.outputShape }

// Fill returns the body fill colour.
func (o *Object) Fill() string { return o.fill }

// Stroke returns the body stroke colour.
func (o *Object) Stroke() string { return o.stroke }
