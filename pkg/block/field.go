package block

import "unicode/utf8"

const (
	DefaultFontSize = 11.0
	fontCharWidth   = 0.55
	fieldPadding    = 5.0
	fieldMinHeight  = 16.0
)

// Placement is where a field or icon ended up after the last draw pass.
type Placement struct {
	X, Y    float64
	Flipped bool
	Placed  bool
}

// TextField is a label or editable text field sized from its text.
// The size is computed on first use and cached.
type TextField struct {
	name     string
	text     string
	editable bool
	flipRTL  bool
	fontSize float64

	size     Size
	measured bool
	placed   Placement
}

// NewTextField creates a text field. Editable fields get a padded border.
func NewTextField(name, text string, editable bool) *TextField {
	return &TextField{name: name, text: text, editable: editable, fontSize: DefaultFontSize}
}

// WithFlipRTL marks the field as mirroring its own contents in RTL.
func (f *TextField) WithFlipRTL() *TextField {
	f.flipRTL = true
	return f
}

func (f *TextField) Name() string   { return f.name }
func (f *TextField) Text() string   { return f.text }
func (f *TextField) Editable() bool { return f.editable }
func (f *TextField) FlipRTL() bool  { return f.flipRTL }

// FontSize is the size used both for measuring and drawing the text.
func (f *TextField) FontSize() float64 { return f.fontSize }

func (f *TextField) Size() Size {
	if !f.measured {
		w := float64(utf8.RuneCountInString(f.text)) * f.fontSize * fontCharWidth
		h := max(fieldMinHeight, f.fontSize+fieldPadding)
		if f.editable {
			w += 2 * fieldPadding
		}
		f.size = Size{Width: w, Height: h}
		f.measured = true
	}
	return f.size
}

func (f *TextField) Place(x, y float64, flipped bool) {
	f.placed = Placement{X: x, Y: y, Flipped: flipped, Placed: true}
}

// Placement returns the position from the last draw pass.
func (f *TextField) Placement() Placement { return f.placed }

// SizedField is a field with a fixed size, used for images and in tests.
type SizedField struct {
	name     string
	size     Size
	editable bool
	flipRTL  bool
	placed   Placement
}

// NewSizedField creates a field with a fixed size.
func NewSizedField(name string, size Size, editable bool) *SizedField {
	return &SizedField{name: name, size: size, editable: editable}
}

func (f *SizedField) Name() string         { return f.name }
func (f *SizedField) Text() string         { return "" }
func (f *SizedField) Editable() bool       { return f.editable }
func (f *SizedField) FlipRTL() bool        { return f.flipRTL }
func (f *SizedField) Size() Size           { return f.size }
func (f *SizedField) Placement() Placement { return f.placed }

func (f *SizedField) Place(x, y float64, flipped bool) {
	f.placed = Placement{X: x, Y: y, Flipped: flipped, Placed: true}
}

// SizedIcon is an icon with a fixed size.
type SizedIcon struct {
	size    Size
	visible bool
	placed  Placement
}

// NewIcon creates a visible icon of the given size.
func NewIcon(size Size) *SizedIcon {
	return &SizedIcon{size: size, visible: true}
}

func (i *SizedIcon) Size() Size           { return i.size }
func (i *SizedIcon) Visible() bool        { return i.visible }
func (i *SizedIcon) SetVisible(v bool)    { i.visible = v }
func (i *SizedIcon) Placement() Placement { return i.placed }

func (i *SizedIcon) Place(x, y float64) {
	i.placed = Placement{X: x, Y: y, Placed: true}
}
