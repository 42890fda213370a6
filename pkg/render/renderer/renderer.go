// Package renderer bundles the constants, measure pass and draw pass of a
// rendering style behind one value.
//
// A [Renderer] is a plain struct of factory functions; variants fill in
// the ones they change and leave the rest nil. Renderers are created
// through a [Registry] so that every caller gets its own constants:
//
//	reg := renderer.NewRegistry()
//	builtin.Register(reg)
//	r, err := reg.Init("zelos", theme.Modern(), constants.Overrides{"corner_radius": 6})
//	ri := r.Render(b, pathobject.New())
package renderer

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/draw"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/pathobject"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// Renderer is a named rendering style.
type Renderer struct {
	Name        string
	Description string

	// MakeConstants returns a fresh provider with default values. Nil uses
	// [constants.NewBase].
	MakeConstants func() *constants.Provider
	// MakeRenderInfo snapshots a block for measuring. Nil uses the default
	// layout rules.
	MakeRenderInfo func(c *constants.Provider, b block.Block) *info.RenderInfo
	// MakeDrawer creates the drawer for a measured block. Nil uses the
	// default drawer.
	MakeDrawer func(b block.Block, ri *info.RenderInfo) *draw.Drawer

	constants *constants.Provider
}

// Factory creates an uninitialized renderer.
type Factory func() *Renderer

// Init builds the renderer's constants, attaches the theme and then
// applies overrides, so an explicit override wins over the theme. A nil
// theme uses the default theme.
func (r *Renderer) Init(t *theme.Theme, o constants.Overrides) error {
	newConstants := r.MakeConstants
	if newConstants == nil {
		newConstants = constants.NewBase
	}
	if t == nil {
		var err error
		if t, err = theme.Get(theme.DefaultName); err != nil {
			return err
		}
	}
	c := newConstants()
	c.SetTheme(t)
	if err := c.Apply(o); err != nil {
		return err
	}
	c.Init()
	r.constants = c
	return nil
}

// Initialized reports whether Init succeeded.
func (r *Renderer) Initialized() bool { return r.constants != nil }

// Constants returns the provider built by Init. It must be treated as
// read-only.
func (r *Renderer) Constants() *constants.Provider { return r.constants }

// Theme returns the theme attached by Init.
func (r *Renderer) Theme() *theme.Theme {
	if r.constants == nil {
		return nil
	}
	return r.constants.Theme
}

func (r *Renderer) mustConstants() *constants.Provider {
	if r.constants == nil {
		panic(errors.New(errors.ErrCodeInternal, "renderer %q used before Init", r.Name))
	}
	return r.constants
}

// Measure runs the measure pass for b.
func (r *Renderer) Measure(b block.Block) *info.RenderInfo {
	c := r.mustConstants()
	var ri *info.RenderInfo
	if r.MakeRenderInfo != nil {
		ri = r.MakeRenderInfo(c, b)
	} else {
		ri = info.New(c, b, info.Policy{})
	}
	ri.Measure()
	return ri
}

// Draw runs the draw pass for a block measured by this renderer.
func (r *Renderer) Draw(b block.Block, ri *info.RenderInfo, sink pathobject.Sink) {
	var d *draw.Drawer
	if r.MakeDrawer != nil {
		d = r.MakeDrawer(b, ri)
	} else {
		d = draw.New(b, ri, draw.Hooks{})
	}
	d.Draw(sink)
}

// Render measures and draws b into sink and applies the block's colours.
func (r *Renderer) Render(b block.Block, sink pathobject.Sink) *info.RenderInfo {
	ri := r.Measure(b)
	r.Draw(b, ri, sink)
	sink.ApplyColour(r.Colouring(b, ""))
	return ri
}

// Colouring resolves the colours of b. parentTertiary is the tertiary
// colour of the block a shadow sits in, if any.
func (r *Renderer) Colouring(b block.Block, parentTertiary string) pathobject.Colouring {
	c := r.mustConstants()
	return pathobject.Colouring{
		Style:          c.BlockStyle(b.Style()),
		Shadow:         b.Shadow(),
		ParentTertiary: parentTertiary,
	}
}
