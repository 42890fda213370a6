// Package workspace renders whole block trees.
//
// A block can only be measured once everything attached to it has been
// drawn, because inline and statement inputs size themselves from their
// children. [Render] therefore walks each stack bottom-up, then places
// every child at the connection offset its parent recorded, and finally
// normalizes the scene so its top-left corner sits at the margin.
package workspace

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/info"
	"github.com/matzehuels/blockrender/pkg/render/pathobject"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
)

const (
	// DefaultGap is the vertical space between flowed top-level stacks.
	DefaultGap = 24.0
	// DefaultMargin surrounds the whole scene.
	DefaultMargin = 8.0
)

// Item is one drawn block and its absolute position.
type Item struct {
	Block *block.Node
	Info  *info.RenderInfo
	Path  *pathobject.Object
	// Depth counts the connections between the block and its top-level
	// stack. Top-level blocks have depth 0.
	Depth int
	X, Y  float64
}

// Scene is a rendered workspace.
type Scene struct {
	Renderer string
	// Items are ordered so that every parent precedes its children.
	Items  []*Item
	Width  float64
	Height float64
}

// Count returns the number of rendered blocks.
func (s *Scene) Count() int { return len(s.Items) }

// Find returns the item for a block id.
func (s *Scene) Find(id string) (*Item, bool) {
	for _, it := range s.Items {
		if it.Block.ID() == id {
			return it, true
		}
	}
	return nil, false
}

type config struct {
	gap    float64
	margin float64
	flow   bool
	logger *log.Logger
}

// Option configures [Render].
type Option func(*config)

// WithGap sets the space between flowed top-level stacks.
func WithGap(gap float64) Option { return func(c *config) { c.gap = gap } }

// WithMargin sets the margin around the scene.
func WithMargin(m float64) Option { return func(c *config) { c.margin = m } }

// WithFlow stacks top-level blocks vertically, ignoring their
// coordinates.
func WithFlow(flow bool) Option { return func(c *config) { c.flow = flow } }

// WithLogger sets the logger for per-block debug output.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// Render measures, draws and positions every block reachable from roots.
// Top-level stacks keep their coordinates unless all of them sit at the
// origin, in which case they are flowed top to bottom.
func Render(r *renderer.Renderer, roots []*block.Node, opts ...Option) *Scene {
	cfg := config{gap: DefaultGap, margin: DefaultMargin}
	if !hasCoordinates(roots) {
		cfg.flow = true
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &walker{r: r, cfg: cfg, drawn: make(map[*block.Node]*Item)}
	scene := &Scene{Renderer: r.Name}

	var cursorY float64
	for _, root := range roots {
		w.render(root, "")
		if cfg.flow {
			root.X, root.Y = 0, cursorY
		}
		w.place(root, root.X, root.Y, 0)
		scene.Items = append(scene.Items, w.collect(root)...)
		if cfg.flow {
			cursorY += root.RenderedSize().Height + cfg.gap
		}
	}

	scene.normalize(cfg.margin)
	return scene
}

func hasCoordinates(roots []*block.Node) bool {
	for _, b := range roots {
		if b.X != 0 || b.Y != 0 {
			return true
		}
	}
	return false
}

type walker struct {
	r     *renderer.Renderer
	cfg   config
	drawn map[*block.Node]*Item
}

// attached returns the children drawn inside or below b: the children of
// visible inputs unless b is collapsed, then the next block.
func attached(b *block.Node) []*block.Node {
	var out []*block.Node
	if !b.Collapsed() {
		for _, in := range b.NodeInputs() {
			if !in.Visible() {
				continue
			}
			if c := in.Child(); c != nil {
				out = append(out, c)
			}
		}
	}
	if next := b.NextNode(); next != nil {
		out = append(out, next)
	}
	return out
}

// render draws b after everything attached to it. parentTertiary colours
// shadow blocks after the block they sit in.
func (w *walker) render(b *block.Node, parentTertiary string) {
	style := w.r.Constants().BlockStyle(b.Style())
	for _, child := range attached(b) {
		if child == b.NextNode() {
			w.render(child, parentTertiary)
			continue
		}
		w.render(child, style.ColourTertiary)
	}

	obj := pathobject.New()
	ri := w.r.Measure(b)
	w.r.Draw(b, ri, obj)
	obj.ApplyColour(w.r.Colouring(b, parentTertiary))
	obj.UpdateSelected(b.Selected)
	w.drawn[b] = &Item{Block: b, Info: ri, Path: obj}

	if w.cfg.logger != nil {
		w.cfg.logger.Debug("rendered block", "id", b.ID(), "type", b.Type(),
			"width", ri.Width, "height", ri.Height, "rows", len(ri.Rows))
	}
}

// place positions b at (x, y) and its children relative to the
// connection offsets recorded while drawing.
func (w *walker) place(b *block.Node, x, y float64, depth int) {
	b.X, b.Y = x, y
	if it := w.drawn[b]; it != nil {
		it.X, it.Y, it.Depth = x, y, depth
	}

	if !b.Collapsed() {
		for _, in := range b.NodeInputs() {
			child := in.Child()
			if child == nil || !in.Visible() {
				continue
			}
			px, py := in.Connection().(*block.NodeConnection).Offset()
			cx, cy := childOffset(child, in.Type())
			w.place(child, x+px-cx, y+py-cy, depth+1)
		}
	}
	if next := b.NextNode(); next != nil && b.NextConn() != nil && next.PreviousConn() != nil {
		px, py := b.NextConn().Offset()
		cx, cy := next.PreviousConn().Offset()
		w.place(next, x+px-cx, y+py-cy, depth+1)
	}
}

func childOffset(child *block.Node, t block.InputType) (float64, float64) {
	if t == block.StatementInput {
		if c := child.PreviousConn(); c != nil {
			return c.Offset()
		}
		return 0, 0
	}
	if c := child.OutputConn(); c != nil {
		return c.Offset()
	}
	return 0, 0
}

// collect returns the drawn items of a stack, parents first.
func (w *walker) collect(b *block.Node) []*Item {
	var out []*Item
	if it := w.drawn[b]; it != nil {
		out = append(out, it)
	}
	for _, child := range attached(b) {
		out = append(out, w.collect(child)...)
	}
	return out
}

func (s *Scene) normalize(margin float64) {
	if len(s.Items) == 0 {
		s.Width, s.Height = 2*margin, 2*margin
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, it := range s.Items {
		minX = min(minX, it.X)
		minY = min(minY, it.Y)
		maxX = max(maxX, it.X+it.Info.Width)
		maxY = max(maxY, it.Y+it.Info.Height)
	}
	dx, dy := margin-minX, margin-minY
	for _, it := range s.Items {
		it.X += dx
		it.Y += dy
		it.Block.X, it.Block.Y = it.X, it.Y
	}
	s.Width = maxX - minX + 2*margin
	s.Height = maxY - minY + 2*margin
}
