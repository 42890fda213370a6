package sink

import (
	"encoding/json"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	paths    bool
	elements bool
}

// WithJSONPaths includes the SVG path data of every block.
func WithJSONPaths() JSONOption { return func(r *jsonRenderer) { r.paths = true } }

// WithJSONElements includes the elements of every row, not only the rows.
func WithJSONElements() JSONOption { return func(r *jsonRenderer) { r.elements = true } }

type jsonOutput struct {
	Renderer string      `json:"renderer"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Blocks   []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	ID          string                `json:"id"`
	Type        string                `json:"type"`
	Depth       int                   `json:"depth"`
	X           float64               `json:"x"`
	Y           float64               `json:"y"`
	Width       float64               `json:"width"`
	Height      float64               `json:"height"`
	RTL         bool                  `json:"rtl,omitempty"`
	OutputShape string                `json:"output_shape,omitempty"`
	Connections map[string][2]float64 `json:"connections,omitempty"`
	Rows        []jsonRow             `json:"rows"`
	Path        string                `json:"path,omitempty"`
	Outlines    map[string]string     `json:"outlines,omitempty"`
}

type jsonRow struct {
	Kind     string        `json:"kind"`
	Y        float64       `json:"y"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Elements []jsonElement `json:"elements,omitempty"`
}

type jsonElement struct {
	Type       string  `json:"type"`
	X          float64 `json:"x"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Centerline float64 `json:"centerline"`
}

// RenderJSON dumps the measured geometry of a scene. Positions are in
// scene coordinates for blocks and block coordinates for rows.
func RenderJSON(s *workspace.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Renderer: s.Renderer,
		Width:    s.Width,
		Height:   s.Height,
		Blocks:   make([]jsonBlock, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		out.Blocks = append(out.Blocks, r.block(it))
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r jsonRenderer) block(it *workspace.Item) jsonBlock {
	jb := jsonBlock{
		ID:          it.Block.ID(),
		Type:        it.Block.Type(),
		Depth:       it.Depth,
		X:           it.X,
		Y:           it.Y,
		Width:       it.Info.Width,
		Height:      it.Info.Height,
		RTL:         it.Info.RTL,
		Connections: connections(it.Block),
		Rows:        make([]jsonRow, 0, len(it.Info.Rows)),
	}
	if k := it.Path.OutputShape(); k != 0 {
		jb.OutputShape = k.String()
	}
	for _, row := range it.Info.Rows {
		jb.Rows = append(jb.Rows, r.row(row))
	}
	if r.paths {
		jb.Path = it.Path.Path()
		for _, ol := range it.Path.Outlines() {
			if jb.Outlines == nil {
				jb.Outlines = map[string]string{}
			}
			jb.Outlines[ol.Name] = ol.D
		}
	}
	return jb
}

func (r jsonRenderer) row(row measurable.Rower) jsonRow {
	base := row.RowBase()
	jr := jsonRow{Kind: rowKind(row), Y: base.YPos, Width: base.Width, Height: base.Height}
	if r.elements {
		for _, m := range base.Elements {
			e := m.Elem()
			jr.Elements = append(jr.Elements, jsonElement{
				Type: e.Type.String(), X: e.XPos, Width: e.Width, Height: e.Height, Centerline: e.Centerline,
			})
		}
	}
	return jr
}

func rowKind(row measurable.Rower) string {
	switch {
	case measurable.IsTopRow(row):
		return "top"
	case measurable.IsBottomRow(row):
		return "bottom"
	case measurable.IsSpacerRow(row):
		return "spacer"
	default:
		return "input"
	}
}

// connections returns the offsets recorded by the draw pass, keyed by
// connection role or input name.
func connections(n *block.Node) map[string][2]float64 {
	out := map[string][2]float64{}
	add := func(key string, c *block.NodeConnection) {
		if c == nil {
			return
		}
		x, y := c.Offset()
		out[key] = [2]float64{x, y}
	}
	add("previous", n.PreviousConn())
	add("next", n.NextConn())
	add("output", n.OutputConn())
	for _, in := range n.NodeInputs() {
		if c, ok := in.Connection().(*block.NodeConnection); ok && in.Visible() {
			add("input:"+in.Name(), c)
		}
	}
	return out
}
