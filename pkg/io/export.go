package io

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
)

// FromNodes converts block stacks back into a document.
func FromNodes(roots []*block.Node) *Document {
	doc := &Document{Blocks: make([]Block, 0, len(roots))}
	for _, n := range roots {
		if n.RTL() {
			doc.RTL = true
		}
		b := fromNode(n)
		b.X, b.Y = n.X, n.Y
		doc.Blocks = append(doc.Blocks, *b)
	}
	return doc
}

func fromNode(n *block.Node) *Block {
	b := &Block{
		ID:              n.ID(),
		Type:            n.Type(),
		Style:           n.Style(),
		Inline:          n.InputsInline(),
		Collapsed:       n.Collapsed(),
		Shadow:          n.Shadow(),
		InsertionMarker: n.InsertionMarker(),
		Selected:        n.Selected,
		Hat:             n.Hat(),
		Previous:        connection(n.PreviousConn()),
		Next:            connection(n.NextConn()),
		Output:          connection(n.OutputConn()),
	}
	for name, shape := range outputShapes {
		if shape == n.OutputShape() && name != "" {
			b.OutputShape = name
		}
	}
	if n.Collapsed() && n.CollapsedSummary() != nil {
		b.Summary = n.CollapsedSummary().Text()
	}
	for _, ic := range n.Icons() {
		s := ic.Size()
		b.Icons = append(b.Icons, Size{Width: s.Width, Height: s.Height})
	}
	for _, in := range n.NodeInputs() {
		out := Input{
			Name:   in.Name(),
			Type:   in.Type().String(),
			Hidden: !in.Visible(),
		}
		if in.Align() != block.AlignLeft {
			out.Align = in.Align().String()
		}
		if c := in.Connection(); c != nil {
			out.Check = c.Check()
		}
		for _, f := range in.Fields() {
			out.Fields = append(out.Fields, exportField(f))
		}
		if child := in.Child(); child != nil {
			out.Block = fromNode(child)
		}
		b.Inputs = append(b.Inputs, out)
	}
	if next := n.NextNode(); next != nil {
		b.NextBlock = fromNode(next)
	}
	return b
}

func connection(c *block.NodeConnection) *Connection {
	if c == nil {
		return nil
	}
	return &Connection{Check: c.Check()}
}

func exportField(f block.Field) Field {
	out := Field{Name: f.Name(), Text: f.Text(), Editable: f.Editable(), FlipRTL: f.FlipRTL()}
	if _, ok := f.(*block.SizedField); ok {
		s := f.Size()
		out.Width, out.Height = s.Width, s.Height
	}
	return out
}

// Encode writes a document in the given format.
func Encode(doc *Document, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml document")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml document")
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml document")
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json document")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	return buf.Bytes(), nil
}
