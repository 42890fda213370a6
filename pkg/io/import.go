package io

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
)

var inputTypes = map[string]block.InputType{
	"":          block.DummyInput,
	"dummy":     block.DummyInput,
	"value":     block.ValueInput,
	"statement": block.StatementInput,
	"end_row":   block.EndRowInput,
}

var aligns = map[string]block.Align{
	"":       block.AlignLeft,
	"left":   block.AlignLeft,
	"centre": block.AlignCentre,
	"center": block.AlignCentre,
	"right":  block.AlignRight,
}

var outputShapes = map[string]block.OutputShape{
	"":          block.OutputShapeNone,
	"hexagonal": block.OutputShapeHexagonal,
	"round":     block.OutputShapeRound,
	"square":    block.OutputShapeSquare,
}

// Decode parses a document without building blocks.
func Decode(data []byte, format string) (*Document, error) {
	var doc Document
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml document")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml document")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json document")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	return &doc, nil
}

// Read decodes a document and builds its block stacks.
func Read(data []byte, format string) ([]*block.Node, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// Load reads a document file, choosing the format by extension.
func Load(path string) ([]*block.Node, error) {
	format := FormatFromPath(path)
	if format == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format of %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document %s", path)
	}
	return Read(data, format)
}

// Build converts the document into top-level block stacks. Missing ids are
// filled in on the document as well, so a later [Encode] keeps them.
func (d *Document) Build() ([]*block.Node, error) {
	b := builder{seen: make(map[string]bool)}
	roots := make([]*block.Node, 0, len(d.Blocks))
	for i := range d.Blocks {
		n, err := b.build(&d.Blocks[i])
		if err != nil {
			return nil, err
		}
		n.X, n.Y = d.Blocks[i].X, d.Blocks[i].Y
		roots = append(roots, n)
	}
	if d.RTL {
		for _, root := range roots {
			root.Walk(func(n *block.Node) bool {
				n.SetRTL(true)
				return true
			})
		}
	}
	return roots, nil
}

type builder struct {
	seen map[string]bool
}

func (b *builder) build(src *Block) (*block.Node, error) {
	if src.ID == "" {
		src.ID = uuid.NewString()
	}
	if err := errors.ValidateBlockID(src.ID); err != nil {
		return nil, err
	}
	if b.seen[src.ID] {
		return nil, errors.New(errors.ErrCodeInvalidWorkspace, "duplicate block id %q", src.ID)
	}
	b.seen[src.ID] = true

	if src.Type == "" {
		return nil, errors.New(errors.ErrCodeInvalidWorkspace, "block %s: missing type", src.ID)
	}
	if src.Output != nil && src.Previous != nil {
		return nil, errors.New(errors.ErrCodeInvalidWorkspace,
			"block %s: cannot have both an output and a previous connection", src.ID)
	}
	shape, ok := outputShapes[src.OutputShape]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidWorkspace, "block %s: unknown output shape %q", src.ID, src.OutputShape)
	}

	opts := []block.NodeOption{block.WithStyle(src.Style), block.WithOutputShape(shape)}
	if src.Previous != nil {
		opts = append(opts, block.WithPrevious(src.Previous.Check...))
	}
	if src.Next != nil {
		opts = append(opts, block.WithNext(src.Next.Check...))
	}
	if src.Output != nil {
		opts = append(opts, block.WithOutput(src.Output.Check...))
	}
	if src.Inline {
		opts = append(opts, block.WithInline())
	}
	if src.Shadow {
		opts = append(opts, block.WithShadow())
	}
	if src.InsertionMarker {
		opts = append(opts, block.WithInsertionMarker())
	}
	if src.Hat != "" {
		opts = append(opts, block.WithHat(src.Hat))
	}
	for _, ic := range src.Icons {
		opts = append(opts, block.WithIcon(block.NewIcon(block.Size{Width: ic.Width, Height: ic.Height})))
	}
	if src.Collapsed {
		opts = append(opts, block.WithCollapsed(block.NewTextField("", summary(src), false)))
	}

	n := block.NewNode(src.ID, src.Type, opts...)
	n.Selected = src.Selected

	for i := range src.Inputs {
		if err := b.addInput(n, &src.Inputs[i]); err != nil {
			return nil, err
		}
	}

	if src.NextBlock != nil {
		child, err := b.build(src.NextBlock)
		if err != nil {
			return nil, err
		}
		if !n.AttachNext(child) {
			return nil, errors.New(errors.ErrCodeInvalidWorkspace,
				"block %s: cannot chain %s below it (next and previous connections required)", src.ID, child.ID())
		}
	}
	return n, nil
}

func (b *builder) addInput(n *block.Node, src *Input) error {
	typ, ok := inputTypes[src.Type]
	if !ok {
		return errors.New(errors.ErrCodeInvalidWorkspace, "block %s: input %q has unknown type %q", n.ID(), src.Name, src.Type)
	}
	align, ok := aligns[src.Align]
	if !ok {
		return errors.New(errors.ErrCodeInvalidWorkspace, "block %s: input %q has unknown align %q", n.ID(), src.Name, src.Align)
	}
	if n.Input(src.Name) != nil && src.Name != "" {
		return errors.New(errors.ErrCodeInvalidWorkspace, "block %s: duplicate input %q", n.ID(), src.Name)
	}

	fields := make([]block.Field, 0, len(src.Fields))
	for _, f := range src.Fields {
		fields = append(fields, field(f))
	}
	in := n.AddInput(src.Name, typ, fields...).SetAlign(align).SetVisible(!src.Hidden)
	if len(src.Check) > 0 {
		in.SetCheck(src.Check...)
	}

	if src.Block == nil {
		return nil
	}
	if typ != block.ValueInput && typ != block.StatementInput {
		return errors.New(errors.ErrCodeInvalidWorkspace, "block %s: %s input %q cannot hold a block", n.ID(), typ, src.Name)
	}
	child, err := b.build(src.Block)
	if err != nil {
		return err
	}
	if !in.Attach(child) {
		want := "an output"
		if typ == block.StatementInput {
			want = "a previous"
		}
		return errors.New(errors.ErrCodeInvalidWorkspace,
			"block %s: %s in input %q needs %s connection", n.ID(), child.ID(), src.Name, want)
	}
	return nil
}

func field(f Field) block.Field {
	if f.Width > 0 && f.Height > 0 {
		return block.NewSizedField(f.Name, block.Size{Width: f.Width, Height: f.Height}, f.Editable)
	}
	tf := block.NewTextField(f.Name, f.Text, f.Editable)
	if f.FlipRTL {
		tf.WithFlipRTL()
	}
	return tf
}

// summary is the text shown on a collapsed block: the explicit summary, or
// the text of its fields.
func summary(src *Block) string {
	if src.Summary != "" {
		return src.Summary
	}
	var parts []string
	for _, in := range src.Inputs {
		for _, f := range in.Fields {
			if f.Text != "" {
				parts = append(parts, f.Text)
			}
		}
	}
	if len(parts) == 0 {
		return src.Type
	}
	return strings.Join(parts, " ")
}
