package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/sink"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the block id, style and rendered size to labels.
	Detailed bool
	// Theme fills each box with its block style colour. Nil draws white boxes.
	Theme *theme.Theme
}

// ToDOT converts block trees to Graphviz DOT.
func ToDOT(roots []*block.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	for _, root := range roots {
		root.Walk(func(n *block.Node) bool {
			fmt.Fprintf(&buf, "  %q [%s];\n", n.ID(), strings.Join(fmtAttrs(n, opts), ", "))
			for _, in := range n.NodeInputs() {
				if c := in.Child(); c != nil {
					edges = append(edges, fmt.Sprintf("  %q -> %q [label=%q];\n", n.ID(), c.ID(), in.Name()))
				}
			}
			if next := n.NextNode(); next != nil {
				edges = append(edges, fmt.Sprintf("  %q -> %q [style=dashed, label=\"next\"];\n", n.ID(), next.ID()))
			}
			return true
		})
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *block.Node, detailed bool) string {
	if !detailed {
		return n.Type()
	}
	parts := []string{n.Type(), "id: " + n.ID()}
	if n.Style() != "" {
		parts = append(parts, "style: "+n.Style())
	}
	if s := n.RenderedSize(); s.Width > 0 {
		parts = append(parts, fmt.Sprintf("size: %.0fx%.0f", s.Width, s.Height))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *block.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
	if opts.Theme != nil {
		s := opts.Theme.Style(n.Style())
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.ColourPrimary), fmt.Sprintf("color=%q", s.ColourTertiary), "fontcolor=white")
	}
	if n.Shadow() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders DOT to SVG with the embedded Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	svg, _, _, err := render(dot)
	return svg, err
}

// RenderPNG renders DOT to PNG through [sink.ToPNG].
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, w, h, err := render(dot)
	if err != nil {
		return nil, err
	}
	return sink.ToPNG(svg, w, h, scale)
}

func render(dot string) ([]byte, float64, float64, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, 0, 0, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, 0, 0, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, 0, 0, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	svg, w, h := normalizeViewBox(buf.Bytes())
	return svg, w, h, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the diagram scales with
// its container, and returns its size.
func normalizeViewBox(svg []byte) ([]byte, float64, float64) {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg, 0, 0
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg, w, h
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root)), w, h
}
