package pipeline

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/nodelink"
	"github.com/matzehuels/blockrender/pkg/render/sink"
	"github.com/matzehuels/blockrender/pkg/theme"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

// Render encodes a laid out scene in every requested format.
func Render(s *workspace.Scene, roots []*block.Node, t *theme.Theme, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(s, roots, t, opts, format)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "render %s", format)
		}
		out[format] = data
	}
	return out, nil
}

// RenderFormat encodes a scene in one format.
func RenderFormat(s *workspace.Scene, roots []*block.Node, t *theme.Theme, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		data := sink.RenderSVG(s, svgOptions(t, opts)...)
		if opts.Check {
			if _, err := sink.CheckSVG(data, s.Count()); err != nil {
				return nil, err
			}
		}
		return data, nil
	case FormatPNG:
		return sink.RenderPNG(s, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOptions(t, opts)...))
	case FormatJSON:
		return sink.RenderJSON(s, sink.WithJSONElements())
	case FormatDOT:
		return []byte(nodelink.ToDOT(roots, nodelink.Options{Detailed: true, Theme: t})), nil
	case FormatStructure:
		return nodelink.RenderSVG(nodelink.ToDOT(roots, nodelink.Options{Theme: t}))
	default:
		return nil, ValidateFormat(format)
	}
}

func svgOptions(t *theme.Theme, opts Options) []sink.SVGOption {
	out := []sink.SVGOption{sink.WithTheme(t)}
	if opts.Background {
		out = append(out, sink.WithBackground())
	}
	if opts.NoText {
		out = append(out, sink.WithoutText())
	}
	return out
}
