package sink

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

// DefaultScale renders PNGs at twice the scene resolution.
const DefaultScale = 2.0

// MaxScale is the largest accepted scale factor.
const MaxScale = 16.0

// MaxPixels bounds the raster size of a PNG, about 128 MiB of RGBA.
const MaxPixels = 1 << 25

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the scene's SVG. Text is not rasterized; the
// rasterizer only fills and strokes paths.
func RenderPNG(s *workspace.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || r.scale > MaxScale {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be in (0, %v], got %v", MaxScale, r.scale)
	}
	return ToPNG(RenderSVG(s, r.svgOpts...), s.Width, s.Height, r.scale)
}

// ToPNG rasterizes an SVG document of the given size. Rasters larger than
// MaxPixels are rejected before any allocation.
func ToPNG(svgData []byte, width, height, scale float64) ([]byte, error) {
	fw, fh := math.Ceil(width*scale), math.Ceil(height*scale)
	if !(fw*fh <= MaxPixels) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"png of %v×%v pixels exceeds the %d pixel limit, lower the scale", fw, fh, MaxPixels)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}

	w := max(1, int(fw))
	h := max(1, int(fh))
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
