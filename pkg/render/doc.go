// Package render groups the block renderers and the passes they share.
//
// # Overview
//
// A renderer is three things: a constants provider with sizes and
// connection shapes, a measure pass that lays a block out as rows of
// elements, and a draw pass that walks those rows to build the outline.
// The shared machinery lives in subpackages:
//
//   - [constants]: Sizes, shapes and overrides
//   - [measurable]: Row and element types produced by measuring
//   - [info]: The measure pass
//   - [draw]: The draw pass
//   - [pathobject]: The drawn output of one block
//   - [renderer]: Bundling and the renderer registry
//
// # Renderers
//
// Four renderers ship with the engine and are registered by [builtin]:
//
//   - [thrasos]: The default. Classic puzzle tabs
//   - [geras]: Classic shapes with an embossed highlight
//   - [zelos]: Grid-aligned, rounded and hexagonal value shapes
//   - [minimalist]: Uniform spacing, a starting point for new renderers
//
//	reg := builtin.NewRegistry()
//	r, err := reg.Init("zelos", theme.Classic(), constants.Overrides{"corner_radius": 4})
//
// # Output
//
// The [sink] subpackage encodes a placed workspace as SVG, PNG or JSON.
// The [nodelink] subpackage draws the tree structure itself with Graphviz.
//
// [constants]: github.com/matzehuels/blockrender/pkg/render/constants
// [measurable]: github.com/matzehuels/blockrender/pkg/render/measurable
// [info]: github.com/matzehuels/blockrender/pkg/render/info
// [draw]: github.com/matzehuels/blockrender/pkg/render/draw
// [pathobject]: github.com/matzehuels/blockrender/pkg/render/pathobject
// [renderer]: github.com/matzehuels/blockrender/pkg/render/renderer
// [builtin]: github.com/matzehuels/blockrender/pkg/render/builtin
// [thrasos]: github.com/matzehuels/blockrender/pkg/render/thrasos
// [geras]: github.com/matzehuels/blockrender/pkg/render/geras
// [zelos]: github.com/matzehuels/blockrender/pkg/render/zelos
// [minimalist]: github.com/matzehuels/blockrender/pkg/render/minimalist
// [sink]: github.com/matzehuels/blockrender/pkg/render/sink
// [nodelink]: github.com/matzehuels/blockrender/pkg/render/nodelink
package render
