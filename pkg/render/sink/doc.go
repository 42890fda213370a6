// Package sink encodes a rendered [workspace.Scene] into output formats.
//
// [RenderSVG] writes one group per block holding its outline, per-input
// outline holes, the optional highlight and selection paths, followed by
// the field text. [RenderPNG] rasterizes that SVG in-process, [RenderJSON]
// dumps the measured geometry, and [CheckSVG] parses an SVG back and
// confirms every block path survived.
//
// [workspace.Scene]: github.com/matzehuels/blockrender/pkg/workspace.Scene
package sink
