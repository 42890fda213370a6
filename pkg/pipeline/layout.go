package pipeline

import (
	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

// Layout measures, draws and positions every block with an initialized
// renderer.
func Layout(r *renderer.Renderer, roots []*block.Node, opts Options) *workspace.Scene {
	wsOpts := []workspace.Option{workspace.WithLogger(opts.Logger)}
	if opts.Flow {
		wsOpts = append(wsOpts, workspace.WithFlow(true))
	}
	return workspace.Render(r, roots, wsOpts...)
}

// countBlocks returns the number of blocks reachable from roots.
func countBlocks(roots []*block.Node) int {
	var n int
	for _, root := range roots {
		root.Walk(func(*block.Node) bool {
			n++
			return true
		})
	}
	return n
}
