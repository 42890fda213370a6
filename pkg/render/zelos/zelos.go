// Package zelos is the modern renderer: grid-aligned sizes, rounded and
// hexagonal value shapes that stretch with the block, and empty inline
// inputs drawn as separate outlines.
package zelos

import "github.com/matzehuels/blockrender/pkg/render/renderer"

// Name is the registry name of the renderer.
const Name = "zelos"

// New returns an uninitialized zelos renderer.
func New() *renderer.Renderer {
	return &renderer.Renderer{
		Name:           Name,
		Description:    "modern rounded blocks with dynamic value shapes",
		MakeConstants:  NewConstants,
		MakeRenderInfo: NewRenderInfo,
		MakeDrawer:     NewDrawer,
	}
}
