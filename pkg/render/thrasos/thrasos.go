// Package thrasos is the default renderer: classic puzzle tabs and
// notches with the base layout rules and flat colours.
package thrasos

import (
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
)

// Name is the registry name of the renderer.
const Name = "thrasos"

// New returns an uninitialized thrasos renderer.
func New() *renderer.Renderer {
	return &renderer.Renderer{
		Name:          Name,
		Description:   "classic shapes with flat colours (default)",
		MakeConstants: constants.NewBase,
	}
}
