// Package builtin registers the renderers that ship with blockrender.
package builtin

import (
	"github.com/matzehuels/blockrender/pkg/render/geras"
	"github.com/matzehuels/blockrender/pkg/render/minimalist"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
	"github.com/matzehuels/blockrender/pkg/render/thrasos"
	"github.com/matzehuels/blockrender/pkg/render/zelos"
)

// Default is the renderer used when none is named.
const Default = thrasos.Name

var factories = map[string]renderer.Factory{
	thrasos.Name:    thrasos.New,
	geras.Name:      geras.New,
	zelos.Name:      zelos.New,
	minimalist.Name: minimalist.New,
}

// Register adds every built-in renderer to reg.
func Register(reg *renderer.Registry) error {
	for _, name := range []string{thrasos.Name, geras.Name, zelos.Name, minimalist.Name} {
		if err := reg.Register(name, factories[name]); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in renderers.
func NewRegistry() *renderer.Registry {
	reg := renderer.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}
