package pipeline

import (
	"github.com/matzehuels/blockrender/pkg/block"
	docio "github.com/matzehuels/blockrender/pkg/io"
)

// Parse decodes the document into top-level block stacks. opts.RTL forces
// right-to-left rendering on every block.
func Parse(opts Options) ([]*block.Node, error) {
	roots, err := docio.Read(opts.Document, opts.DocumentFormat)
	if err != nil {
		return nil, err
	}
	if opts.RTL {
		for _, root := range roots {
			root.Walk(func(n *block.Node) bool {
				n.SetRTL(true)
				return true
			})
		}
	}
	return roots, nil
}
