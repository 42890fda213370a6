// Package nodelink draws the structure of block trees as Graphviz
// diagrams.
//
// Each block becomes a box labelled with its type, and each attachment an
// arrow: solid arrows for blocks held by inputs (labelled with the input
// name) and dashed arrows for next connections.
//
//	dot := nodelink.ToDOT(roots, nodelink.Options{Theme: t})
//	svg, err := nodelink.RenderSVG(dot)
package nodelink
