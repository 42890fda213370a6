// Package pkg provides the core libraries for blockrender, a block
// rendering engine for visual programming editors.
//
// # Overview
//
// blockrender turns a workspace document, a YAML, TOML or JSON description
// of block trees, into drawn block outlines. Each block is measured into
// rows of elements, outlined by a renderer-specific draw pass, and placed
// on a workspace canvas. The pkg directory is organized into these areas:
//
//  1. [block] - The block model the engine reads
//  2. [render] - Renderers: constants, measure pass, draw pass
//  3. [workspace] - Placing whole block trees on a canvas
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//  5. [server] - The pipeline over HTTP
//
// # Architecture
//
// The typical data flow:
//
//	Workspace document (YAML/TOML/JSON)
//	         ↓
//	    [io] package (decode into block trees)
//	         ↓
//	    [render/info] package (measure rows and elements)
//	         ↓
//	    [render/draw] package (outline paths)
//	         ↓
//	    [workspace] package (position stacks and children)
//	         ↓
//	    SVG/PNG/JSON/DOT output
//
// # Quick Start
//
// Load a document and render it with the modern renderer:
//
//	import (
//	    "github.com/matzehuels/blockrender/pkg/io"
//	    "github.com/matzehuels/blockrender/pkg/render/builtin"
//	    "github.com/matzehuels/blockrender/pkg/render/sink"
//	    "github.com/matzehuels/blockrender/pkg/theme"
//	    "github.com/matzehuels/blockrender/pkg/workspace"
//	)
//
//	roots, _ := io.Load("program.yaml")
//	r, _ := builtin.NewRegistry().Init("zelos", theme.Classic(), nil)
//	scene := workspace.Render(r, roots)
//	svg := sink.RenderSVG(scene)
//
// Most callers go through [pipeline.Runner], which adds validation and
// artifact caching on top of the same steps.
//
// # Supporting Packages
//
//   - [cache]: Artifact cache backends (file, redis, null)
//   - [errors]: Coded errors shared by the CLI and the server
//   - [theme]: Block colours and workspace styles
//   - [observability]: Metrics and tracing hooks
//   - [buildinfo]: Version information
//
// [block]: github.com/matzehuels/blockrender/pkg/block
// [render]: github.com/matzehuels/blockrender/pkg/render
// [render/info]: github.com/matzehuels/blockrender/pkg/render/info
// [render/draw]: github.com/matzehuels/blockrender/pkg/render/draw
// [workspace]: github.com/matzehuels/blockrender/pkg/workspace
// [pipeline]: github.com/matzehuels/blockrender/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/blockrender/pkg/pipeline#Runner
// [server]: github.com/matzehuels/blockrender/pkg/server
// [io]: github.com/matzehuels/blockrender/pkg/io
// [cache]: github.com/matzehuels/blockrender/pkg/cache
// [errors]: github.com/matzehuels/blockrender/pkg/errors
// [theme]: github.com/matzehuels/blockrender/pkg/theme
// [observability]: github.com/matzehuels/blockrender/pkg/observability
// [buildinfo]: github.com/matzehuels/blockrender/pkg/buildinfo
package pkg
