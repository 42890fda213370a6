// Package io reads and writes workspace documents.
//
// A document is a list of top-level block stacks. Each block names its type,
// style and connections, and nests the blocks attached to its inputs and its
// next connection. Documents may be written in YAML, TOML or JSON:
//
//	rtl: false
//	blocks:
//	  - type: controls_if
//	    style: logic_blocks
//	    previous: {}
//	    next: {}
//	    inputs:
//	      - name: IF0
//	        type: value
//	        check: [Boolean]
//	        fields: [{text: if}]
//	        block:
//	          type: logic_boolean
//	          output: {check: [Boolean]}
//	          inputs:
//	            - fields: [{name: BOOL, text: "true", editable: true}]
//	      - name: DO0
//	        type: statement
//	        fields: [{text: do}]
//
// # Import
//
// [Load] reads a file, choosing the format by extension; [Read] decodes
// bytes in an explicit format. Both return the top-level [block.Node]
// stacks ready for rendering. Blocks without an id get a random UUID, and
// every structural mistake (duplicate ids, a value block in a statement
// input, an unknown input type) is reported as an INVALID_WORKSPACE error
// naming the offending block.
//
// # Export
//
// [FromNodes] converts block trees back into a [Document] and [Encode]
// writes it in any supported format, so a document can be converted
// between formats or normalized with generated ids filled in.
package io
