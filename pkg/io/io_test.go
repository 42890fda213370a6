package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/block"
	"github.com/matzehuels/blockrender/pkg/errors"
)

const sampleYAML = `
blocks:
  - id: if1
    type: controls_if
    style: logic_blocks
    x: 20
    y: 30
    previous: {}
    next: {}
    inputs:
      - name: IF0
        type: value
        check: [Boolean]
        fields: [{text: if}]
        block:
          id: bool1
          type: logic_boolean
          output: {check: [Boolean]}
          output_shape: hexagonal
          inputs:
            - fields: [{name: BOOL, text: "true", editable: true}]
      - name: DO0
        type: statement
        align: right
        fields: [{text: do}]
        block:
          type: text_print
          previous: {}
          next: {}
    next_block:
      id: after
      type: text_print
      previous: {}
      collapsed: true
      inputs:
        - fields: [{text: print}, {text: hello}]
`

const sampleTOML = `
rtl = true

[[blocks]]
id = "v"
type = "math_number"
output = {}

  [[blocks.inputs]]
  fields = [{ name = "NUM", text = "42", editable = true }]
`

const sampleJSON = `{
  "blocks": [
    {"id": "img", "type": "image", "previous": {}, "icons": [{"width": 16, "height": 16}],
     "inputs": [{"fields": [{"name": "IMG", "width": 30, "height": 20}]}]}
  ]
}`

func TestReadYAML(t *testing.T) {
	roots, err := Read([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, roots, 1)

	root := roots[0]
	assert.Equal(t, "if1", root.ID())
	assert.Equal(t, "logic_blocks", root.Style())
	assert.Equal(t, 20.0, root.X)
	assert.Equal(t, 30.0, root.Y)
	require.NotNil(t, root.PreviousConn())

	cond := root.Input("IF0").Child()
	require.NotNil(t, cond)
	assert.Equal(t, "bool1", cond.ID())
	assert.Equal(t, block.OutputShapeHexagonal, cond.OutputShape())
	assert.Equal(t, []string{"Boolean"}, root.Input("IF0").Connection().Check())

	do := root.Input("DO0")
	assert.Equal(t, block.AlignRight, do.Align())
	require.NotNil(t, do.Child())
	assert.NoError(t, uuid.Validate(do.Child().ID()), "missing ids are generated")

	next := root.NextNode()
	require.NotNil(t, next)
	assert.True(t, next.Collapsed())
	assert.Equal(t, "print hello", next.CollapsedSummary().Text())
}

func TestReadTOML(t *testing.T) {
	roots, err := Read([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.True(t, roots[0].RTL())
	assert.NotNil(t, roots[0].OutputConn())
	assert.Equal(t, "42", roots[0].NodeInputs()[0].Fields()[0].Text())
}

func TestReadJSON(t *testing.T) {
	roots, err := Read([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	f := roots[0].NodeInputs()[0].Fields()[0]
	assert.Equal(t, block.Size{Width: 30, Height: 20}, f.Size())
	assert.Len(t, roots[0].Icons(), 1)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"malformed", "blocks: [", errors.ErrCodeInvalidFormat},
		{"missing type", "blocks: [{id: a}]", errors.ErrCodeInvalidWorkspace},
		{"duplicate id", "blocks: [{id: a, type: t}, {id: a, type: t}]", errors.ErrCodeInvalidWorkspace},
		{"bad id", "blocks: [{id: 'a b', type: t}]", errors.ErrCodeInvalidWorkspace},
		{"output and previous", "blocks: [{type: t, output: {}, previous: {}}]", errors.ErrCodeInvalidWorkspace},
		{"unknown input type", "blocks: [{type: t, inputs: [{type: slot}]}]", errors.ErrCodeInvalidWorkspace},
		{"unknown align", "blocks: [{type: t, inputs: [{align: middle}]}]", errors.ErrCodeInvalidWorkspace},
		{"unknown shape", "blocks: [{type: t, output: {}, output_shape: star}]", errors.ErrCodeInvalidWorkspace},
		{"statement in value input", `
blocks:
  - type: t
    inputs:
      - {name: A, type: value, block: {type: s, previous: {}}}`, errors.ErrCodeInvalidWorkspace},
		{"block in dummy input", `
blocks:
  - type: t
    inputs:
      - {block: {type: v, output: {}}}`, errors.ErrCodeInvalidWorkspace},
		{"next without connection", "blocks: [{type: t, next_block: {type: u, previous: {}}}]", errors.ErrCodeInvalidWorkspace},
		{"duplicate input", "blocks: [{type: t, inputs: [{name: A}, {name: A}]}]", errors.ErrCodeInvalidWorkspace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read([]byte(tt.doc), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), err.Error())
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := Read([]byte("{}"), "xml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestRoundTripAcrossFormats(t *testing.T) {
	roots, err := Read([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	want, err := Encode(FromNodes(roots), FormatJSON)
	require.NoError(t, err)

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(FromNodes(roots), format)
			require.NoError(t, err)

			again, err := Read(data, format)
			require.NoError(t, err)
			got, err := Encode(FromNodes(again), FormatJSON)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ws.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	roots, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, roots, 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = Load(filepath.Join(dir, "ws.txt"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestBuildFillsIDs(t *testing.T) {
	doc, err := Decode([]byte("blocks: [{type: t}]"), FormatYAML)
	require.NoError(t, err)
	roots, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, roots[0].ID(), doc.Blocks[0].ID)
}
