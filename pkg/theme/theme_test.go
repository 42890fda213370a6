package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blockrender/pkg/errors"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ff0000", "#ff0000", false},
		{"#f00", "#ff0000", false},
		{"0", "#a65b5b", false},
		{"", "", true},
		{"red", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColour(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestNormalizeDerivesColours(t *testing.T) {
	s, err := BlockStyle{ColourPrimary: "#000000"}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, "#000000", s.ColourPrimary)
	assert.Equal(t, "#999999", s.ColourSecondary)
	assert.Equal(t, "#4d4d4d", s.ColourTertiary)
}

func TestNormalizeKeepsExplicitColours(t *testing.T) {
	s, err := BlockStyle{ColourPrimary: "#5b80a5", ColourSecondary: "#bdccdb", ColourTertiary: "#496684"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, BlockStyle{ColourPrimary: "#5b80a5", ColourSecondary: "#bdccdb", ColourTertiary: "#496684"}, s)
}

func TestStyleFallback(t *testing.T) {
	th := Classic()
	assert.Equal(t, th.BlockStyles["logic_blocks"], th.Style("logic_blocks"))
	assert.Equal(t, fallbackColour, th.Style("nope").ColourPrimary)
	assert.NotEmpty(t, th.Style("120").ColourTertiary)
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		th, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, th.Name)
	}

	def, err := Get("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, def.Name)

	_, err = Get("neon")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownTheme))
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
name = "custom"
start_hats = true

[block_styles.logic_blocks]
colour_primary = "#336699"

[components]
workspace_background_colour = "#000000"
`)
	th, err := Parse(data, "toml")
	require.NoError(t, err)
	assert.Equal(t, "custom", th.Name)
	assert.True(t, th.StartHats)
	assert.Equal(t, "#336699", th.Style("logic_blocks").ColourPrimary)
	assert.Equal(t, "#000000", th.Components.WorkspaceBackgroundColour)
	assert.Equal(t, "#fc3", th.Components.SelectedGlowColour)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: y\nblock_styles:\n  a:\n    colour_primary: \"90\"\n"), 0o644))

	th, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "y", th.Name)
	assert.NotEmpty(t, th.Style("a").ColourSecondary)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = Parse([]byte("name = \"x\""), "ini")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	_, err = Parse([]byte("block_styles: {}"), "yaml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Parse([]byte("name: x\nblock_styles:\n  a:\n    colour_primary: nope\n"), "yaml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
