package theme

import (
	"sort"

	"github.com/matzehuels/blockrender/pkg/errors"
)

// DefaultName is the theme used when none is requested.
const DefaultName = "classic"

var builtins = map[string]func() *Theme{
	"classic": Classic,
	"modern":  Modern,
	"dark":    Dark,
}

// Names lists the built-in themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns a fresh copy of a built-in theme.
func Get(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	mk, ok := builtins[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownTheme, "unknown theme %q (available: %v)", name, Names())
	}
	return mk(), nil
}

// Classic uses the traditional hue-based palette.
func Classic() *Theme {
	t := &Theme{
		Name: "classic",
		BlockStyles: map[string]BlockStyle{
			"colour_blocks":    {ColourPrimary: "20"},
			"list_blocks":      {ColourPrimary: "260"},
			"logic_blocks":     {ColourPrimary: "210"},
			"loop_blocks":      {ColourPrimary: "120"},
			"math_blocks":      {ColourPrimary: "230"},
			"procedure_blocks": {ColourPrimary: "290"},
			"text_blocks":      {ColourPrimary: "160"},
			"variable_blocks":  {ColourPrimary: "330"},
			"hat_blocks":       {ColourPrimary: "330", Hat: "cap"},
		},
	}
	mustNormalize(t)
	return t
}

// Modern uses flat colours with explicit borders.
func Modern() *Theme {
	t := &Theme{
		Name: "modern",
		BlockStyles: map[string]BlockStyle{
			"colour_blocks":    {ColourPrimary: "#a5745b", ColourSecondary: "#dbc7bd", ColourTertiary: "#845d49"},
			"list_blocks":      {ColourPrimary: "#745ba5", ColourSecondary: "#c7bddb", ColourTertiary: "#5d4984"},
			"logic_blocks":     {ColourPrimary: "#5b80a5", ColourSecondary: "#bdccdb", ColourTertiary: "#496684"},
			"loop_blocks":      {ColourPrimary: "#5ba55b", ColourSecondary: "#bddbbd", ColourTertiary: "#498449"},
			"math_blocks":      {ColourPrimary: "#5b67a5", ColourSecondary: "#bdc2db", ColourTertiary: "#495284"},
			"procedure_blocks": {ColourPrimary: "#995ba5", ColourSecondary: "#d6bddb", ColourTertiary: "#7a4984"},
			"text_blocks":      {ColourPrimary: "#5ba58c", ColourSecondary: "#bddbd1", ColourTertiary: "#498470"},
			"variable_blocks":  {ColourPrimary: "#a55b99", ColourSecondary: "#dbbdd6", ColourTertiary: "#84497a"},
			"hat_blocks":       {ColourPrimary: "#a55b99", ColourSecondary: "#dbbdd6", ColourTertiary: "#84497a", Hat: "cap"},
		},
	}
	mustNormalize(t)
	return t
}

// Dark is Modern on a dark canvas.
func Dark() *Theme {
	t := Modern()
	t.Name = "dark"
	t.Components = ComponentStyles{
		WorkspaceBackgroundColour: "#1e1e1e",
		SelectedGlowColour:        "#fcc419",
		FieldTextColour:           "#ffffff",
		FieldBackgroundColour:     "#2b2b2b",
	}
	return t
}

func mustNormalize(t *Theme) {
	if err := t.Normalize(); err != nil {
		panic(err)
	}
}
