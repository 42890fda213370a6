package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blockrender/pkg/errors"
)

// Load reads a theme from a TOML or YAML file, chosen by extension.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read theme %s", path)
	}
	return Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse decodes a theme in the given format ("toml", "yaml" or "yml").
func Parse(data []byte, format string) (*Theme, error) {
	var t Theme
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml theme")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml theme")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported theme format %q", format)
	}
	if t.BlockStyles == nil {
		t.BlockStyles = map[string]BlockStyle{}
	}
	if err := t.Normalize(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Resolve returns a built-in theme by name, or loads it from disk when
// nameOrPath points at a file.
func Resolve(nameOrPath string) (*Theme, error) {
	if ext := filepath.Ext(nameOrPath); ext == ".toml" || ext == ".yaml" || ext == ".yml" {
		return Load(nameOrPath)
	}
	return Get(nameOrPath)
}
