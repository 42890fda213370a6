package constants

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blockrender/pkg/errors"
)

// LoadOverrides reads constant overrides from a TOML or YAML file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "constants file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read constants %s", path)
	}
	return ParseOverrides(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseOverrides decodes a flat table of numbers and booleans.
func ParseOverrides(data []byte, format string) (Overrides, error) {
	raw := map[string]any{}
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml constants")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml constants")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported constants format %q", format)
	}

	out := make(Overrides, len(raw))
	for k, v := range raw {
		switch n := v.(type) {
		case int:
			out[k] = float64(n)
		case int64:
			out[k] = float64(n)
		case float64:
			out[k] = n
		case bool:
			out[k] = 0
			if n {
				out[k] = 1
			}
		default:
			return nil, errors.New(errors.ErrCodeInvalidConstants, "constant %q must be a number, got %T", k, v)
		}
	}
	return out, nil
}

// ParseAssignments parses "key=value" pairs as given on the command line.
func ParseAssignments(pairs []string) (Overrides, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	doc := strings.Join(pairs, "\n")
	return ParseOverrides([]byte(doc), "toml")
}
