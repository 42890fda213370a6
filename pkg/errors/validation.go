package errors

import (
	"regexp"
	"unicode"
)

// rendererNameRegex matches names accepted by the renderer registry.
var rendererNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateRendererName validates a name before it is registered or looked up.
func ValidateRendererName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRenderer, "renderer name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidRenderer, "renderer name too long (max 64 characters)")
	}
	if !rendererNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRenderer, "invalid renderer name: %q", name)
	}
	return nil
}

// ValidateBlockID validates a block identifier from a workspace document.
// IDs are opaque but must be printable so they survive SVG attributes and logs.
func ValidateBlockID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidWorkspace, "block id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidWorkspace, "block id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidWorkspace, "block id contains invalid characters: %q", id)
		}
	}
	return nil
}
