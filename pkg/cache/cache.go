// Package cache stores rendered scenes and artifacts between runs.
//
// Keys are built by a [Keyer] from a hash of the source document plus every
// option that changes the output, so a cached entry is only reused for an
// identical render. Backends implement [Cache]: [FileCache] for the CLI,
// [RedisCache] for the render server and [NullCache] when caching is off.
package cache

import (
	"context"
	"time"
)

// TTLArtifact bounds how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SceneKeyOpts are the options that change measured geometry.
type SceneKeyOpts struct {
	Renderer  string             `json:"renderer"`
	Theme     string             `json:"theme"`
	Overrides map[string]float64 `json:"overrides,omitempty"`
	RTL       bool               `json:"rtl"`
	Flow      bool               `json:"flow"`
}

// ArtifactKeyOpts are the options that change an encoded artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Background bool    `json:"background,omitempty"`
	NoText     bool    `json:"no_text,omitempty"`
	Check      bool    `json:"check,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	SceneKey(docHash string, opts SceneKeyOpts) string
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey returns "scene:<hash>" over the document hash and opts.
// Overrides are marshalled as a JSON object, which sorts their keys.
func (k *DefaultKeyer) SceneKey(docHash string, opts SceneKeyOpts) string {
	return hashKey("scene", docHash, opts)
}

// ArtifactKey returns "artifact:<hash>" over the scene hash and opts.
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
