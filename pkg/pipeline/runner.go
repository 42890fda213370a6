package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockrender/pkg/cache"
	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/observability"
	"github.com/matzehuels/blockrender/pkg/render/builtin"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// Runner executes the pipeline with caching. It holds no per-run state,
// so one Runner may serve concurrent requests.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Registry *renderer.Registry
	Logger   *log.Logger
}

// NewRunner creates a runner. Nil arguments fall back to a NullCache, the
// DefaultKeyer, the built-in renderers and the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, reg *renderer.Registry, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if reg == nil {
		reg = builtin.NewRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Registry: reg, Logger: logger}
}

// Execute runs parse → layout → render, serving artifacts from the cache
// when every requested format is already stored. Stage logs go to
// opts.Logger, or to the runner's logger when it is unset.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	t, err := theme.Resolve(opts.Theme)
	if err != nil {
		return nil, err
	}

	result := &Result{DocHash: cache.Hash(opts.Document)}
	sceneHash := cache.Hash([]byte(r.Keyer.SceneKey(result.DocHash, opts.SceneKeyOpts(themeKey(t)))))

	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, sceneHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			opts.Logger.Info("served from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	hooks := observability.Pipeline()

	// Stage 1: Parse
	start := time.Now()
	hooks.OnParseStart(ctx, opts.DocumentFormat, len(opts.Document))
	roots, err := Parse(opts)
	if err != nil {
		hooks.OnParseComplete(ctx, opts.DocumentFormat, 0, time.Since(start), err)
		return nil, err
	}
	result.Roots = roots
	result.Stats.ParseTime = time.Since(start)
	result.Stats.StackCount = len(roots)
	result.Stats.BlockCount = countBlocks(roots)
	hooks.OnParseComplete(ctx, opts.DocumentFormat, result.Stats.BlockCount, result.Stats.ParseTime, nil)
	opts.Logger.Info("parsed document",
		"stacks", result.Stats.StackCount,
		"blocks", result.Stats.BlockCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	start = time.Now()
	hooks.OnLayoutStart(ctx, opts.Renderer, result.Stats.BlockCount)
	rend, err := r.Registry.Init(opts.Renderer, t, opts.Overrides)
	if err != nil {
		hooks.OnLayoutComplete(ctx, opts.Renderer, time.Since(start), err)
		return nil, err
	}
	result.Scene = Layout(rend, roots, opts)
	result.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, rend.Name, result.Stats.LayoutTime, nil)
	opts.Logger.Info("laid out scene",
		"renderer", rend.Name,
		"width", result.Scene.Width,
		"height", result.Scene.Height,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	start = time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(result.Scene, roots, t, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return result, nil
}

func (r *Runner) cached(ctx context.Context, sceneHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)))
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
			return nil, false
		}
		if !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, format)
		artifacts[format] = data
	}
	return artifacts, true
}

// themeKey identifies a theme by name and contents, so an edited theme
// file does not reuse stale artifacts.
func themeKey(t *theme.Theme) string {
	data, err := json.Marshal(t)
	if err != nil {
		panic(errors.Wrap(errors.ErrCodeInternal, err, "marshal theme"))
	}
	return t.Name + ":" + cache.Hash(data)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
