package pipeline

import (
	"bytes"
	"context"
	"image/png"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sweepskin/pkg/cache"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/observability"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.New()}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.LoadSkin(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Skin = s.Manifest()
	result.SkinHash = s.ContentHash()
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.AssetCount = len(skin.Assets)

	r.Logger.Info("loaded skin",
		"skin", opts.Skin,
		"assets", result.Stats.AssetCount,
		"duration", result.Stats.LoadTime)

	rows, cols, left, right, err := opts.resolve(s.Manifest())
	if err != nil {
		return nil, err
	}
	result.Rows, result.Cols = rows, cols

	// The artifact key covers the skin content and every render parameter,
	// so a hit is always an exact match.
	artifactKey := r.Keyer.ArtifactKey(
		r.Keyer.SkinKey(s.ContentHash()),
		opts.artifactKeyOpts(rows, cols, left, right))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, artifactKey); err == nil && hit {
			if cfg, err := png.DecodeConfig(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.PNG = data
				result.Size = geom.Size{W: cfg.Width, H: cfg.Height}
				result.CacheHit = true

				r.Logger.Info("artifact cache hit", "size", result.Size)
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	d, err := r.BuildDisplay(ctx, s, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Size = d.Size()

	r.Logger.Info("resolved layout",
		"board", geom.Size{W: cols, H: rows},
		"size", result.Size,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	data, err := r.RenderPNG(ctx, s, d)
	if err != nil {
		return nil, err
	}
	result.PNG = data
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered board",
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, artifactKey, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return result, nil
}

// LoadSkin opens, preloads, and validates the skin named by the options.
func (r *Runner) LoadSkin(ctx context.Context, opts Options) (*skin.Skin, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	observability.Pipeline().OnLoadStart(ctx, opts.Skin)
	start := time.Now()

	s, err := loadSkin(opts.Skin)
	observability.Pipeline().OnLoadComplete(ctx, opts.Skin, len(skin.Assets), time.Since(start), err)
	return s, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
