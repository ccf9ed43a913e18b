package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/syntree-dev/syntree/pkg/cache"
)

// Runner encapsulates pipeline execution with artifact caching. It is
// stateless apart from the cache and logger; multiple goroutines can use
// the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to the package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  cache.NewDefaultKeyer(),
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → resolve → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	result := &Result{Artifacts: make(map[string][]byte)}
	cfg := opts.LayoutConfig()

	parseStart := time.Now()
	root := Parse(opts.Source)
	result.Root = root
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = root.Count()

	layoutStart := time.Now()
	links, err := Layout(root, cfg)
	if err != nil {
		return nil, err
	}
	result.Links = links
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LinkCount = len(links)

	logger.Debug("laid out tree",
		"nodes", result.Stats.NodeCount,
		"links", result.Stats.LinkCount,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	sourceHash := cache.Hash([]byte(opts.Source))

	allCached := true
	for _, format := range opts.Formats {
		keyOpts := opts.ArtifactKeyOpts(format)
		key, ttl := r.Keyer.ArtifactKey(sourceHash, keyOpts), cache.TTLArtifact
		if format == FormatJSON {
			// Geometry is format-independent and stable for much longer
			// than the styled images derived from it.
			key, ttl = r.Keyer.GeometryKey(sourceHash, keyOpts), cache.TTLGeometry
		}

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				result.Artifacts[format] = data
				continue
			}
		}
		allCached = false

		var data []byte
		var err error
		if opts.Graph {
			data, err = RenderGraph(root, format)
		} else {
			data, err = Render(root, links, cfg, format)
		}
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
		_ = r.Cache.Set(ctx, key, data, ttl)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = allCached

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", allCached,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
