// Package cache provides pluggable byte caches for rendered artifacts.
//
// The pipeline is deterministic, so a (source, config, format) triple
// fully identifies a rendered image; caches store the encoded bytes under
// content-hashed keys. Backends: FileCache for the CLI, RedisCache and
// MongoCache for server deployments, NullCache to disable caching.
package cache

import (
	"context"
	"time"
)

// TTLs per cached object class.
const (
	// TTLArtifact applies to rendered images (png/svg/dot bytes).
	TTLArtifact = 7 * 24 * time.Hour

	// TTLGeometry applies to serialized layout geometry.
	TTLGeometry = 30 * 24 * time.Hour
)

// Cache stores opaque bytes under string keys with optional expiry.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. Implementations must be safe
// for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts captures everything besides the source string that
// changes rendered output.
type ArtifactKeyOpts struct {
	Format        string
	Graph         bool
	FontSize      float64
	VSpace        float64
	HGap          float64
	Margin        float64
	TerminalLines bool
	Color         bool
}

// Keyer builds cache keys. Implementations may namespace keys for
// multi-tenant deployments (see ScopedKeyer).
type Keyer interface {
	// ArtifactKey keys one rendered artifact by source hash and options.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string

	// GeometryKey keys the serialized layout geometry for a source.
	GeometryKey(sourceHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sourceHash, opts)
}

// GeometryKey generates a key for geometry caching.
func (k *DefaultKeyer) GeometryKey(sourceHash string, opts ArtifactKeyOpts) string {
	opts.Format = ""
	return hashKey("geometry", sourceHash, opts)
}
