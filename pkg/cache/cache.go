// Package cache provides caching for skin archives and rendered artifacts.
//
// Two layers of keys exist:
//   - Skin keys identify a skin by its content hash, so edits to a skin
//     on disk invalidate everything derived from it.
//   - Artifact keys identify a rendered board image by the skin plus the
//     full set of render parameters.
//
// Backends implement the Cache interface; FileCache serves the CLI,
// RedisCache serves the preview server, and NullCache disables caching.
package cache

import (
	"context"
	"time"
)

// TTLArtifact bounds how long rendered boards stay cached. Keys are
// content-addressed, so entries never serve stale data; the TTL only
// limits growth.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the interface all cache backends implement.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ArtifactKeyOpts captures every parameter that affects a rendered board.
// Two renders with equal options and equal skin content are identical.
type ArtifactKeyOpts struct {
	Rows        int `json:"rows"`
	Cols        int `json:"cols"`
	Width       int `json:"width"`
	Height      int `json:"height"`
	LeftDigits  int `json:"left_digits"`
	RightDigits int `json:"right_digits"`
}

// Keyer generates cache keys for the different cacheable stages.
type Keyer interface {
	// SkinKey generates a key for a skin identified by its content hash.
	SkinKey(contentHash string) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(skinKey string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer implementation using SHA-256 hashed
// key components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SkinKey generates a key for skin content.
func (k *DefaultKeyer) SkinKey(contentHash string) string {
	return hashKey("skin", contentHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(skinKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", skinKey, opts)
}
