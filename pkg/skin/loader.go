package skin

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image"
	"io"
	"path"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/sweepskin/pkg/errors"
)

// ImageCache memoizes decoded images keyed by source and path, so two
// loaders over the same source share decode work. Safe for concurrent use.
type ImageCache struct {
	mu     sync.RWMutex
	images map[imageKey]image.Image
}

type imageKey struct {
	sourceID string
	path     string
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[imageKey]image.Image)}
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

func (c *ImageCache) get(key imageKey) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[key]
	return img, ok
}

func (c *ImageCache) set(key imageKey, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[key] = img
}

// Loader decodes images from a Source with caching. Sub derives loaders
// scoped to a subdirectory, so components can be handed a loader for just
// their corner of the skin.
type Loader struct {
	source Source
	prefix string
	cache  *ImageCache
}

// NewLoader creates a loader over src. A nil cache gets a fresh private one.
func NewLoader(src Source, cache *ImageCache) *Loader {
	if cache == nil {
		cache = NewImageCache()
	}
	return &Loader{source: src, cache: cache}
}

// Sub returns a loader scoped to the given subdirectory. The derived loader
// shares the parent's source and cache.
func (l *Loader) Sub(dir string) *Loader {
	return &Loader{
		source: l.source,
		prefix: path.Join(l.prefix, dir),
		cache:  l.cache,
	}
}

// Source returns the underlying source.
func (l *Loader) Source() Source { return l.source }

// Cache returns the shared image cache.
func (l *Loader) Cache() *ImageCache { return l.cache }

// Image loads and decodes the image at the given path, relative to the
// loader's scope. Decoded images are cached.
func (l *Loader) Image(p string) (image.Image, error) {
	full := path.Join(l.prefix, p)
	key := imageKey{sourceID: l.source.ID(), path: full}
	if img, ok := l.cache.get(key); ok {
		return img, nil
	}

	rc, err := l.source.Open(full)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, err := imaging.Decode(rc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSkin, err, "decode %s", full)
	}

	l.cache.set(key, img)
	return img, nil
}

// Preload decodes each of the given paths into the cache, additionally
// hashing the raw file bytes. The combined digest identifies the skin
// content: any changed, added, or reordered file yields a different hash.
func (l *Loader) Preload(paths ...string) (string, error) {
	h := sha256.New()
	for _, p := range paths {
		full := path.Join(l.prefix, p)
		rc, err := l.source.Open(full)
		if err != nil {
			return "", err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "read %s", full)
		}

		h.Write([]byte(full))
		h.Write(data)

		key := imageKey{sourceID: l.source.ID(), path: full}
		if _, ok := l.cache.get(key); ok {
			continue
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidSkin, err, "decode %s", full)
		}
		l.cache.set(key, img)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
