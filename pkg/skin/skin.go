// Package skin loads and validates Minesweeper skins: directory trees or
// tar.gz archives of PNG assets with a fixed layout, plus an optional
// skin.toml manifest.
//
// A skin has four bordered regions (outer display, panel, and the two
// counters), a tile set, a face set, and two digit sets. Asset dimensions
// are not prescribed; the layout engine derives all geometry from whatever
// sizes the skin ships. Validation only enforces the consistency rules the
// geometry depends on.
package skin

import (
	"strings"

	"github.com/matzehuels/sweepskin/pkg/errors"
)

// Assets lists every skinnable image, relative to the skin root.
var Assets = []string{
	"board/bg.png",
	"board/border/b.png",
	"board/border/bl.png",
	"board/border/br.png",
	"board/border/l.png",
	"board/border/r.png",
	"board/border/t.png",
	"board/border/tl.png",
	"board/border/tr.png",
	"board/tile/0.png",
	"board/tile/1.png",
	"board/tile/2.png",
	"board/tile/3.png",
	"board/tile/4.png",
	"board/tile/5.png",
	"board/tile/6.png",
	"board/tile/7.png",
	"board/tile/8.png",
	"board/tile/blast.png",
	"board/tile/flag.png",
	"board/tile/flag_wrong.png",
	"board/tile/mine.png",
	"board/tile/unopened.png",
	"border/b.png",
	"border/bl.png",
	"border/br.png",
	"border/l.png",
	"border/r.png",
	"border/t.png",
	"border/tl.png",
	"border/tr.png",
	"panel/bg.png",
	"panel/border/b.png",
	"panel/border/bl.png",
	"panel/border/br.png",
	"panel/border/l.png",
	"panel/border/r.png",
	"panel/border/t.png",
	"panel/border/tl.png",
	"panel/border/tr.png",
	"panel/face/blast.png",
	"panel/face/cool.png",
	"panel/face/happy.png",
	"panel/face/nervous.png",
	"panel/face/pressed.png",
	"panel/lcounter/border/b.png",
	"panel/lcounter/border/bl.png",
	"panel/lcounter/border/br.png",
	"panel/lcounter/border/l.png",
	"panel/lcounter/border/r.png",
	"panel/lcounter/border/t.png",
	"panel/lcounter/border/tl.png",
	"panel/lcounter/border/tr.png",
	"panel/lcounter/digit/-.png",
	"panel/lcounter/digit/0.png",
	"panel/lcounter/digit/1.png",
	"panel/lcounter/digit/2.png",
	"panel/lcounter/digit/3.png",
	"panel/lcounter/digit/4.png",
	"panel/lcounter/digit/5.png",
	"panel/lcounter/digit/6.png",
	"panel/lcounter/digit/7.png",
	"panel/lcounter/digit/8.png",
	"panel/lcounter/digit/9.png",
	"panel/lcounter/digit/off.png",
	"panel/rcounter/border/b.png",
	"panel/rcounter/border/bl.png",
	"panel/rcounter/border/br.png",
	"panel/rcounter/border/l.png",
	"panel/rcounter/border/r.png",
	"panel/rcounter/border/t.png",
	"panel/rcounter/border/tl.png",
	"panel/rcounter/border/tr.png",
	"panel/rcounter/digit/-.png",
	"panel/rcounter/digit/0.png",
	"panel/rcounter/digit/1.png",
	"panel/rcounter/digit/2.png",
	"panel/rcounter/digit/3.png",
	"panel/rcounter/digit/4.png",
	"panel/rcounter/digit/5.png",
	"panel/rcounter/digit/6.png",
	"panel/rcounter/digit/7.png",
	"panel/rcounter/digit/8.png",
	"panel/rcounter/digit/9.png",
	"panel/rcounter/digit/off.png",
}

// Skin is a loader over a complete skin, with its manifest and, after
// Preload, a content hash identifying the exact asset bytes.
type Skin struct {
	*Loader

	manifest Manifest
	hash     string
}

// New creates a Skin over an already-constructed source. The manifest is
// read immediately; assets are decoded lazily or via Preload.
func New(src Source, cache *ImageCache) (*Skin, error) {
	s := &Skin{Loader: NewLoader(src, cache)}
	m, err := loadManifest(src)
	if err != nil {
		return nil, err
	}
	s.manifest = m
	return s, nil
}

// Open creates a Skin from a filesystem path, accepting either a skin
// directory or a tar.gz archive.
func Open(path string, cache *ImageCache) (*Skin, error) {
	var src Source
	var err error
	if strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz") {
		src, err = NewTarSource(path)
	} else {
		src, err = NewDirSource(path)
	}
	if err != nil {
		return nil, err
	}
	return New(src, cache)
}

// Manifest returns the skin's manifest. Skins without a skin.toml get the
// built-in defaults.
func (s *Skin) Manifest() Manifest { return s.manifest }

// ContentHash returns the digest computed by Preload, or empty if the skin
// has not been preloaded.
func (s *Skin) ContentHash() string { return s.hash }

// Preload decodes all skin assets into the cache and records the content
// hash. A skin missing any asset fails here.
func (s *Skin) Preload() error {
	hash, err := s.Loader.Preload(Assets...)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return errors.Wrap(errors.ErrCodeInvalidSkin, err, "incomplete skin %s", s.Source().Name())
		}
		return err
	}
	s.hash = hash
	return nil
}
