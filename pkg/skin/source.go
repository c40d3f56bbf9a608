package skin

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/sweepskin/pkg/errors"
)

// Source provides read access to a skin's files, whether they live in a
// directory, inside an archive, or layered across several locations.
//
// Paths are always slash-separated and relative to the skin root.
type Source interface {
	// ID uniquely identifies this source instance. Loaders key their
	// image cache on it.
	ID() string

	// Name returns a human-readable description (usually the path the
	// source was opened from).
	Name() string

	// Open opens the file at the given skin-relative path.
	Open(path string) (io.ReadCloser, error)
}

// DirSource serves skin files from a filesystem directory.
type DirSource struct {
	id   string
	root string
}

// NewDirSource creates a source rooted at dir. The directory must exist.
func NewDirSource(dir string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSkinNotFound, err, "skin directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}
	return &DirSource{id: uuid.NewString(), root: dir}, nil
}

// ID returns the source's unique identifier.
func (s *DirSource) ID() string { return s.id }

// Name returns the directory path.
func (s *DirSource) Name() string { return s.root }

// Open opens a file under the source directory.
func (s *DirSource) Open(path string) (io.ReadCloser, error) {
	if err := errors.ValidateAssetPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "%s not found in %s", path, s.root)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	return f, nil
}

// TarSource serves skin files from a gzipped tar archive. The whole archive
// is read into memory at construction; skins are small.
//
// Archives that wrap their content in a single top-level directory (the
// usual "tar czf skin.tar.gz skin/" layout) are flattened so asset paths
// stay relative to the skin root.
type TarSource struct {
	id    string
	name  string
	files map[string][]byte
}

// NewTarSource reads the archive at path into memory.
func NewTarSource(path string) (*TarSource, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeSkinNotFound, "skin archive %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSkin, err, "%s is not a gzip archive", path)
	}
	defer gz.Close()

	files := make(map[string][]byte)
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSkin, err, "reading archive %s", path)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := strings.TrimPrefix(filepath.ToSlash(hdr.Name), "./")
		if err := errors.ValidateAssetPath(name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSkin, err, "archive entry %q", hdr.Name)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSkin, err, "reading archive entry %q", hdr.Name)
		}
		files[name] = data
	}

	return &TarSource{id: uuid.NewString(), name: path, files: stripCommonDir(files)}, nil
}

// ID returns the source's unique identifier.
func (s *TarSource) ID() string { return s.id }

// Name returns the archive path.
func (s *TarSource) Name() string { return s.name }

// Open returns a reader over the in-memory file contents.
func (s *TarSource) Open(path string) (io.ReadCloser, error) {
	if err := errors.ValidateAssetPath(path); err != nil {
		return nil, err
	}
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New(errors.ErrCodeFileNotFound, "%s not found in %s", path, s.name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// stripCommonDir removes a shared top-level directory from every path, if
// one exists.
func stripCommonDir(files map[string][]byte) map[string][]byte {
	var prefix string
	for name := range files {
		top, rest, found := strings.Cut(name, "/")
		if !found || rest == "" {
			return files
		}
		if prefix == "" {
			prefix = top
		} else if top != prefix {
			return files
		}
	}
	if prefix == "" {
		return files
	}

	flattened := make(map[string][]byte, len(files))
	for name, data := range files {
		flattened[strings.TrimPrefix(name, prefix+"/")] = data
	}
	return flattened
}

// MultiSource layers sources so that earlier ones shadow later ones, the
// way a partial tile-pack overrides single files of a complete base skin.
type MultiSource struct {
	id      string
	sources []Source
}

// NewMultiSource combines sources in priority order.
func NewMultiSource(sources ...Source) (*MultiSource, error) {
	if len(sources) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "multi source needs at least one source")
	}
	return &MultiSource{id: uuid.NewString(), sources: sources}, nil
}

// ID returns the source's unique identifier.
func (s *MultiSource) ID() string { return s.id }

// Name joins the layered source names.
func (s *MultiSource) Name() string {
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name()
	}
	return strings.Join(names, "+")
}

// Open tries each layer in order and returns the first hit. The last
// not-found error is returned when no layer has the file.
func (s *MultiSource) Open(path string) (io.ReadCloser, error) {
	var lastErr error
	for _, src := range s.sources {
		rc, err := src.Open(path)
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
