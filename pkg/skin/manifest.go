package skin

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sweepskin/pkg/errors"
)

// ManifestFilename is the optional metadata file at the skin root.
const ManifestFilename = "skin.toml"

// Manifest carries skin metadata and the author's preferred defaults.
// All fields are optional; zero values fall back to the package defaults.
type Manifest struct {
	Name        string `toml:"name"`
	Author      string `toml:"author"`
	Description string `toml:"description"`

	Board   BoardDefaults   `toml:"board"`
	Counter CounterDefaults `toml:"counter"`
}

// BoardDefaults is the [board] manifest section.
type BoardDefaults struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// CounterDefaults is the [counter] manifest section.
type CounterDefaults struct {
	Digits int `toml:"digits"`
}

// Built-in defaults match the classic expert board.
const (
	DefaultRows   = 16
	DefaultCols   = 30
	DefaultDigits = 3
)

// defaultManifest returns the manifest used when a skin ships no skin.toml.
func defaultManifest() Manifest {
	return Manifest{
		Board:   BoardDefaults{Rows: DefaultRows, Cols: DefaultCols},
		Counter: CounterDefaults{Digits: DefaultDigits},
	}
}

// loadManifest reads and validates skin.toml from src, falling back to
// defaults when the file is absent. Unset sections get the defaults too.
func loadManifest(src Source) (Manifest, error) {
	rc, err := src.Open(ManifestFilename)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return defaultManifest(), nil
	}
	if err != nil {
		return Manifest{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", ManifestFilename)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", ManifestFilename)
	}

	if m.Board.Rows == 0 {
		m.Board.Rows = DefaultRows
	}
	if m.Board.Cols == 0 {
		m.Board.Cols = DefaultCols
	}
	if m.Counter.Digits == 0 {
		m.Counter.Digits = DefaultDigits
	}

	if m.Name != "" {
		if err := errors.ValidateSkinName(m.Name); err != nil {
			return Manifest{}, err
		}
	}
	if err := errors.ValidateDimensions(m.Board.Rows, m.Board.Cols, m.Counter.Digits); err != nil {
		return Manifest{}, err
	}

	return m, nil
}
