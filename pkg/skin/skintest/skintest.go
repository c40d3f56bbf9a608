// Package skintest generates small, well-formed skins for tests. Every
// asset is a solid-color PNG whose dimensions follow a fixed scheme, so
// tests can predict the exact geometry a display built from the skin will
// resolve to.
package skintest

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Fixture asset dimensions. Border edges share the usual nine-slice
// constraints: the top and bottom rows are BorderTop and BorderBottom
// pixels tall, the left and right columns BorderLeft and BorderRight
// pixels wide.
const (
	TileSize     = 8
	FaceSize     = 6
	DigitWidth   = 4
	DigitHeight  = 6
	BorderTop    = 3
	BorderBottom = 3
	BorderLeft   = 2
	BorderRight  = 2
)

// Write generates a complete skin under dir, creating it if needed.
func Write(dir string) error {
	for _, asset := range skin.Assets {
		data, err := encodeAsset(asset)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, filepath.FromSlash(asset))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// WriteManifest writes a skin.toml with the given contents under dir.
func WriteManifest(dir, contents string) error {
	return os.WriteFile(filepath.Join(dir, skin.ManifestFilename), []byte(contents), 0644)
}

// WriteArchive generates a complete skin as a tar.gz at path, with all
// entries under a single top-level directory the way packaged skins ship.
func WriteArchive(path string) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for _, asset := range skin.Assets {
		data, err := encodeAsset(asset)
		if err != nil {
			return err
		}
		hdr := &tar.Header{
			Name: "skin/" + asset,
			Mode: 0644,
			Size: int64(len(data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if _, err := tw.Write(data); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Overwrite replaces a single asset under dir with a solid PNG of the given
// size, for constructing deliberately inconsistent skins.
func Overwrite(dir, asset string, width, height int) error {
	data, err := encodePNG(width, height, colorFor(asset))
	if err != nil {
		return err
	}
	path := filepath.Join(dir, filepath.FromSlash(asset))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AssetSize returns the dimensions the generator uses for an asset path.
func AssetSize(asset string) (width, height int) {
	base := filepath.Base(asset)
	switch {
	case strings.HasSuffix(asset, "bg.png"):
		return 1, 1
	case strings.Contains(asset, "/tile/"):
		return TileSize, TileSize
	case strings.Contains(asset, "/face/"):
		return FaceSize, FaceSize
	case strings.Contains(asset, "/digit/"):
		return DigitWidth, DigitHeight
	}
	// Border edges.
	switch base {
	case "t.png":
		return 1, BorderTop
	case "b.png":
		return 1, BorderBottom
	case "l.png":
		return BorderLeft, 1
	case "r.png":
		return BorderRight, 1
	case "tl.png":
		return BorderLeft, BorderTop
	case "tr.png":
		return BorderRight, BorderTop
	case "bl.png":
		return BorderLeft, BorderBottom
	case "br.png":
		return BorderRight, BorderBottom
	}
	return 1, 1
}

func encodeAsset(asset string) ([]byte, error) {
	w, h := AssetSize(asset)
	return encodePNG(w, h, colorFor(asset))
}

func encodePNG(width, height int, c color.NRGBA) ([]byte, error) {
	img := imaging.New(width, height, c)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// colorFor derives a stable opaque color from the asset path, so visually
// inspecting a rendered fixture shows which asset landed where.
func colorFor(asset string) color.NRGBA {
	sum := sha256.Sum256([]byte(asset))
	return color.NRGBA{R: sum[0], G: sum[1], B: sum[2], A: 255}
}
