// Package pipeline provides the load → layout → render pipeline shared by
// the CLI and the preview server.
//
// The pipeline consists of three stages:
//
//  1. Load: open the skin, decode its assets, and validate consistency
//  2. Layout: build the display tree and resolve its geometry
//  3. Render: rasterize the tree and encode it as PNG
//
// Each stage can be run independently or as part of the complete pipeline.
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Skin: "skins/classic",
//	    Rows: 16,
//	    Cols: 30,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.PNG
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sweepskin/pkg/cache"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Skin is the path to a skin directory or .tar.gz archive.
	Skin string `json:"skin"`

	// Board and counter dimensions. Zero values fall back to the skin's
	// manifest (and through it to the classic 16x30 board).
	Rows        int `json:"rows,omitempty"`
	Cols        int `json:"cols,omitempty"`
	LeftDigits  int `json:"left_digits,omitempty"`
	RightDigits int `json:"right_digits,omitempty"`

	// Target size in pixels. Zero leaves the axis at its natural size.
	// Sizes below the natural minimum fail, as does vertical growth, which
	// dead-ends at the fixed-size tiles.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Skin == "" {
		return errors.New(errors.ErrCodeInvalidInput, "skin path is required")
	}
	for _, n := range []int{o.Rows, o.Cols, o.LeftDigits, o.RightDigits, o.Width, o.Height} {
		if n < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "dimensions must not be negative")
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// resolve fills unset board and counter dimensions from a skin manifest and
// validates the effective values.
func (o *Options) resolve(m skin.Manifest) (rows, cols, left, right int, err error) {
	rows, cols = o.Rows, o.Cols
	if rows == 0 {
		rows = m.Board.Rows
	}
	if cols == 0 {
		cols = m.Board.Cols
	}
	left, right = o.LeftDigits, o.RightDigits
	if left == 0 {
		left = m.Counter.Digits
	}
	if right == 0 {
		right = m.Counter.Digits
	}
	if err := errors.ValidateDimensions(rows, cols, left); err != nil {
		return 0, 0, 0, 0, err
	}
	if err := errors.ValidateDimensions(rows, cols, right); err != nil {
		return 0, 0, 0, 0, err
	}
	return rows, cols, left, right, nil
}

// artifactKeyOpts returns the cache key options for the resolved render
// parameters.
func (o *Options) artifactKeyOpts(rows, cols, left, right int) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Rows:        rows,
		Cols:        cols,
		Width:       o.Width,
		Height:      o.Height,
		LeftDigits:  left,
		RightDigits: right,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID uniquely identifies this run.
	ID uuid.UUID

	// Skin is the loaded skin's manifest.
	Skin skin.Manifest

	// SkinHash is the content hash of the skin's assets.
	SkinHash string

	// PNG is the encoded board image.
	PNG []byte

	// Size is the rendered image size in pixels.
	Size geom.Size

	// Rows, Cols are the effective board dimensions after manifest
	// defaults were applied.
	Rows, Cols int

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AssetCount int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}
