package display

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// PasteMode selects how a GridTile covers its area.
type PasteMode int

// Paste modes.
const (
	// PasteTile repeats the image in both directions.
	PasteTile PasteMode = iota
	// PasteHorizontal stretches a one-pixel-wide strip across the width.
	PasteHorizontal
	// PasteVertical stretches a one-pixel-tall strip across the height.
	PasteVertical
	// PasteOnce pastes the image a single time at the box origin.
	PasteOnce
)

// GridTile is a drawing leaf that covers its resolved area with a skin
// image. Its minimum size is the image size.
//
// Two fast paths avoid per-tile pasting: a 1x1 tiled image becomes a flat
// fill, and one-pixel strips in the matching stretch mode are resized once
// per Expand instead of pasted pixel-column by pixel-column.
type GridTile struct {
	*layout.Base

	img  image.Image
	mode PasteMode

	// Fast-path state. fill is set for 1x1 tiles; scaled holds the
	// pre-stretched strip for one-pixel horizontal or vertical strips.
	fill   color.Color
	scaled image.Image
}

// NewGridTile loads asset through l and creates a tile leaf. Base options
// control the expansion weight and axis locks.
func NewGridTile(l *skin.Loader, asset string, mode PasteMode, opts ...layout.BaseOption) (*GridTile, error) {
	img, err := l.Image(asset)
	if err != nil {
		return nil, err
	}
	size := img.Bounds().Size()

	t := &GridTile{img: img, mode: mode}
	t.Base = layout.NewBase(size.X, size.Y, opts...)

	switch {
	case mode == PasteTile && size.X == 1 && size.Y == 1:
		t.fill = img.At(img.Bounds().Min.X, img.Bounds().Min.Y)
	case mode == PasteHorizontal && size.X == 1:
		t.scaled = imaging.Resize(img, t.Size().W, size.Y, imaging.NearestNeighbor)
	case mode == PasteVertical && size.Y == 1:
		t.scaled = imaging.Resize(img, size.X, t.Size().H, imaging.NearestNeighbor)
	}
	return t, nil
}

// Expand resizes the tile and refreshes any pre-stretched strip.
func (t *GridTile) Expand(width, height int) error {
	if err := t.Base.Expand(width, height); err != nil {
		return err
	}
	if t.scaled != nil {
		size := t.img.Bounds().Size()
		switch t.mode {
		case PasteHorizontal:
			t.scaled = imaging.Resize(t.img, t.Size().W, size.Y, imaging.NearestNeighbor)
		case PasteVertical:
			t.scaled = imaging.Resize(t.img, size.X, t.Size().H, imaging.NearestNeighbor)
		}
	}
	return nil
}

// Draw covers the tile's resolved rectangle. Repeats that overhang the
// rectangle are pasted whole; later layers paint over the spill, the same
// way the background-then-frame draw order already relies on.
func (t *GridTile) Draw(p layout.Painter) error {
	if t.fill != nil {
		p.Fill(t.fill, t.Bounds())
		return nil
	}
	if t.mode == PasteOnce {
		p.Paste(t.img, t.Offset())
		return nil
	}

	img := t.img
	if t.scaled != nil {
		img = t.scaled
	}
	step := img.Bounds().Size()
	if step.X == 0 || step.Y == 0 {
		return nil
	}
	b := t.Bounds()
	for x := b.X; x < b.Right(); x += step.X {
		for y := b.Y; y < b.Bottom(); y += step.Y {
			p.Paste(img, geom.Point{X: x, Y: y})
		}
	}
	return nil
}

var _ layout.Box = (*GridTile)(nil)
