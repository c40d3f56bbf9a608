package display

import (
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Border draws a nine-slice picture frame: four fixed corners, four
// stretching edges, and an empty center. It is a 3x3 grid whose outer
// tracks are pinned at the edge thicknesses while the center track absorbs
// all excess, so resizing stretches the edge strips and nothing else.
//
// Border only paints the frame. The framed content is laid out by a
// [layout.Border] with the same [Thickness], stacked in a shared
// [layout.Layer].
type Border struct {
	*layout.Grid
	thickness geom.Thickness
}

// NewBorder builds the frame from a loader scoped to a border directory
// (the eight edge images b, bl, br, l, r, t, tl, tr).
func NewBorder(l *skin.Loader) (*Border, error) {
	corner := func(asset string) (*GridTile, error) {
		return NewGridTile(l, asset, PasteOnce,
			layout.WithExpandFactor(0), layout.WithLockedWidth(), layout.WithLockedHeight())
	}
	vEdge := func(asset string) (*GridTile, error) {
		return NewGridTile(l, asset, PasteVertical,
			layout.WithExpandFactor(0), layout.WithLockedWidth())
	}
	hEdge := func(asset string) (*GridTile, error) {
		return NewGridTile(l, asset, PasteHorizontal, layout.WithLockedHeight())
	}

	var (
		tiles [8]*GridTile
		err   error
	)
	for i, load := range []struct {
		asset string
		build func(string) (*GridTile, error)
	}{
		{"tl.png", corner}, {"t.png", hEdge}, {"tr.png", corner},
		{"l.png", vEdge}, {"r.png", vEdge},
		{"bl.png", corner}, {"b.png", hEdge}, {"br.png", corner},
	} {
		if tiles[i], err = load.build(load.asset); err != nil {
			return nil, err
		}
	}
	tl, t, tr, l_, r, bl, b, br := tiles[0], tiles[1], tiles[2], tiles[3], tiles[4], tiles[5], tiles[6], tiles[7]

	center := layout.NewBase(0, 0)
	grid, err := layout.NewGrid(
		[][]layout.Box{
			{tl, t, tr},
			{l_, center, r},
			{bl, b, br},
		},
		layout.WithColumnWeights(0, 1, 0),
		layout.WithRowWeights(0, 1, 0),
	)
	if err != nil {
		return nil, err
	}

	return &Border{
		Grid: grid,
		thickness: geom.Thickness{
			Top:    t.MinSize().H,
			Right:  r.MinSize().W,
			Bottom: b.MinSize().H,
			Left:   l_.MinSize().W,
		},
	}, nil
}

// Thickness returns the frame's edge extents, used to inset the framed
// content.
func (b *Border) Thickness() geom.Thickness { return b.thickness }

var _ layout.Box = (*Border)(nil)
