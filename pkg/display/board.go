package display

import (
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Board is the lower half of the display: the minefield grid, horizontally
// centered over a tiled background, inside the board's own frame. Tiles
// never resize, so widening the board grows the flanking spacers while
// heightening fails at the tiles.
type Board struct {
	*layout.Layer

	bg     *GridTile
	border *Border
	tiles  [][]*Tile
	rows   int
	cols   int
}

// NewBoard builds a rows-by-cols board from a loader scoped to the board
// directory.
func NewBoard(l *skin.Loader, rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "board must be at least 1x1, got %dx%d", rows, cols)
	}

	bg, err := NewGridTile(l, "bg.png", PasteTile)
	if err != nil {
		return nil, err
	}
	border, err := NewBorder(l.Sub("border"))
	if err != nil {
		return nil, err
	}

	tileLoader := l.Sub("tile")
	tiles := make([][]*Tile, rows)
	cells := make([][]layout.Box, rows)
	for r := range tiles {
		tiles[r] = make([]*Tile, cols)
		cells[r] = make([]layout.Box, cols)
		for c := range tiles[r] {
			tile, err := NewTile(tileLoader)
			if err != nil {
				return nil, err
			}
			tiles[r][c] = tile
			cells[r][c] = tile
		}
	}

	field, err := layout.NewGrid(cells)
	if err != nil {
		return nil, err
	}
	centered, err := layout.NewRow(
		[]layout.Box{layout.NewBase(0, 0), field, layout.NewBase(0, 0)},
		layout.WithColumnWeights(1, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	layer, err := layout.NewLayer([]layout.Box{
		bg,
		layout.NewBorder(centered, border.Thickness()),
		border,
	})
	if err != nil {
		return nil, err
	}

	return &Board{
		Layer:  layer,
		bg:     bg,
		border: border,
		tiles:  tiles,
		rows:   rows,
		cols:   cols,
	}, nil
}

// Rows returns the number of tile rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of tile columns.
func (b *Board) Cols() int { return b.cols }

// Tile returns the tile at the given position.
func (b *Board) Tile(row, col int) *Tile { return b.tiles[row][col] }

// Border returns the board's frame.
func (b *Board) Border() *Border { return b.border }
