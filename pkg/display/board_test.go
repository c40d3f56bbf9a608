package display_test

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/sweepskin/pkg/display"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin/skintest"
)

func TestBoardGeometry(t *testing.T) {
	s := openTestSkin(t, "")

	b, err := display.NewBoard(s.Sub("board"), 2, 3)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Fatalf("board is %dx%d, want 2x3", b.Rows(), b.Cols())
	}

	// 3x8 of tiles plus 2+2 of frame wide, 2x8 plus 3+3 tall.
	if got := b.MinSize(); got != (geom.Size{W: 28, H: 22}) {
		t.Fatalf("min size = %v, want 28x22", got)
	}
	if got := b.Tile(0, 0).Offset(); got != (geom.Point{X: 2, Y: 3}) {
		t.Fatalf("tile (0,0) offset = %v", got)
	}
	if got := b.Tile(1, 2).Offset(); got != (geom.Point{X: 2 + 2*skintest.TileSize, Y: 3 + skintest.TileSize}) {
		t.Fatalf("tile (1,2) offset = %v", got)
	}
}

func TestBoardWidensThroughSpacers(t *testing.T) {
	s := openTestSkin(t, "")

	b, err := display.NewBoard(s.Sub("board"), 2, 3)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.Expand(38, layout.Keep); err != nil {
		t.Fatalf("Expand: %v", err)
	}

	// Ten extra pixels split between the flanking spacers; the tile grid
	// shifts right by five and the tiles keep their size.
	if got := b.Tile(0, 0).Offset(); got != (geom.Point{X: 7, Y: 3}) {
		t.Fatalf("tile (0,0) offset = %v", got)
	}
	if got := b.Tile(0, 0).Size(); got != (geom.Size{W: skintest.TileSize, H: skintest.TileSize}) {
		t.Fatalf("tile size = %v", got)
	}
}

func TestBoardRejectsVerticalGrowth(t *testing.T) {
	s := openTestSkin(t, "")

	b, err := display.NewBoard(s.Sub("board"), 2, 3)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	err = b.Expand(layout.Keep, 30)
	var notExp *layout.NotExpandableError
	if !stderrors.As(err, &notExp) {
		t.Fatalf("Expand = %v, want NotExpandableError", err)
	}
	if got := b.Size(); got != (geom.Size{W: 28, H: 22}) {
		t.Fatalf("failed expand changed board size to %v", got)
	}
}

func TestBoardDimensions(t *testing.T) {
	s := openTestSkin(t, "")
	_, err := display.NewBoard(s.Sub("board"), 0, 5)
	if errors.GetCode(err) != errors.ErrCodeInvalidDimensions {
		t.Fatalf("NewBoard(0,5) = %v, want INVALID_DIMENSIONS", err)
	}
}
