package display_test

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/sweepskin/pkg/display"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/layout"
)

const testManifest = `name = "Fixture"

[board]
rows = 2
cols = 3

[counter]
digits = 2
`

func TestDisplayFromManifest(t *testing.T) {
	s := openTestSkin(t, testManifest)

	d, err := display.New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if d.Board().Rows() != 2 || d.Board().Cols() != 3 {
		t.Fatalf("board is %dx%d, want 2x3 from manifest", d.Board().Rows(), d.Board().Cols())
	}
	if d.LeftCounter().Digits() != 2 || d.RightCounter().Digits() != 2 {
		t.Fatalf("counters have %d/%d digits, want 2/2",
			d.LeftCounter().Digits(), d.RightCounter().Digits())
	}

	// The panel (34 wide) dominates; the 28-wide board widens to match.
	// Column height 18+22 plus the outer frame.
	if got := d.MinSize(); got != (geom.Size{W: 38, H: 46}) {
		t.Fatalf("min size = %v, want 38x46", got)
	}
	if got := d.Board().Size(); got != (geom.Size{W: 34, H: 22}) {
		t.Fatalf("board size = %v, want 34x22", got)
	}
	if got := d.Panel().Offset(); got != (geom.Point{X: 2, Y: 3}) {
		t.Fatalf("panel offset = %v", got)
	}
	if got := d.Board().Offset(); got != (geom.Point{X: 2, Y: 21}) {
		t.Fatalf("board offset = %v", got)
	}
}

func TestDisplayOptions(t *testing.T) {
	s := openTestSkin(t, testManifest)

	d, err := display.New(s, display.WithBoardSize(1, 4), display.WithCounterDigits(3, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Board().Rows() != 1 || d.Board().Cols() != 4 {
		t.Fatalf("board is %dx%d, want 1x4", d.Board().Rows(), d.Board().Cols())
	}
	if d.LeftCounter().Digits() != 3 || d.RightCounter().Digits() != 1 {
		t.Fatalf("counters have %d/%d digits, want 3/1",
			d.LeftCounter().Digits(), d.RightCounter().Digits())
	}

	_, err = display.New(s, display.WithBoardSize(0, 4))
	if errors.GetCode(err) != errors.ErrCodeInvalidDimensions {
		t.Fatalf("New with zero rows = %v, want INVALID_DIMENSIONS", err)
	}
}

func TestDisplayExpand(t *testing.T) {
	s := openTestSkin(t, testManifest)

	d, err := display.New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := d.Expand(48, layout.Keep); err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got := d.Panel().Size(); got != (geom.Size{W: 44, H: 18}) {
		t.Fatalf("panel size = %v, want 44x18", got)
	}
	if got := d.Board().Size(); got != (geom.Size{W: 44, H: 22}) {
		t.Fatalf("board size = %v, want 44x22", got)
	}

	// Vertical growth dead-ends at the fixed-size tiles.
	err = d.Expand(layout.Keep, 60)
	var notExp *layout.NotExpandableError
	if !stderrors.As(err, &notExp) {
		t.Fatalf("vertical Expand = %v, want NotExpandableError", err)
	}
}

func TestDisplayDraw(t *testing.T) {
	s := openTestSkin(t, testManifest)

	d, err := display.New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.LeftCounter().SetValue(10); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	var rec recorder
	if err := d.Draw(&rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(rec.pastes) == 0 || len(rec.fills) == 0 {
		t.Fatalf("draw produced %d pastes and %d fills", len(rec.pastes), len(rec.fills))
	}
	for _, p := range rec.pastes {
		if p.X < 0 || p.Y < 0 {
			t.Fatalf("paste at negative offset %v", p)
		}
	}
}
