package display_test

import (
	"testing"

	"github.com/matzehuels/sweepskin/pkg/display"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
	"github.com/matzehuels/sweepskin/pkg/skin/skintest"
)

func TestTileStates(t *testing.T) {
	s := openTestSkin(t, "")

	tile, err := display.NewTile(s.Sub("board").Sub("tile"))
	if err != nil {
		t.Fatalf("NewTile: %v", err)
	}
	if got := tile.State(); got != skin.TileUnopened {
		t.Fatalf("initial state = %v, want unopened", got)
	}
	if got := tile.MinSize(); got != (geom.Size{W: skintest.TileSize, H: skintest.TileSize}) {
		t.Fatalf("tile min size = %v", got)
	}

	for _, state := range []skin.TileState{skin.TileFlag, skin.TileMine, skin.TileThree} {
		if err := tile.SetState(state); err != nil {
			t.Fatalf("SetState(%v): %v", state, err)
		}
		if tile.State() != state {
			t.Fatalf("state = %v, want %v", tile.State(), state)
		}
	}

	err = tile.SetState(skin.TileState(99))
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("SetState(99) = %v, want INVALID_INPUT", err)
	}
	if tile.State() != skin.TileThree {
		t.Fatalf("failed SetState changed state to %v", tile.State())
	}
}

func TestSpriteRejectsGrowth(t *testing.T) {
	s := openTestSkin(t, "")

	face, err := display.NewFace(s.Sub("panel").Sub("face"))
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	if face.ExpandFactor() != 0 {
		t.Fatalf("face expand factor = %d, want 0", face.ExpandFactor())
	}
	if err := face.Expand(skintest.FaceSize+1, layout.Keep); err == nil {
		t.Fatal("growing a locked sprite succeeded")
	}
}

func TestDigitStates(t *testing.T) {
	s := openTestSkin(t, "")

	d, err := display.NewDigit(s.Sub("panel").Sub("lcounter").Sub("digit"))
	if err != nil {
		t.Fatalf("NewDigit: %v", err)
	}
	if got := d.State(); got != skin.DigitOff {
		t.Fatalf("initial state = %v, want off", got)
	}
	if err := d.SetState(skin.DigitMinus); err != nil {
		t.Fatalf("SetState(minus): %v", err)
	}
	if d.State() != skin.DigitMinus {
		t.Fatalf("state = %v, want minus", d.State())
	}
}
