package display

import (
	"image"

	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/layout"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// Sprite is a fixed-size drawing leaf whose image can be swapped between
// equally sized states. Both axes are locked and the expansion weight is
// zero, so surrounding spacers absorb all excess space.
type Sprite struct {
	*layout.Base

	loader *skin.Loader
	img    image.Image
}

func newSprite(l *skin.Loader, asset string) (*Sprite, error) {
	img, err := l.Image(asset)
	if err != nil {
		return nil, err
	}
	size := img.Bounds().Size()
	s := &Sprite{loader: l, img: img}
	s.Base = layout.NewBase(size.X, size.Y,
		layout.WithLockedWidth(), layout.WithLockedHeight(), layout.WithExpandFactor(0))
	return s, nil
}

// setImage swaps the sprite's image. All states of a sprite share one size,
// which skin validation enforces; a mismatched image is rejected here so a
// skipped validation cannot corrupt resolved geometry.
func (s *Sprite) setImage(asset string) error {
	img, err := s.loader.Image(asset)
	if err != nil {
		return err
	}
	size := img.Bounds().Size()
	if min := s.MinSize(); size.X != min.W || size.Y != min.H {
		return errors.New(errors.ErrCodeInvalidSkin,
			"sprite %s is %dx%d, want %dx%d", asset, size.X, size.Y, min.W, min.H)
	}
	s.img = img
	return nil
}

// Draw pastes the current state's image at the sprite's offset.
func (s *Sprite) Draw(p layout.Painter) error {
	p.Paste(s.img, s.Offset())
	return nil
}

// Tile is one board cell, initially unopened.
type Tile struct {
	*Sprite
	state skin.TileState
}

// NewTile creates a board tile from a loader scoped to the tile directory.
func NewTile(l *skin.Loader) (*Tile, error) {
	sp, err := newSprite(l, skin.TileUnopened.Asset())
	if err != nil {
		return nil, err
	}
	return &Tile{Sprite: sp, state: skin.TileUnopened}, nil
}

// State returns the tile's current state.
func (t *Tile) State() skin.TileState { return t.state }

// SetState swaps the tile to another state's image.
func (t *Tile) SetState(state skin.TileState) error {
	if !state.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown tile state %d", state)
	}
	if err := t.setImage(state.Asset()); err != nil {
		return err
	}
	t.state = state
	return nil
}

// Face is the panel face, initially happy.
type Face struct {
	*Sprite
	state skin.FaceState
}

// NewFace creates the panel face from a loader scoped to the face directory.
func NewFace(l *skin.Loader) (*Face, error) {
	sp, err := newSprite(l, skin.FaceHappy.Asset())
	if err != nil {
		return nil, err
	}
	return &Face{Sprite: sp, state: skin.FaceHappy}, nil
}

// State returns the face's current state.
func (f *Face) State() skin.FaceState { return f.state }

// SetState swaps the face to another state's image.
func (f *Face) SetState(state skin.FaceState) error {
	if !state.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown face state %d", state)
	}
	if err := f.setImage(state.Asset()); err != nil {
		return err
	}
	f.state = state
	return nil
}

// Digit is one counter cell, initially off.
type Digit struct {
	*Sprite
	state skin.DigitState
}

// NewDigit creates a counter digit from a loader scoped to the digit
// directory.
func NewDigit(l *skin.Loader) (*Digit, error) {
	sp, err := newSprite(l, skin.DigitOff.Asset())
	if err != nil {
		return nil, err
	}
	return &Digit{Sprite: sp, state: skin.DigitOff}, nil
}

// State returns the digit's current state.
func (d *Digit) State() skin.DigitState { return d.state }

// SetState swaps the digit to another state's image.
func (d *Digit) SetState(state skin.DigitState) error {
	if !state.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "unknown digit state %d", state)
	}
	if err := d.setImage(state.Asset()); err != nil {
		return err
	}
	d.state = state
	return nil
}

var _ layout.Box = (*Sprite)(nil)
