package skin

import "github.com/matzehuels/sweepskin/pkg/errors"

// TileState identifies one image of the board tile set.
type TileState int

// Board tile states.
const (
	TileZero TileState = iota
	TileOne
	TileTwo
	TileThree
	TileFour
	TileFive
	TileSix
	TileSeven
	TileEight
	TileBlast
	TileFlag
	TileFlagWrong
	TileMine
	TileUnopened
)

var tileAssets = map[TileState]string{
	TileZero:      "0.png",
	TileOne:       "1.png",
	TileTwo:       "2.png",
	TileThree:     "3.png",
	TileFour:      "4.png",
	TileFive:      "5.png",
	TileSix:       "6.png",
	TileSeven:     "7.png",
	TileEight:     "8.png",
	TileBlast:     "blast.png",
	TileFlag:      "flag.png",
	TileFlagWrong: "flag_wrong.png",
	TileMine:      "mine.png",
	TileUnopened:  "unopened.png",
}

// Asset returns the image filename for the state, relative to board/tile.
func (s TileState) Asset() string { return tileAssets[s] }

// Valid reports whether the state is one of the defined tile states.
func (s TileState) Valid() bool {
	_, ok := tileAssets[s]
	return ok
}

// TileNumber returns the tile state showing n adjacent mines (0 through 8).
func TileNumber(n int) (TileState, error) {
	if n < 0 || n > 8 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "tile number must be 0-8, got %d", n)
	}
	return TileZero + TileState(n), nil
}

// FaceState identifies one image of the panel face set.
type FaceState int

// Panel face states.
const (
	FaceHappy FaceState = iota
	FaceNervous
	FaceCool
	FaceBlast
	FacePressed
)

var faceAssets = map[FaceState]string{
	FaceHappy:   "happy.png",
	FaceNervous: "nervous.png",
	FaceCool:    "cool.png",
	FaceBlast:   "blast.png",
	FacePressed: "pressed.png",
}

// Asset returns the image filename for the state, relative to panel/face.
func (s FaceState) Asset() string { return faceAssets[s] }

// Valid reports whether the state is one of the defined face states.
func (s FaceState) Valid() bool {
	_, ok := faceAssets[s]
	return ok
}

// DigitState identifies one image of a counter digit set.
type DigitState int

// Counter digit states.
const (
	DigitZero DigitState = iota
	DigitOne
	DigitTwo
	DigitThree
	DigitFour
	DigitFive
	DigitSix
	DigitSeven
	DigitEight
	DigitNine
	DigitMinus
	DigitOff
)

var digitAssets = map[DigitState]string{
	DigitZero:  "0.png",
	DigitOne:   "1.png",
	DigitTwo:   "2.png",
	DigitThree: "3.png",
	DigitFour:  "4.png",
	DigitFive:  "5.png",
	DigitSix:   "6.png",
	DigitSeven: "7.png",
	DigitEight: "8.png",
	DigitNine:  "9.png",
	DigitMinus: "-.png",
	DigitOff:   "off.png",
}

// Asset returns the image filename for the state, relative to the counter's
// digit directory.
func (s DigitState) Asset() string { return digitAssets[s] }

// Valid reports whether the state is one of the defined digit states.
func (s DigitState) Valid() bool {
	_, ok := digitAssets[s]
	return ok
}

// Digit returns the digit state for the numeral n (0 through 9).
func Digit(n int) (DigitState, error) {
	if n < 0 || n > 9 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "digit must be 0-9, got %d", n)
	}
	return DigitZero + DigitState(n), nil
}
