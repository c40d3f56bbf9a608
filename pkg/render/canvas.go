package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/layout"
)

// Canvas is a fixed-size raster surface implementing [layout.Painter].
// Pastes composite with alpha blending and are clipped at the canvas
// edges, so draws that overhang their box spill harmlessly.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(size geom.Size) (*Canvas, error) {
	if size.W < 1 || size.H < 1 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "canvas size %s must be positive", size)
	}
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, size.W, size.H))}, nil
}

// Paste composites img with its top-left corner at the given point.
func (c *Canvas) Paste(img image.Image, at geom.Point) {
	b := img.Bounds()
	dst := image.Rect(at.X, at.Y, at.X+b.Dx(), at.Y+b.Dy())
	draw.Draw(c.img, dst, img, b.Min, draw.Over)
}

// Fill covers the rectangle with a single pixel value, replacing what was
// there before.
func (c *Canvas) Fill(px color.Color, r geom.Rect) {
	draw.Draw(c.img, r.Image(), image.NewUniform(px), image.Point{}, draw.Src)
}

// Image returns the underlying raster.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Size returns the canvas dimensions.
func (c *Canvas) Size() geom.Size {
	b := c.img.Bounds()
	return geom.Size{W: b.Dx(), H: b.Dy()}
}

// Render sizes a canvas to the box's resolved size and runs its draw pass.
func Render(box layout.Box) (*Canvas, error) {
	c, err := NewCanvas(box.Size())
	if err != nil {
		return nil, err
	}
	if err := box.Draw(c); err != nil {
		return nil, err
	}
	return c, nil
}

var _ layout.Painter = (*Canvas)(nil)
