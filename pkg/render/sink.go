package render

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/sweepskin/pkg/errors"
)

// EncodePNG encodes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding png")
	}
	return buf.Bytes(), nil
}

// SavePNG writes an image to a PNG file.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "saving %s", path)
	}
	return nil
}
