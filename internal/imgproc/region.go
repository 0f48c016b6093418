package imgproc

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidRegion reports malformed crop fractions. This is a programmer
// error in the caller, not a property of the scanned image.
var ErrInvalidRegion = errors.New("invalid region fractions")

// Band crops a full-width horizontal band whose vertical extent covers
// [h*top, h*bottom) of img. Fractions must lie in [0,1] with top < bottom.
func Band(img image.Image, top, bottom float64) (image.Image, error) {
	if top < 0 || top > 1 || bottom < 0 || bottom > 1 || top >= bottom {
		return nil, fmt.Errorf("%w: top=%v bottom=%v", ErrInvalidRegion, top, bottom)
	}
	b := img.Bounds()
	h := float64(b.Dy())
	rect := image.Rect(b.Min.X, b.Min.Y+int(h*top), b.Max.X, b.Min.Y+int(h*bottom))
	return imaging.Crop(img, rect), nil
}
