package imgproc

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// binarization cutoff: pixels darker than this become black, the rest white.
const thresholdLevel = 140

// Enhance prepares a scanned invoice for OCR.
func Enhance(src image.Image) image.Image {
	// 1. Convert to grayscale for better contrast
	img := imaging.Grayscale(src)

	// 2. Light blur to knock out single-pixel scanner noise
	img = imaging.Blur(img, 0.6)

	// 3. Hard threshold so tesseract sees clean black-on-white text
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		if c.R < thresholdLevel {
			return color.NRGBA{R: 0, G: 0, B: 0, A: c.A}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: c.A}
	})
}
