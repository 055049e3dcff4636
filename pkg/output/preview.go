package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Preview scales img down to width pixels, keeping the aspect ratio.
// Images already narrower than width are returned unchanged.
func Preview(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}
