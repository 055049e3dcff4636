package output

import (
	"image"
	"io"

	"github.com/fogleman/gg"
)

// EncodePNG writes img to w as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return gg.NewContextForImage(img).EncodePNG(w)
}

// SavePNG writes img to a PNG file at path
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
