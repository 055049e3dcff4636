package renderer

import (
	"fmt"
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples traced
	SamplesPerPixel int           // Samples averaged into each pixel
	Workers         int           // Parallel workers used
	Elapsed         time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the camera sample throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d samples/pixel, %d workers, %v (%.0f samples/s)",
		s.Width, s.Height, s.SamplesPerPixel, s.Workers, s.Elapsed.Round(time.Millisecond), s.SamplesPerSecond())
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img, with each
// 8-bit channel mapped to [0,1] as stored (no gamma decoding)
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}

	return total / float64(bounds.Dx()*bounds.Dy())
}
