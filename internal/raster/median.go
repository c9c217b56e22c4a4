package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/effect"
)

// MedianBlur replaces every sample of a one channel buffer by the median of
// its size×size neighbourhood.
//
// The median is an order statistic, so the buffer is quantised to 8-bit
// before filtering; the result holds whole numbers in [0,255].
func MedianBlur(f *Float, size int) (*Float, error) {
	if f.Channels != 1 {
		return nil, fmt.Errorf("median blur expects a single channel, got %d", f.Channels)
	}
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("median size must be positive and odd, got %d", size)
	}

	gray := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := math.Round(Clamp(f.At(x, y, 0), 0, 255))
			gray.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}

	filtered := effect.Median(gray, float64(size/2))

	out := NewFloat(f.Width, f.Height, 1)
	for y := 0; y < f.Height; y++ {
		row := filtered.Pix[y*filtered.Stride:]
		for x := 0; x < f.Width; x++ {
			out.Set(x, y, 0, float64(row[x*4]))
		}
	}
	return out, nil
}
