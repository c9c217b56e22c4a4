package raster

import (
	"fmt"
	"math"

	"github.com/disintegration/imaging"
)

// Downsample shrinks m to width×height with a linear filter.
func Downsample(m *Image, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cannot resize %dx%d image to %dx%d", m.Width, m.Height, width, height)
	}
	resized := imaging.Resize(m.NRGBA(), width, height, imaging.Linear)
	return FromImage(resized), nil
}

// ResizeBilinear resamples f to width×height with bilinear interpolation,
// mapping pixel centres onto pixel centres.
func ResizeBilinear(f *Float, width, height int) (*Float, error) {
	if width <= 0 || height <= 0 || f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("cannot resize %dx%d buffer to %dx%d", f.Width, f.Height, width, height)
	}

	sx := float64(f.Width) / float64(width)
	sy := float64(f.Height) / float64(height)
	out := NewFloat(width, height, f.Channels)

	for y := 0; y < height; y++ {
		fy := (float64(y)+0.5)*sy - 0.5
		y0 := int(math.Floor(fy))
		wy := fy - float64(y0)
		if fy < 0 {
			y0, wy = 0, 0
		}
		y1 := clampInt(y0+1, 0, f.Height-1)
		y0 = clampInt(y0, 0, f.Height-1)

		for x := 0; x < width; x++ {
			fx := (float64(x)+0.5)*sx - 0.5
			x0 := int(math.Floor(fx))
			wx := fx - float64(x0)
			if fx < 0 {
				x0, wx = 0, 0
			}
			x1 := clampInt(x0+1, 0, f.Width-1)
			x0 = clampInt(x0, 0, f.Width-1)

			for c := 0; c < f.Channels; c++ {
				top := f.At(x0, y0, c)*(1-wx) + f.At(x1, y0, c)*wx
				bottom := f.At(x0, y1, c)*(1-wx) + f.At(x1, y1, c)*wx
				out.Set(x, y, c, top*(1-wy)+bottom*wy)
			}
		}
	}
	return out, nil
}
