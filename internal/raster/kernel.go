package raster

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/convolution"
)

// Border selects how samples outside the frame are synthesised.
type Border int

const (
	// BorderReflect101 mirrors around the edge sample: dcb|abcd|cba.
	BorderReflect101 Border = iota
	// BorderReplicate repeats the edge sample: aaa|abcd|ddd.
	BorderReplicate
)

// borderIndex maps a possibly out-of-range index onto [0, n).
func borderIndex(i, n int, mode Border) int {
	if i >= 0 && i < n {
		return i
	}
	if n == 1 || mode == BorderReplicate {
		return clampInt(i, 0, n-1)
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

// AutoSigma derives a Gaussian sigma from an odd kernel length the way
// image libraries do when the caller passes sigma <= 0.
func AutoSigma(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}

// GaussianKernel returns a normalised 1-D Gaussian of the given odd length.
// A sigma <= 0 is derived from size with AutoSigma.
func GaussianKernel(size int, sigma float64) ([]float64, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("gaussian kernel size must be positive and odd, got %d", size)
	}
	if sigma <= 0 {
		sigma = AutoSigma(size)
	}
	k := make([]float64, size)
	center := float64(size-1) / 2
	var sum float64
	for i := range k {
		d := float64(i) - center
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k, nil
}

// GaussianBlur smooths every channel with a size×size Gaussian applied as
// two separable passes with reflect-101 borders.
func GaussianBlur(f *Float, size int, sigma float64) (*Float, error) {
	k, err := GaussianKernel(size, sigma)
	if err != nil {
		return nil, err
	}
	return SeparableFilter(f, k, k, BorderReflect101), nil
}

// SeparableFilter correlates f with kx along rows and then ky along
// columns. Both kernels are centred on their middle element.
func SeparableFilter(f *Float, kx, ky []float64, mode Border) *Float {
	tmp := NewFloat(f.Width, f.Height, f.Channels)
	rx := len(kx) / 2
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			for c := 0; c < f.Channels; c++ {
				var sum float64
				for i, w := range kx {
					sx := borderIndex(x+i-rx, f.Width, mode)
					sum += w * f.At(sx, y, c)
				}
				tmp.Set(x, y, c, sum)
			}
		}
	}

	out := NewFloat(f.Width, f.Height, f.Channels)
	ry := len(ky) / 2
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			for c := 0; c < f.Channels; c++ {
				var sum float64
				for i, w := range ky {
					sy := borderIndex(y+i-ry, f.Height, mode)
					sum += w * tmp.At(x, sy, c)
				}
				out.Set(x, y, c, sum)
			}
		}
	}
	return out
}

// NewKernel builds a convolution kernel from rows of weights.
func NewKernel(rows [][]float64) *convolution.Kernel {
	k := convolution.NewKernel(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			k.Matrix[y*k.Width+x] = v
		}
	}
	return k
}

// Convolve correlates every channel of f with k, anchored at the kernel
// centre. The result is not clamped.
func Convolve(f *Float, k *convolution.Kernel, mode Border) *Float {
	kw, kh := k.MaxX(), k.MaxY()
	ax, ay := kw/2, kh/2
	out := NewFloat(f.Width, f.Height, f.Channels)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			for c := 0; c < f.Channels; c++ {
				var sum float64
				for ky := 0; ky < kh; ky++ {
					sy := borderIndex(y+ky-ay, f.Height, mode)
					for kx := 0; kx < kw; kx++ {
						w := k.At(kx, ky)
						if w == 0 {
							continue
						}
						sx := borderIndex(x+kx-ax, f.Width, mode)
						sum += w * f.At(sx, sy, c)
					}
				}
				out.Set(x, y, c, sum)
			}
		}
	}
	return out
}

var (
	sobelX = NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	sobelY = NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
)

// GradientMagnitude returns, per channel, sqrt(Gx² + Gy²) of the 3×3 Sobel
// derivatives.
func GradientMagnitude(f *Float) *Float {
	gx := Convolve(f, sobelX, BorderReflect101)
	gy := Convolve(f, sobelY, BorderReflect101)
	out := NewFloat(f.Width, f.Height, f.Channels)
	for i := range out.Pix {
		out.Pix[i] = math.Hypot(gx.Pix[i], gy.Pix[i])
	}
	return out
}

// BoxMean returns the mean of every size×size neighbourhood, per channel.
func BoxMean(f *Float, size int, mode Border) *Float {
	k := make([]float64, size)
	for i := range k {
		k[i] = 1 / float64(size)
	}
	return SeparableFilter(f, k, k, mode)
}
