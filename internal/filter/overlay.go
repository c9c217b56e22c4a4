package filter

import (
	"fmt"
	"math"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Segment is a scratch line from (X0, Y0) to (X1, Y1), both ends inclusive.
// X1 may fall outside the frame by up to the drift; drawing clips it.
type Segment struct {
	X0, Y0 int
	X1, Y1 int
}

// Scratches draws a random set of near-vertical segments for a width×height
// frame.
//
// Each segment starts at a random column in the upper half and ends at
// least p.MinLength rows lower, or on the last row when the frame is too
// short for that.
func Scratches(width, height int, rng Rand, p ScratchParams) ([]Segment, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scratch frame %dx%d has no pixels", width, height)
	}
	if p.MaxLines <= p.MinLines || p.MinLines < 0 {
		return nil, fmt.Errorf("invalid scratch count range [%d, %d)", p.MinLines, p.MaxLines)
	}

	n := randRange(rng, p.MinLines, p.MaxLines)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Intn(width)
		y0 := rng.Intn(max(height/2, 1))
		y1 := randRange(rng, min(y0+p.MinLength, height-1), height)
		drift := randRange(rng, -p.Drift, p.Drift+1)
		segs = append(segs, Segment{X0: x, Y0: y0, X1: x + drift, Y1: y1})
	}
	return segs, nil
}

// ScratchMask rasterises segs into a one channel mask: 1 on the line,
// 0 elsewhere. Lines are one pixel wide.
func ScratchMask(width, height int, segs []Segment) *raster.Float {
	mask := raster.NewFloat(width, height, 1)
	for _, s := range segs {
		drawLine(mask, s.X0, s.Y0, s.X1, s.Y1)
	}
	return mask
}

// drawLine plots a Bresenham line, skipping points outside the frame.
func drawLine(mask *raster.Float, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if x0 >= 0 && x0 < mask.Width && y0 >= 0 && y0 < mask.Height {
			mask.Set(x0, y0, 0, 1)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// applyScratches composites a fresh scratch overlay onto f as
// f + 255·opacity·mask and clamps to [0,255].
func applyScratches(f *raster.Float, rng Rand, p ScratchParams) error {
	segs, err := Scratches(f.Width, f.Height, rng, p)
	if err != nil {
		return err
	}
	mask := ScratchMask(f.Width, f.Height, segs)
	for i, m := range mask.Pix {
		if m == 0 {
			continue
		}
		for c := 0; c < f.Channels; c++ {
			f.Pix[i*f.Channels+c] += 255 * p.Opacity * m
		}
	}
	f.ClampInPlace(0, 255)
	return nil
}

// AddGrain adds zero-mean Gaussian noise with the given standard deviation
// to every sample of f. The result is not clamped.
func AddGrain(f *raster.Float, rng Rand, sigma float64) {
	for i := range f.Pix {
		f.Pix[i] += rng.NormFloat64() * sigma
	}
}

// VignetteMask returns a one channel width×height mask that is 1.0 at its
// peak and falls off towards the corners as a separable Gaussian.
//
// Along an axis of n pixels the kernel length is n rounded up to odd and
// the sigma is derived from it with raster.AutoSigma.
func VignetteMask(width, height int) (*raster.Float, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vignette size %dx%d has no pixels", width, height)
	}
	kx := vignetteAxis(width)
	ky := vignetteAxis(height)

	peak := maxOf(kx) * maxOf(ky)
	mask := raster.NewFloat(width, height, 1)
	for y, wy := range ky {
		for x, wx := range kx {
			mask.Set(x, y, 0, wy*wx/peak)
		}
	}
	return mask, nil
}

func vignetteAxis(n int) []float64 {
	sigma := raster.AutoSigma(n | 1)
	center := float64(n-1) / 2
	w := make([]float64, n)
	for i := range w {
		d := float64(i) - center
		w[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	return w
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
