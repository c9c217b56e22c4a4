package raster

import (
	"fmt"
	"math"
)

// DomainTransform smooths f with the recursive edge-preserving filter of
// Gastal and Oliveira.
//
// Parameters:
//   - f: Buffer with any number of channels. Use [0,1] samples so that
//     sigmaR has its usual meaning.
//   - sigmaS: Spatial extent of the smoothing in pixels.
//   - sigmaR: Range extent in sample units. Neighbours differing by much
//     more than sigmaR are barely mixed.
//   - iterations: Number of horizontal plus vertical pass pairs.
//
// Returns:
//   - *Float: Smoothed copy of f. f is not modified.
//   - error: Non-nil for non-positive sigmas or iterations.
//
// # Algorithm
//
//  1. Domain distances: between each sample and its left (and upper)
//     neighbour, d = 1 + sigmaS/sigmaR * Σc|Δc|.
//
//  2. For iteration i of N the kernel sigma is
//     sigmaS * sqrt(3) * 2^(N-i) / sqrt(4^N - 1), and the feedback
//     coefficient is a = exp(-sqrt(2) / sigma).
//
//  3. Each pass runs a first-order recursive filter forward then backward
//     along every row (then column), with weight a^d per step. Large d at
//     an edge stops the filter from carrying colour across it.
func DomainTransform(f *Float, sigmaS, sigmaR float64, iterations int) (*Float, error) {
	if sigmaS <= 0 || sigmaR <= 0 {
		return nil, fmt.Errorf("domain transform sigmas must be positive, got s=%v r=%v", sigmaS, sigmaR)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("domain transform needs at least one iteration, got %d", iterations)
	}

	w, h, ch := f.Width, f.Height, f.Channels
	ratio := sigmaS / sigmaR

	// dH[x] and dV[y] hold the domain distance between a sample and its
	// left or upper neighbour.
	dH := NewFloat(w, h, 1)
	dV := NewFloat(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sh, sv float64
			for c := 0; c < ch; c++ {
				v := f.At(x, y, c)
				if x > 0 {
					sh += math.Abs(v - f.At(x-1, y, c))
				}
				if y > 0 {
					sv += math.Abs(v - f.At(x, y-1, c))
				}
			}
			dH.Set(x, y, 0, 1+ratio*sh)
			dV.Set(x, y, 0, 1+ratio*sv)
		}
	}

	out := f.Clone()
	n := float64(iterations)
	for i := 0; i < iterations; i++ {
		sigmaH := sigmaS * math.Sqrt(3) * math.Pow(2, n-float64(i+1)) / math.Sqrt(math.Pow(4, n)-1)
		a := math.Exp(-math.Sqrt(2) / sigmaH)
		recursiveRows(out, dH, a)
		recursiveCols(out, dV, a)
	}
	return out, nil
}

func recursiveRows(f, d *Float, a float64) {
	for y := 0; y < f.Height; y++ {
		for x := 1; x < f.Width; x++ {
			v := math.Pow(a, d.At(x, y, 0))
			for c := 0; c < f.Channels; c++ {
				i := f.Index(x, y, c)
				f.Pix[i] += v * (f.At(x-1, y, c) - f.Pix[i])
			}
		}
		for x := f.Width - 2; x >= 0; x-- {
			v := math.Pow(a, d.At(x+1, y, 0))
			for c := 0; c < f.Channels; c++ {
				i := f.Index(x, y, c)
				f.Pix[i] += v * (f.At(x+1, y, c) - f.Pix[i])
			}
		}
	}
}

func recursiveCols(f, d *Float, a float64) {
	for x := 0; x < f.Width; x++ {
		for y := 1; y < f.Height; y++ {
			v := math.Pow(a, d.At(x, y, 0))
			for c := 0; c < f.Channels; c++ {
				i := f.Index(x, y, c)
				f.Pix[i] += v * (f.At(x, y-1, c) - f.Pix[i])
			}
		}
		for y := f.Height - 2; y >= 0; y-- {
			v := math.Pow(a, d.At(x, y+1, 0))
			for c := 0; c < f.Channels; c++ {
				i := f.Index(x, y, c)
				f.Pix[i] += v * (f.At(x, y+1, c) - f.Pix[i])
			}
		}
	}
}
