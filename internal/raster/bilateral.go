package raster

import (
	"fmt"
	"math"
)

// Bilateral applies an edge-preserving bilateral filter.
//
// Neighbours inside a disc of diameter d contribute with weight
// exp(-r²/2σs²) · exp(-Δ²/2σc²), where r is the spatial distance and Δ is
// the sum of absolute per-channel differences to the centre sample.
// Borders are reflect-101.
func Bilateral(f *Float, diameter int, sigmaColor, sigmaSpace float64) (*Float, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("bilateral diameter must be positive, got %d", diameter)
	}
	if sigmaColor <= 0 || sigmaSpace <= 0 {
		return nil, fmt.Errorf("bilateral sigmas must be positive, got color=%v space=%v", sigmaColor, sigmaSpace)
	}

	radius := diameter / 2
	colorCoeff := -0.5 / (sigmaColor * sigmaColor)
	spaceCoeff := -0.5 / (sigmaSpace * sigmaSpace)

	type tap struct {
		dx, dy int
		w      float64
	}
	var taps []tap
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			r := math.Sqrt(float64(dx*dx + dy*dy))
			if r > float64(radius) {
				continue
			}
			taps = append(taps, tap{dx: dx, dy: dy, w: math.Exp(r * r * spaceCoeff)})
		}
	}

	out := NewFloat(f.Width, f.Height, f.Channels)
	acc := make([]float64, f.Channels)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			center := f.Pix[f.Index(x, y, 0):][:f.Channels]
			for c := range acc {
				acc[c] = 0
			}
			var wsum float64
			for _, t := range taps {
				sx := borderIndex(x+t.dx, f.Width, BorderReflect101)
				sy := borderIndex(y+t.dy, f.Height, BorderReflect101)
				sample := f.Pix[f.Index(sx, sy, 0):][:f.Channels]

				var diff float64
				for c, v := range sample {
					diff += math.Abs(v - center[c])
				}
				w := t.w * math.Exp(diff*diff*colorCoeff)
				for c, v := range sample {
					acc[c] += w * v
				}
				wsum += w
			}
			for c := range acc {
				out.Set(x, y, c, acc[c]/wsum)
			}
		}
	}
	return out, nil
}
