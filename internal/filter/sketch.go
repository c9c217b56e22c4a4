package filter

import (
	"math"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Sketch renders src as a pencil drawing with DefaultSketch.
func Sketch(src *raster.Image) (*raster.Image, error) {
	return SketchWith(src, DefaultSketch)
}

// SketchWith renders src as a pencil drawing.
//
// Flat regions come out white and luma edges become gray strokes, so the
// result looks like graphite on paper.
//
// Parameters:
//   - src: Source image. Must have at least one pixel.
//   - p: Blur kernel size (odd), dodge scale, sharpen kernel and gamma.
//     DefaultSketch uses 25, 256, a 3x3 cross sharpen and 1.8.
//
// Returns:
//   - *raster.Image: Gray image (B = G = R) with the size of src.
//   - error: ErrEmptyImage, or an error for an even or non-positive kernel.
//
// # Algorithm
//
//  1. Grayscale conversion with BT.601 weights.
//
//  2. Inversion (255 - gray), Gaussian blur with p.BlurKernel and an
//     automatic sigma, reflect-101 borders, and inversion again.
//
//  3. Colour dodge: min(255, gray*DodgeScale / invBlur), 0 where the
//     divisor is 0.
//
//  4. Sharpen with p.Sharpen and clamp to [0,255].
//
//  5. Gamma: 255*(v/255)^Gamma. Gamma above 1 darkens the midtones.
//
// The order dodge, sharpen, gamma is fixed.
func SketchWith(src *raster.Image, p SketchParams) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	plane, err := sketchPlane(src, p)
	if err != nil {
		return nil, err
	}
	return plane.Image()
}

func sketchPlane(src *raster.Image, p SketchParams) (*raster.Float, error) {
	gray, err := raster.Luma(src.Float())
	if err != nil {
		return nil, err
	}

	inv := gray.Map(func(v float64) float64 { return 255 - v })
	blur, err := raster.GaussianBlur(inv, p.BlurKernel, 0)
	if err != nil {
		return nil, err
	}

	dodge := raster.NewFloat(gray.Width, gray.Height, 1)
	for i, g := range gray.Pix {
		invBlur := 255 - blur.Pix[i]
		if invBlur <= 0 {
			continue
		}
		dodge.Pix[i] = math.Min(255, g*p.DodgeScale/invBlur)
	}

	kernel := raster.NewKernel([][]float64{p.Sharpen[0][:], p.Sharpen[1][:], p.Sharpen[2][:]})
	sharp := raster.Convolve(dodge, kernel, raster.BorderReflect101)
	sharp.ClampInPlace(0, 255)

	return sharp.Map(func(v float64) float64 {
		return 255 * math.Pow(v/255, p.Gamma)
	}), nil
}
