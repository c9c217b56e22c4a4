package filter

import (
	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Watercolor applies DefaultWatercolor stylization.
func Watercolor(src *raster.Image) (*raster.Image, error) {
	return Stylize(src, DefaultWatercolor)
}

// Stylize smooths src with an edge-preserving domain transform and darkens
// the result along its remaining edges, giving a painted look.
//
// Parameters:
//   - src: Source image.
//   - p: Spatial sigma in pixels, range sigma on [0,1] samples and the
//     number of iterations. DefaultWatercolor uses 50, 0.45 and 3.
//
// Returns:
//   - *raster.Image: Stylized image with the size of src.
//   - error: ErrEmptyImage, or an error for non-positive parameters.
//
// # Algorithm
//
//  1. Scale samples to [0,1].
//
//  2. Smooth with DomainTransform(p.SigmaS, p.SigmaR, p.Iterations). Large
//     colour steps survive, texture inside regions is flattened.
//
//  3. Sobel gradient magnitude per channel of the smoothed image.
//
//  4. Multiply every channel by clamp(1 - (|∇B| + |∇G| + |∇R|), 0, 1), so
//     pixels on strong edges turn dark like pigment pooling at a border.
func Stylize(src *raster.Image, p StylizeParams) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	norm := src.Float().Map(func(v float64) float64 { return v / 255 })
	smooth, err := raster.DomainTransform(norm, p.SigmaS, p.SigmaR, p.Iterations)
	if err != nil {
		return nil, err
	}

	grad := raster.GradientMagnitude(smooth)
	out := raster.NewFloat(smooth.Width, smooth.Height, 3)
	for i := 0; i < smooth.Width*smooth.Height; i++ {
		g := grad.Pix[i*3:]
		keep := raster.Clamp(1-(g[0]+g[1]+g[2]), 0, 1)
		for c := 0; c < 3; c++ {
			out.Pix[i*3+c] = smooth.Pix[i*3+c] * keep * 255
		}
	}
	return out.Image()
}

// ColorSketch returns the colour rendering of DefaultColorSketch.
func ColorSketch(src *raster.Image) (*raster.Image, error) {
	_, color, err := PencilSketch(src, DefaultColorSketch)
	return color, err
}

// PencilSketch renders src as a pencil drawing and returns both the gray
// and the colour rendering.
//
// Parameters:
//   - src: Source image.
//   - p: Domain transform sigmas and iterations, plus ShadeFactor in
//     [0, 0.1]. Higher shade factors give lighter strokes.
//     DefaultColorSketch uses 60, 0.07, 3 and 0.05.
//
// Returns:
//   - gray: Pencil tone only (B = G = R).
//   - color: The smoothed colours with their luma replaced by the tone.
//   - error: ErrEmptyImage, or an error for non-positive sigmas.
//
// # Algorithm
//
//  1. Smooth the [0,1] image with DomainTransform.
//
//  2. Convert to full-range YCbCr and take the Sobel magnitude of Y on a
//     [0,1] scale.
//
//  3. Tone = clamp(1 - (1 - 10*ShadeFactor)*|∇Y|, 0, 1), times 255.
//
//  4. The gray rendering is the tone. The colour rendering writes the tone
//     into Y and converts back, keeping Cb and Cr.
func PencilSketch(src *raster.Image, p PencilParams) (gray, color *raster.Image, err error) {
	if err := checkInput(src); err != nil {
		return nil, nil, err
	}
	norm := src.Float().Map(func(v float64) float64 { return v / 255 })
	smooth, err := raster.DomainTransform(norm, p.SigmaS, p.SigmaR, p.Iterations)
	if err != nil {
		return nil, nil, err
	}

	ycc := raster.ToYCbCr(smooth.Map(func(v float64) float64 { return v * 255 }))
	strokes := raster.GradientMagnitude(ycc.Channel(0).Map(func(v float64) float64 { return v / 255 }))

	strength := 1 - 10*p.ShadeFactor
	tone := strokes.Map(func(v float64) float64 {
		return raster.Clamp(1-strength*v, 0, 1) * 255
	})

	for i, t := range tone.Pix {
		ycc.Pix[i*3] = t
	}

	gray, err = tone.Image()
	if err != nil {
		return nil, nil, err
	}
	color, err = raster.FromYCbCr(ycc).Image()
	if err != nil {
		return nil, nil, err
	}
	return gray, color, nil
}
