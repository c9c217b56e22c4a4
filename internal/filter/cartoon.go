package filter

import (
	"fmt"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Cartoon renders src with flat colours and ink outlines using
// DefaultCartoon.
func Cartoon(src *raster.Image) (*raster.Image, error) {
	return CartoonWith(src, DefaultCartoon)
}

// CartoonWith renders src with flat colours and ink outlines.
//
// Parameters:
//   - src: Source image.
//   - p: Median size, adaptive threshold block and offset, downscale factor
//     and the bilateral settings. DefaultCartoon uses a 5x5 median, block 9,
//     offset 9, downscale 2 and five bilateral passes (d=9, sigma 75).
//
// Returns:
//   - *raster.Image: Cartoon image with the size of src.
//   - error: ErrEmptyImage, or an error when src is smaller than
//     p.Downscale pixels in either dimension.
//
// # Algorithm
//
//  1. Ink mask (EdgeMask): luma, median blur, then adaptive mean threshold.
//     A pixel is ink when it is at least ThresholdOffset below the mean of
//     its ThresholdBlock x ThresholdBlock neighbourhood (replicated border).
//
//  2. Colour layer: downsample by p.Downscale with a linear filter, apply
//     the bilateral filter p.BilateralPasses times, then resize back to the
//     input size with bilinear interpolation.
//
//  3. Composite: ink pixels are black, all others keep the colour layer.
func CartoonWith(src *raster.Image, p CartoonParams) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	edges, smooth, err := cartoonLayers(src, p)
	if err != nil {
		return nil, err
	}
	return inkComposite(smooth, edges).Image()
}

// cartoonLayers returns the ink mask (255 on outlines, 0 elsewhere) and the
// smoothed colour layer at full resolution.
func cartoonLayers(src *raster.Image, p CartoonParams) (edges, smooth *raster.Float, err error) {
	if p.Downscale < 1 {
		return nil, nil, fmt.Errorf("invalid downscale factor %d", p.Downscale)
	}
	if src.Width < p.Downscale || src.Height < p.Downscale {
		return nil, nil, fmt.Errorf("image %dx%d too small for %dx downscale",
			src.Width, src.Height, p.Downscale)
	}

	edges, err = EdgeMask(src, p)
	if err != nil {
		return nil, nil, err
	}

	small, err := raster.Downsample(src, src.Width/p.Downscale, src.Height/p.Downscale)
	if err != nil {
		return nil, nil, err
	}
	color := small.Float()
	for i := 0; i < p.BilateralPasses; i++ {
		color, err = raster.Bilateral(color, p.BilateralDiameter, p.BilateralSigmaColor, p.BilateralSigmaSpace)
		if err != nil {
			return nil, nil, err
		}
	}
	smooth, err = raster.ResizeBilinear(color, src.Width, src.Height)
	if err != nil {
		return nil, nil, err
	}
	return edges, smooth, nil
}

// EdgeMask extracts cartoon ink lines from src: the luma is median
// filtered and a pixel is marked 255 when it is at or below its local
// ThresholdBlock×ThresholdBlock mean minus ThresholdOffset, 0 otherwise.
func EdgeMask(src *raster.Image, p CartoonParams) (*raster.Float, error) {
	gray, err := raster.Luma(src.Float())
	if err != nil {
		return nil, err
	}
	gray, err = raster.MedianBlur(gray, p.MedianKernel)
	if err != nil {
		return nil, err
	}

	mean := raster.BoxMean(gray, p.ThresholdBlock, raster.BorderReplicate)
	mask := raster.NewFloat(gray.Width, gray.Height, 1)
	for i, g := range gray.Pix {
		if g <= mean.Pix[i]-p.ThresholdOffset {
			mask.Pix[i] = 255
		}
	}
	return mask, nil
}

// inkComposite keeps color where mask is 0 and paints black where it is set.
func inkComposite(color, mask *raster.Float) *raster.Float {
	out := color.Clone()
	for i, m := range mask.Pix {
		if m == 0 {
			continue
		}
		for c := 0; c < out.Channels; c++ {
			out.Pix[i*out.Channels+c] = 0
		}
	}
	return out
}
