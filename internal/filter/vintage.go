package filter

import (
	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Vintage applies DefaultVintage.
func Vintage(src *raster.Image, rng Rand) (*raster.Image, error) {
	return VintageWith(src, rng, DefaultVintage)
}

// VintageWith runs Sepia (scratches included), darkens the corners with
// VignetteMask, adds film grain and clamps.
func VintageWith(src *raster.Image, rng Rand, p VintageParams) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	f, err := sepiaFloat(src, rng, p.Scratch)
	if err != nil {
		return nil, err
	}

	mask, err := VignetteMask(f.Width, f.Height)
	if err != nil {
		return nil, err
	}
	for i, m := range mask.Pix {
		for c := 0; c < 3; c++ {
			f.Pix[i*3+c] *= m
		}
	}

	AddGrain(f, rng, p.GrainSigma)
	f.ClampInPlace(0, 255)
	return f.Image()
}
