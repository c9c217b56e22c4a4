package filter

import (
	"errors"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// ErrEmptyImage is returned when a filter receives an image without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

func checkInput(src *raster.Image) error {
	if src == nil || src.Empty() {
		return ErrEmptyImage
	}
	return nil
}

// Grayscale converts src to BT.601 luma and replicates it across all three
// channels. Applying it twice gives the same result as applying it once.
func Grayscale(src *raster.Image) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	gray, err := raster.Luma(src.Float())
	if err != nil {
		return nil, err
	}
	return gray.Image()
}

// Sepia tints src with SepiaMatrix and overlays film scratches drawn from
// rng. Output differs between calls unless rng is seeded identically.
func Sepia(src *raster.Image, rng Rand) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	f, err := sepiaFloat(src, rng, DefaultScratch)
	if err != nil {
		return nil, err
	}
	return f.Image()
}

// sepiaFloat applies the matrix and the scratch pass, returning samples
// clamped to [0,255].
func sepiaFloat(src *raster.Image, rng Rand, scratch ScratchParams) (*raster.Float, error) {
	in := src.Float()
	out := raster.NewFloat(in.Width, in.Height, 3)
	for i := 0; i < in.Width*in.Height; i++ {
		p := in.Pix[i*3:]
		o := out.Pix[i*3:]
		for c := 0; c < 3; c++ {
			m := SepiaMatrix[c]
			v := (m[0]*p[0] + m[1]*p[1] + m[2]*p[2]) / 255
			o[c] = raster.Clamp(v, 0, 1) * 255
		}
	}

	if err := applyScratches(out, rng, scratch); err != nil {
		return nil, err
	}
	return out, nil
}

// Summer warms src: a and b move towards red and yellow and lightness is
// raised by 5%.
func Summer(src *raster.Image) (*raster.Image, error) {
	return ShiftLab(src, SummerShift)
}

// Winter cools src towards blue.
func Winter(src *raster.Image) (*raster.Image, error) {
	return ShiftLab(src, WinterShift)
}

// ShiftLab converts src to 8-bit scaled L*a*b*, scales L and offsets a and
// b, clamps every channel to [0,255] and converts back.
func ShiftLab(src *raster.Image, shift LabShift) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	lab := raster.ToLab(src.Float())
	for i := 0; i < lab.Width*lab.Height; i++ {
		p := lab.Pix[i*3:]
		p[0] = raster.Clamp(p[0]*shift.LScale, 0, 255)
		p[1] = raster.Clamp(p[1]+shift.A, 0, 255)
		p[2] = raster.Clamp(p[2]+shift.B, 0, 255)
	}
	return raster.FromLab(lab).Image()
}

// Cyberpunk applies DefaultCyberpunk.
func Cyberpunk(src *raster.Image) (*raster.Image, error) {
	return CyberpunkWith(src, DefaultCyberpunk)
}

// CyberpunkWith scales every channel by p.Contrast and clamps, then scales
// each channel by its own gain and clamps again. The global scale always
// runs first.
func CyberpunkWith(src *raster.Image, p CyberpunkParams) (*raster.Image, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	gains := [3]float64{raster.Blue: p.Blue, raster.Green: p.Green, raster.Red: p.Red}
	f := src.Float()
	for i, v := range f.Pix {
		v = raster.Clamp(v*p.Contrast, 0, 255)
		f.Pix[i] = raster.Clamp(v*gains[i%3], 0, 255)
	}
	return f.Image()
}
