package raster

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ITU-R BT.601 luma weights.
const (
	lumaB = 0.114
	lumaG = 0.587
	lumaR = 0.299
)

// Luma converts a BGR buffer to a one channel luma buffer.
func Luma(f *Float) (*Float, error) {
	if f.Channels != 3 {
		return nil, fmt.Errorf("luma expects 3 channels, got %d", f.Channels)
	}
	out := NewFloat(f.Width, f.Height, 1)
	for i := range out.Pix {
		p := f.Pix[i*3:]
		out.Pix[i] = lumaB*p[Blue] + lumaG*p[Green] + lumaR*p[Red]
	}
	return out, nil
}

// ToLab converts a BGR buffer with samples in [0,255] to CIE L*a*b* (D65)
// on the 8-bit scale: L in [0,255] (L*·255/100), a and b offset by 128.
// The output channel order is L, a, b.
func ToLab(f *Float) *Float {
	out := NewFloat(f.Width, f.Height, 3)
	for i := 0; i < f.Width*f.Height; i++ {
		p := f.Pix[i*3:]
		c := colorful.Color{
			R: Clamp(p[Red], 0, 255) / 255,
			G: Clamp(p[Green], 0, 255) / 255,
			B: Clamp(p[Blue], 0, 255) / 255,
		}
		l, a, b := c.Lab()
		o := out.Pix[i*3:]
		o[0] = l * 255
		o[1] = a*100 + 128
		o[2] = b*100 + 128
	}
	return out
}

// FromLab is the inverse of ToLab. Colours outside the sRGB gamut are
// clamped into it.
func FromLab(f *Float) *Float {
	out := NewFloat(f.Width, f.Height, 3)
	for i := 0; i < f.Width*f.Height; i++ {
		p := f.Pix[i*3:]
		c := colorful.Lab(p[0]/255, (p[1]-128)/100, (p[2]-128)/100).Clamped()
		o := out.Pix[i*3:]
		o[Blue] = c.B * 255
		o[Green] = c.G * 255
		o[Red] = c.R * 255
	}
	return out
}

// ToYCbCr converts a BGR buffer to full-range YCbCr (JPEG convention,
// chroma offset 128). The output channel order is Y, Cb, Cr.
func ToYCbCr(f *Float) *Float {
	out := NewFloat(f.Width, f.Height, 3)
	for i := 0; i < f.Width*f.Height; i++ {
		p := f.Pix[i*3:]
		b, g, r := p[Blue], p[Green], p[Red]
		o := out.Pix[i*3:]
		o[0] = lumaR*r + lumaG*g + lumaB*b
		o[1] = 128 - 0.168736*r - 0.331264*g + 0.5*b
		o[2] = 128 + 0.5*r - 0.418688*g - 0.081312*b
	}
	return out
}

// FromYCbCr is the inverse of ToYCbCr.
func FromYCbCr(f *Float) *Float {
	out := NewFloat(f.Width, f.Height, 3)
	for i := 0; i < f.Width*f.Height; i++ {
		p := f.Pix[i*3:]
		y, cb, cr := p[0], p[1]-128, p[2]-128
		o := out.Pix[i*3:]
		o[Red] = y + 1.402*cr
		o[Green] = y - 0.344136*cb - 0.714136*cr
		o[Blue] = y + 1.772*cb
	}
	return out
}
