package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Channel indexes within a three channel pixel.
const (
	Blue  = 0
	Green = 1
	Red   = 2
)

// Image is an 8-bit raster with three interleaved channels in B, G, R order.
type Image struct {
	Width  int
	Height int
	// Pix holds Width*Height*3 samples, row-major.
	Pix []uint8
}

// NewImage allocates a black image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At returns the B, G, R samples at (x, y).
func (m *Image) At(x, y int) (b, g, r uint8) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set writes the B, G, R samples at (x, y).
func (m *Image) Set(x, y int, b, g, r uint8) {
	i := (y*m.Width + x) * 3
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = b, g, r
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	out := &Image{Width: m.Width, Height: m.Height, Pix: make([]uint8, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// Empty reports whether the image has no pixels.
func (m *Image) Empty() bool {
	return m.Width <= 0 || m.Height <= 0
}

// FromImage copies any image.Image into a BGR raster. Alpha is dropped; the
// stored colour channels are kept as they are.
func FromImage(src image.Image) *Image {
	nrgba := imaging.Clone(src)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	out := NewImage(w, h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < w; x++ {
			s := row[x*4:]
			out.Set(x, y, s[2], s[1], s[0])
		}
	}
	return out
}

// NRGBA converts m to an opaque *image.NRGBA.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < m.Width; x++ {
			b, g, r := m.At(x, y)
			d := row[x*4:]
			d[0], d[1], d[2], d[3] = r, g, b, 255
		}
	}
	return out
}

// Float converts m to a three channel float buffer with samples in [0,255].
func (m *Image) Float() *Float {
	out := NewFloat(m.Width, m.Height, 3)
	for i, v := range m.Pix {
		out.Pix[i] = float64(v)
	}
	return out
}

// Float is a floating point working buffer with one or more interleaved
// channels. Samples have no implied range.
type Float struct {
	Width    int
	Height   int
	Channels int
	Pix      []float64
}

// NewFloat allocates a zeroed float buffer.
func NewFloat(width, height, channels int) *Float {
	return &Float{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}
}

// Index returns the offset of channel c at (x, y) in Pix.
func (f *Float) Index(x, y, c int) int {
	return (y*f.Width+x)*f.Channels + c
}

// At returns channel c at (x, y).
func (f *Float) At(x, y, c int) float64 {
	return f.Pix[f.Index(x, y, c)]
}

// Set writes channel c at (x, y).
func (f *Float) Set(x, y, c int, v float64) {
	f.Pix[f.Index(x, y, c)] = v
}

// Clone returns a deep copy of f.
func (f *Float) Clone() *Float {
	out := &Float{Width: f.Width, Height: f.Height, Channels: f.Channels, Pix: make([]float64, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}

// SameSize reports whether g has the same width and height as f.
func (f *Float) SameSize(g *Float) bool {
	return f.Width == g.Width && f.Height == g.Height
}

// Channel extracts channel c as a one channel buffer.
func (f *Float) Channel(c int) *Float {
	out := NewFloat(f.Width, f.Height, 1)
	for i := range out.Pix {
		out.Pix[i] = f.Pix[i*f.Channels+c]
	}
	return out
}

// Merge interleaves one channel buffers of equal size into a single buffer.
func Merge(planes ...*Float) *Float {
	out := NewFloat(planes[0].Width, planes[0].Height, len(planes))
	for c, p := range planes {
		for i, v := range p.Pix {
			out.Pix[i*out.Channels+c] = v
		}
	}
	return out
}

// Map returns a new buffer with fn applied to every sample.
func (f *Float) Map(fn func(v float64) float64) *Float {
	out := NewFloat(f.Width, f.Height, f.Channels)
	for i, v := range f.Pix {
		out.Pix[i] = fn(v)
	}
	return out
}

// ClampInPlace limits every sample to [lo, hi].
func (f *Float) ClampInPlace(lo, hi float64) {
	for i, v := range f.Pix {
		f.Pix[i] = Clamp(v, lo, hi)
	}
}

// Mean returns the average of channel c.
func (f *Float) Mean(c int) float64 {
	n := f.Width * f.Height
	if n == 0 {
		return 0
	}
	var sum float64
	for i := c; i < len(f.Pix); i += f.Channels {
		sum += f.Pix[i]
	}
	return sum / float64(n)
}

// Image converts f back to 8-bit: each sample is clamped to [0,255] and
// rounded. One channel buffers are replicated across B, G and R.
//
// Returns an error if any sample is NaN or infinite, or if the channel count
// is neither 1 nor 3.
func (f *Float) Image() (*Image, error) {
	if f.Channels != 1 && f.Channels != 3 {
		return nil, fmt.Errorf("cannot convert %d channel buffer to BGR", f.Channels)
	}
	out := NewImage(f.Width, f.Height)
	for i, v := range f.Pix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite sample %v at offset %d", v, i)
		}
		q := uint8(math.Round(Clamp(v, 0, 255)))
		if f.Channels == 1 {
			out.Pix[i*3], out.Pix[i*3+1], out.Pix[i*3+2] = q, q, q
		} else {
			out.Pix[i] = q
		}
	}
	return out, nil
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt constrains an integer value to the range [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
