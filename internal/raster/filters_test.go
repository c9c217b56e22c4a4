package raster

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noiseFloat creates a buffer of uniform samples in [0,255).
func noiseFloat(t *testing.T, width, height, channels int, seed int64) *Float {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	f := NewFloat(width, height, channels)
	for i := range f.Pix {
		f.Pix[i] = rng.Float64() * 255
	}
	return f
}

func TestLuma(t *testing.T) {
	tests := []struct {
		name    string
		b, g, r float64
		want    float64
	}{
		{"gray", 128, 128, 128, 128},
		{"white", 255, 255, 255, 255},
		{"pure red", 0, 0, 255, 0.299 * 255},
		{"pure green", 0, 255, 0, 0.587 * 255},
		{"pure blue", 255, 0, 0, 0.114 * 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFloat(1, 1, 3)
			copy(f.Pix, []float64{tt.b, tt.g, tt.r})
			l, err := Luma(f)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, l.Pix[0], 1e-9)
		})
	}
}

func TestLuma_RejectsSingleChannel(t *testing.T) {
	_, err := Luma(NewFloat(1, 1, 1))
	assert.Error(t, err)
}

func TestLab_RoundTrip(t *testing.T) {
	f := noiseFloat(t, 8, 8, 3, 11)
	back := FromLab(ToLab(f))
	for i := range f.Pix {
		assert.InDelta(t, f.Pix[i], back.Pix[i], 1e-6)
	}
}

func TestLab_KnownValues(t *testing.T) {
	f := NewFloat(2, 1, 3)
	copy(f.Pix, []float64{255, 255, 255, 0, 0, 0})
	lab := ToLab(f)

	// white: L at top of scale, neutral chroma
	assert.InDelta(t, 255.0, lab.At(0, 0, 0), 0.01)
	assert.InDelta(t, 128.0, lab.At(0, 0, 1), 0.05)
	assert.InDelta(t, 128.0, lab.At(0, 0, 2), 0.05)
	// black
	assert.InDelta(t, 0.0, lab.At(1, 0, 0), 0.01)
}

func TestYCbCr_RoundTrip(t *testing.T) {
	f := noiseFloat(t, 8, 8, 3, 12)
	back := FromYCbCr(ToYCbCr(f))
	for i := range f.Pix {
		assert.InDelta(t, f.Pix[i], back.Pix[i], 1e-3)
	}
}

func TestResizeBilinear(t *testing.T) {
	f := solidFloat(5, 3, 3, 77)
	out, err := ResizeBilinear(f, 11, 7)
	require.NoError(t, err)
	assert.Equal(t, 11, out.Width)
	assert.Equal(t, 7, out.Height)
	for _, v := range out.Pix {
		assert.InDelta(t, 77.0, v, 1e-9)
	}

	_, err = ResizeBilinear(f, 0, 7)
	assert.Error(t, err)
}

func TestResizeBilinear_Interpolates(t *testing.T) {
	f := NewFloat(2, 1, 1)
	copy(f.Pix, []float64{0, 100})

	out, err := ResizeBilinear(f, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 75, 100}, out.Pix)
}

func TestDownsample(t *testing.T) {
	m := NewImage(10, 6)
	for i := range m.Pix {
		m.Pix[i] = 90
	}

	out, err := Downsample(m, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Width)
	assert.Equal(t, 3, out.Height)
	for _, v := range out.Pix {
		assert.Equal(t, uint8(90), v)
	}

	_, err = Downsample(m, 0, 3)
	assert.Error(t, err)
}

func TestMedianBlur_RemovesImpulse(t *testing.T) {
	f := NewFloat(7, 7, 1)
	f.Set(3, 3, 0, 255)

	out, err := MedianBlur(f, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.At(3, 3, 0))
}

func TestMedianBlur_InvalidInput(t *testing.T) {
	_, err := MedianBlur(NewFloat(3, 3, 3), 5)
	assert.Error(t, err)
	_, err = MedianBlur(NewFloat(3, 3, 1), 4)
	assert.Error(t, err)
}

func TestBilateral_PreservesConstant(t *testing.T) {
	f := solidFloat(6, 6, 3, 33)
	out, err := Bilateral(f, 9, 75, 75)
	require.NoError(t, err)
	for _, v := range out.Pix {
		assert.InDelta(t, 33.0, v, 1e-9)
	}
}

func TestBilateral_KeepsStrongEdge(t *testing.T) {
	f := NewFloat(10, 4, 3)
	for y := 0; y < 4; y++ {
		for x := 5; x < 10; x++ {
			for c := 0; c < 3; c++ {
				f.Set(x, y, c, 255)
			}
		}
	}

	out, err := Bilateral(f, 9, 10, 75)
	require.NoError(t, err)
	assert.Less(t, out.At(4, 1, 0), 1.0)
	assert.Greater(t, out.At(5, 1, 0), 254.0)
}

func TestBilateral_InvalidParams(t *testing.T) {
	f := solidFloat(2, 2, 3, 1)
	_, err := Bilateral(f, 0, 75, 75)
	assert.Error(t, err)
	_, err = Bilateral(f, 9, 0, 75)
	assert.Error(t, err)
}

func TestDomainTransform(t *testing.T) {
	flat := solidFloat(9, 7, 3, 0.4)
	out, err := DomainTransform(flat, 50, 0.45, 3)
	require.NoError(t, err)
	for _, v := range out.Pix {
		assert.InDelta(t, 0.4, v, 1e-9)
	}

	// smoothing reduces variance on noise
	noisy := noiseFloat(t, 16, 16, 3, 5).Map(func(v float64) float64 { return v / 255 })
	smooth, err := DomainTransform(noisy, 50, 0.45, 3)
	require.NoError(t, err)
	assert.Less(t, variance(smooth), variance(noisy))

	_, err = DomainTransform(flat, 0, 0.45, 3)
	assert.Error(t, err)
	_, err = DomainTransform(flat, 50, 0.45, 0)
	assert.Error(t, err)
}

func variance(f *Float) float64 {
	var sum, sq float64
	for _, v := range f.Pix {
		sum += v
		sq += v * v
	}
	n := float64(len(f.Pix))
	m := sum / n
	return sq/n - m*m
}
