package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

type overlaySize struct {
	name          string
	width, height int
}

var overlaySizes = []overlaySize{
	{"1x1", 1, 1},
	{"3x2", 3, 2},
	{"7x40", 7, 40},
	{"64x21", 64, 21},
	{"640x480", 640, 480},
}

func TestScratches_Bounds(t *testing.T) {
	p := DefaultScratch

	for _, sz := range overlaySizes {
		t.Run(sz.name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				segs, err := Scratches(sz.width, sz.height, seeded(seed), p)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, len(segs), p.MinLines, "seed %d", seed)
				assert.Less(t, len(segs), p.MaxLines, "seed %d", seed)

				for _, s := range segs {
					assert.GreaterOrEqual(t, s.X0, 0)
					assert.Less(t, s.X0, sz.width)
					assert.GreaterOrEqual(t, s.Y0, 0)
					assert.Less(t, s.Y0, max(sz.height/2, 1))
					assert.GreaterOrEqual(t, s.Y1, min(s.Y0+p.MinLength, sz.height-1))
					assert.Less(t, s.Y1, sz.height)
					assert.LessOrEqual(t, abs(s.X1-s.X0), p.Drift)
				}
			}
		})
	}
}

func TestScratches_SameSeedSameSegments(t *testing.T) {
	a, err := Scratches(120, 90, seeded(11), DefaultScratch)
	require.NoError(t, err)
	b, err := Scratches(120, 90, seeded(11), DefaultScratch)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScratches_InvalidInput(t *testing.T) {
	_, err := Scratches(0, 10, seeded(1), DefaultScratch)
	assert.Error(t, err)

	bad := DefaultScratch
	bad.MaxLines = bad.MinLines
	_, err = Scratches(10, 10, seeded(1), bad)
	assert.Error(t, err)
}

func TestScratchMask(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		want int
	}{
		{"vertical", []Segment{{X0: 2, Y0: 1, X1: 2, Y1: 5}}, 5},
		{"single point", []Segment{{X0: 0, Y0: 0, X1: 0, Y1: 0}}, 1},
		{"diagonal drift", []Segment{{X0: 3, Y0: 0, X1: 5, Y1: 7}}, 8},
		{"clipped past right edge", []Segment{{X0: 7, Y0: 0, X1: 9, Y1: 7}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := ScratchMask(8, 8, tt.segs)
			var lit int
			for _, v := range mask.Pix {
				require.Contains(t, []float64{0, 1}, v)
				if v == 1 {
					lit++
				}
			}
			assert.Equal(t, tt.want, lit)
		})
	}
}

func TestVignetteMask(t *testing.T) {
	sizes := append([]overlaySize{{"2x3", 2, 3}, {"4x6", 4, 6}}, overlaySizes...)

	for _, sz := range sizes {
		t.Run(sz.name, func(t *testing.T) {
			mask, err := VignetteMask(sz.width, sz.height)
			require.NoError(t, err)
			require.Equal(t, 1, mask.Channels)

			peak := 0.0
			for _, v := range mask.Pix {
				assert.Greater(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
				peak = math.Max(peak, v)
			}
			assert.Equal(t, 1.0, peak)

			again, err := VignetteMask(sz.width, sz.height)
			require.NoError(t, err)
			assert.Equal(t, mask.Pix, again.Pix, "mask depends only on size")

			if sz.width >= 3 && sz.height >= 3 {
				centre := mask.At(sz.width/2, sz.height/2, 0)
				for _, c := range [][2]int{{0, 0}, {sz.width - 1, 0}, {0, sz.height - 1}, {sz.width - 1, sz.height - 1}} {
					assert.Less(t, mask.At(c[0], c[1], 0), centre)
				}
			}
		})
	}
}

func TestVignetteMask_Empty(t *testing.T) {
	_, err := VignetteMask(0, 5)
	assert.Error(t, err)
}

func TestAddGrain_Distribution(t *testing.T) {
	const sigma = 10.0
	f := raster.NewFloat(200, 200, 3)
	AddGrain(f, seeded(42), sigma)

	n := float64(len(f.Pix))
	var sum, sumSq float64
	for _, v := range f.Pix {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	assert.InDelta(t, 0, mean, 0.2)
	assert.InDelta(t, sigma, std, 0.2)
}

func TestAddGrain_ZeroSigmaIsNoop(t *testing.T) {
	f := raster.NewFloat(4, 4, 3)
	for i := range f.Pix {
		f.Pix[i] = 100
	}
	AddGrain(f, seeded(1), 0)
	for _, v := range f.Pix {
		assert.Equal(t, 100.0, v)
	}
}

func TestVintage_SameSeedSameOutput(t *testing.T) {
	src := noiseImage(48, 36, 5, 0, 256)
	a, err := Vintage(src, seeded(9))
	require.NoError(t, err)
	b, err := Vintage(src, seeded(9))
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}
