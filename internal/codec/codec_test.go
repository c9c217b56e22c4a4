package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// encodePNG creates a solid PNG of the given size and colour.
func encodePNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	data := encodePNG(t, 12, 7, color.RGBA{200, 100, 50, 255})

	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Width)
	assert.Equal(t, 7, img.Height)

	b, g, r := img.At(5, 5)
	assert.Equal(t, [3]uint8{50, 100, 200}, [3]uint8{b, g, r})
}

func TestDecode_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	garbage := make([]byte, 512)
	rng.Read(garbage)

	valid := encodePNG(t, 20, 20, color.RGBA{1, 2, 3, 255})

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"random bytes", garbage},
		{"text", []byte("definitely not an image")},
		{"truncated png", valid[:len(valid)/2]},
		{"signature only", valid[:8]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestEncode_ProducesJPEG(t *testing.T) {
	img := raster.NewImage(30, 20)
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	data, err := Encode(img)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestEncode_GrayRoundTripIsExact(t *testing.T) {
	img := raster.NewImage(16, 16)
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	data, err := Encode(img)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, back.Pix)
}

func TestEncode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		img  *raster.Image
	}{
		{"nil", nil},
		{"zero area", raster.NewImage(0, 4)},
		{"short buffer", &raster.Image{Width: 4, Height: 4, Pix: make([]uint8, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.img)
			assert.ErrorIs(t, err, ErrEncode)
		})
	}
}

func TestDecode_AcceptsJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 9, 4))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 9, img.Width)
	assert.Equal(t, 4, img.Height)
}

func TestInspect(t *testing.T) {
	data := encodePNG(t, 64, 32, color.White)

	info, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, 64, info.Width)
	assert.Equal(t, 32, info.Height)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, len(data), info.SizeBytes)

	_, err = Inspect(nil)
	assert.ErrorIs(t, err, ErrDecode)
	_, err = Inspect([]byte("nope"))
	assert.ErrorIs(t, err, ErrDecode)
}
