// Package codec converts between encoded image bytes and raster buffers.
//
// Decoding accepts every format registered with the image package: JPEG,
// PNG and GIF from the standard library, BMP and TIFF through imaging, and
// WebP. The format is detected from the leading signature; there is exactly
// one decode attempt. Encoding always produces baseline JPEG at Quality.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Quality is the fixed JPEG quality used for every encoded result.
const Quality = 95

// MimeType is the content type of every encoded result.
const MimeType = "image/jpeg"

var (
	// ErrDecode reports input bytes that are not a complete, recognisable image.
	ErrDecode = errors.New("decode error")

	// ErrEncode reports a raster the JPEG encoder refused.
	ErrEncode = errors.New("encode error")
)

// Decode interprets data as a compressed image and returns its pixels in
// BGR order. EXIF orientation is applied.
//
// Returns an error wrapping ErrDecode if data is empty, has an unknown
// signature, is truncated, or decodes to an image without pixels.
func Decode(data []byte) (*raster.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out := raster.FromImage(img)
	if out.Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrDecode)
	}
	return out, nil
}

// Encode serialises img as JPEG at Quality.
//
// Returns an error wrapping ErrEncode if img is empty or malformed, or if
// the encoder fails.
func Encode(img *raster.Image) ([]byte, error) {
	if img == nil || img.Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrEncode)
	}
	if len(img.Pix) != img.Width*img.Height*3 {
		return nil, fmt.Errorf("%w: buffer holds %d samples, want %d",
			ErrEncode, len(img.Pix), img.Width*img.Height*3)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.NRGBA(), imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Info contains metadata about an encoded image, read from its header
// without decoding the pixels.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the registered format name, such as "png" or "jpeg".
	// Detection is based on file contents, not the file name.
	Format string `json:"format"`

	// SizeBytes is the length of the encoded input.
	SizeBytes int `json:"size_bytes"`
}

// Inspect reads the dimensions and format of an encoded image.
//
// Returns an error wrapping ErrDecode if the header cannot be parsed.
func Inspect(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &Info{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Format:    format,
		SizeBytes: len(data),
	}, nil
}
