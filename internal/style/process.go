package style

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/image-style-mcp/internal/codec"
	"github.com/ironsheep/image-style-mcp/internal/filter"
	"github.com/ironsheep/image-style-mcp/internal/raster"
)

var (
	// ErrDecode reports input bytes that are not a recognisable image.
	ErrDecode = codec.ErrDecode

	// ErrEncode reports a failure to encode a filter result.
	ErrEncode = codec.ErrEncode

	// ErrProcessing reports an unexpected failure inside a filter.
	ErrProcessing = errors.New("processing error")
)

// filterFunc is the uniform shape of every registered filter.
type filterFunc func(img *raster.Image, rng filter.Rand) (*raster.Image, error)

func deterministic(fn func(*raster.Image) (*raster.Image, error)) filterFunc {
	return func(img *raster.Image, _ filter.Rand) (*raster.Image, error) {
		return fn(img)
	}
}

// filters has no entry for Original, which is the identity.
var filters = map[Style]filterFunc{
	BW:          deterministic(filter.Grayscale),
	Retro:       filter.Sepia,
	Vintage:     filter.Vintage,
	Sketch:      deterministic(filter.Sketch),
	Cartoon:     deterministic(filter.Cartoon),
	Cyberpunk:   deterministic(filter.Cyberpunk),
	Summer:      deterministic(filter.Summer),
	Winter:      deterministic(filter.Winter),
	Watercolor:  deterministic(filter.Watercolor),
	ColorSketch: deterministic(filter.ColorSketch),
}

// Processor runs styles against encoded images.
type Processor struct {
	newRand func() filter.Rand
	logger  zerolog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithRand sets the factory for the random source handed to each filter
// call. The default is filter.NewRand.
func WithRand(fn func() filter.Rand) Option {
	return func(p *Processor) {
		p.newRand = fn
	}
}

// WithLogger sets the logger. The default is the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// NewProcessor creates a Processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		newRand: filter.NewRand,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultProcessor = NewProcessor()

// Process decodes data, applies the style named by token and encodes the
// result as JPEG, using a default Processor.
func Process(data []byte, token string) ([]byte, error) {
	return defaultProcessor.Process(data, token)
}

// Process decodes data, applies the style named by token and encodes the
// result as JPEG.
func (p *Processor) Process(data []byte, token string) ([]byte, error) {
	start := time.Now()

	img, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	out, err := p.Apply(img, token)
	if err != nil {
		return nil, err
	}

	encoded, err := codec.Encode(out)
	if err != nil {
		p.logger.Error().Err(err).Str("style", token).
			Int("width", out.Width).Int("height", out.Height).
			Msg("failed to encode filter result")
		return nil, err
	}

	p.logger.Debug().
		Str("style", token).
		Int("width", img.Width).
		Int("height", img.Height).
		Int("bytes_in", len(data)).
		Int("bytes_out", len(encoded)).
		Dur("duration", time.Since(start)).
		Msg("processed image")

	return encoded, nil
}

// Apply runs the filter named by token on img. Unknown tokens and Original
// return img itself.
//
// Filter failures, including panics and results whose dimensions differ
// from img, are returned wrapping ErrProcessing.
func (p *Processor) Apply(img *raster.Image, token string) (out *raster.Image, err error) {
	s, ok := Parse(token)
	if !ok {
		p.logger.Debug().Str("style", token).Msg("unknown style, returning original")
	}
	fn, found := filters[s]
	if !found {
		return img, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %s: %v", ErrProcessing, s, r)
		}
	}()

	out, err = fn(img, p.newRand())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProcessing, s, err)
	}
	if out.Width != img.Width || out.Height != img.Height {
		return nil, fmt.Errorf("%w: %s: result is %dx%d, input %dx%d",
			ErrProcessing, s, out.Width, out.Height, img.Width, img.Height)
	}
	return out, nil
}
