// Package style is the public entry point of the transformation core: it
// maps a style token to a filter and runs decode, filter and encode.
//
// # Contract
//
//	out, err := style.Process(imageBytes, "sketch")
//
// Process always returns JPEG bytes with the input's dimensions, or an
// error matching one of ErrDecode, ErrEncode or ErrProcessing via
// errors.Is. Unknown tokens, like "original", return the decoded input
// unchanged. Nothing is retried and no fallback image is produced.
//
// # Concurrency
//
// Calls share no mutable state and may run in parallel. Each call holds
// several full-resolution float buffers at once, so callers should bound
// the number of calls in flight.
package style

// Style identifies one of the supported photo styles.
type Style string

// Supported styles.
const (
	Original    Style = "original"
	BW          Style = "bw"
	Retro       Style = "retro"
	Vintage     Style = "vintage"
	Sketch      Style = "sketch"
	Cartoon     Style = "cartoon"
	Cyberpunk   Style = "cyberpunk"
	Summer      Style = "summer"
	Winter      Style = "winter"
	Watercolor  Style = "watercolor"
	ColorSketch Style = "color_sketch"
)

var descriptions = map[Style]string{
	Original:    "Unmodified image, re-encoded as JPEG",
	BW:          "Black and white (luma grayscale)",
	Retro:       "Sepia tone with film scratches",
	Vintage:     "Sepia, vignette and film grain",
	Sketch:      "Pencil sketch with dodge shading",
	Cartoon:     "Flat colours with ink outlines",
	Cyberpunk:   "High contrast neon purple tint",
	Summer:      "Warm, slightly brighter tones",
	Winter:      "Cool blue tones",
	Watercolor:  "Edge-preserving painted look",
	ColorSketch: "Colour pencil drawing",
}

// All returns every supported style in a stable order.
func All() []Style {
	return []Style{
		Original, BW, Retro, Vintage, Sketch, Cartoon,
		Cyberpunk, Summer, Winter, Watercolor, ColorSketch,
	}
}

// Parse maps a token to a Style. ok is false for unknown tokens, which
// callers treat as Original.
func Parse(token string) (s Style, ok bool) {
	s = Style(token)
	if _, ok = descriptions[s]; !ok {
		return Original, false
	}
	return s, true
}

// Description returns a short human readable summary of s.
func (s Style) Description() string {
	return descriptions[s]
}

// String returns the token of s.
func (s Style) String() string {
	return string(s)
}
