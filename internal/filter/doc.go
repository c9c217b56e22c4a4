// Package filter implements the photo styles as pixel-level pipelines over
// raster buffers.
//
// Every filter takes a *raster.Image, never modifies it, and returns a new
// image of the same width and height. Internally each filter converts the
// input to a raster.Float once, runs its whole pipeline in floating point,
// and converts back to 8-bit once on return.
//
// # Filters
//
// Colour and tone:
//   - Grayscale: BT.601 luma replicated to three channels
//   - Sepia: fixed 3×3 colour matrix plus film scratches
//   - Summer, Winter: shifts along the L*a*b* axes
//   - Cyberpunk: global contrast then per-channel tint
//
// Structural:
//   - Sketch: dodge blend, sharpen and gamma over the luma
//   - Cartoon: adaptive-threshold ink lines over bilateral-smoothed colour
//   - Watercolor: edge-preserving stylization
//   - ColorSketch: colour pencil rendering
//
// Composite:
//   - Vintage: sepia, vignette and film grain
//
// # Tunables
//
// Each filter's constants live in a parameter struct with a Default value
// (DefaultSketch, DefaultCartoon, ...). The exported filters use the
// defaults; the ...With variants accept explicit parameters.
//
// # Randomness
//
// Sepia and Vintage draw from a Rand. Production callers pass NewRand();
// tests pass a seeded *math/rand.Rand and assert structure rather than
// exact pixels.
package filter
