// Package raster provides the in-memory pixel buffers and numerical
// primitives shared by every style filter.
//
// # Buffers
//
// Image is the 8-bit raster exchanged with the codec. It always holds three
// channels in blue, green, red order. Float is the working representation
// used inside filters: float64 samples with one or three channels and no
// implicit range. Filters convert Image to Float once on entry and back once
// on exit through Float.Image, which clamps to [0,255] and rounds.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Borders
//
// Neighbourhood operations sample outside the frame through a Border mode.
// BorderReflect101 mirrors without repeating the edge sample (dcb|abcd|cba)
// and is the default for blurs and convolutions. BorderReplicate repeats
// the edge sample (aaa|abcd|ddd) and is used for local means.
//
// # Thread Safety
//
// Buffers carry no locks. Every primitive allocates its result and never
// writes to its arguments unless the method name says so (ClampInPlace,
// Set), so independent calls can run concurrently.
package raster
