package filter

// SepiaMatrix maps a normalised (B, G, R) vector to the sepia (B, G, R)
// vector, one row per output channel.
var SepiaMatrix = [3][3]float64{
	{0.272, 0.534, 0.131},
	{0.349, 0.686, 0.168},
	{0.393, 0.769, 0.189},
}

// ScratchParams controls the film scratch overlay.
type ScratchParams struct {
	// MinLines and MaxLines bound the segment count, [MinLines, MaxLines).
	MinLines int
	MaxLines int
	// MinLength is the minimum vertical extent of a segment in pixels.
	MinLength int
	// Drift is the largest horizontal offset between segment ends.
	Drift int
	// Opacity is the blend weight of the white overlay.
	Opacity float64
}

// DefaultScratch is used by Sepia and Vintage.
var DefaultScratch = ScratchParams{
	MinLines:  5,
	MaxLines:  15,
	MinLength: 10,
	Drift:     2,
	Opacity:   0.15,
}

// LabShift moves colours along the 8-bit L*a*b* axes.
type LabShift struct {
	LScale float64
	A      float64 // red-green axis, positive is warmer
	B      float64 // blue-yellow axis, positive is warmer
}

var (
	// SummerShift warms the image and lifts lightness.
	SummerShift = LabShift{LScale: 1.05, A: 10, B: 10}

	// WinterShift cools the image towards blue.
	WinterShift = LabShift{LScale: 1, A: -3, B: -15}
)

// CyberpunkParams are the channel gains of the Cyberpunk filter.
type CyberpunkParams struct {
	Contrast float64
	Blue     float64
	Green    float64
	Red      float64
}

// DefaultCyberpunk boosts blue and red and suppresses green.
var DefaultCyberpunk = CyberpunkParams{
	Contrast: 1.2,
	Blue:     1.3,
	Green:    0.8,
	Red:      1.2,
}

// SketchParams controls the pencil sketch pipeline.
type SketchParams struct {
	BlurKernel int
	DodgeScale float64
	Sharpen    [3][3]float64
	Gamma      float64
}

// DefaultSketch matches the tuned sketch look.
var DefaultSketch = SketchParams{
	BlurKernel: 25,
	DodgeScale: 256,
	Sharpen: [3][3]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	},
	Gamma: 1.8,
}

// CartoonParams controls edge extraction and colour smoothing.
type CartoonParams struct {
	MedianKernel        int
	ThresholdBlock      int
	ThresholdOffset     float64
	Downscale           int
	BilateralDiameter   int
	BilateralSigmaColor float64
	BilateralSigmaSpace float64
	BilateralPasses     int
}

// DefaultCartoon is used by Cartoon.
var DefaultCartoon = CartoonParams{
	MedianKernel:        5,
	ThresholdBlock:      9,
	ThresholdOffset:     9,
	Downscale:           2,
	BilateralDiameter:   9,
	BilateralSigmaColor: 75,
	BilateralSigmaSpace: 75,
	BilateralPasses:     5,
}

// StylizeParams are the domain transform extents for edge-preserving
// stylization. SigmaR is in normalised [0,1] intensity units.
type StylizeParams struct {
	SigmaS     float64
	SigmaR     float64
	Iterations int
}

// DefaultWatercolor is used by Watercolor.
var DefaultWatercolor = StylizeParams{SigmaS: 50, SigmaR: 0.45, Iterations: 3}

// PencilParams controls the colour pencil rendering.
type PencilParams struct {
	SigmaS      float64
	SigmaR      float64
	Iterations  int
	ShadeFactor float64 // 0 to 0.1, higher is brighter
}

// DefaultColorSketch is used by ColorSketch.
var DefaultColorSketch = PencilParams{SigmaS: 60, SigmaR: 0.07, Iterations: 3, ShadeFactor: 0.05}

// VintageParams controls the composite vintage look.
type VintageParams struct {
	Scratch    ScratchParams
	GrainSigma float64
}

// DefaultVintage is used by Vintage.
var DefaultVintage = VintageParams{Scratch: DefaultScratch, GrainSigma: 10}
