package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable is a hue look-up table indexed by position in [0,1].
type GradientTable []struct {
	Hue float64
	Pos float64
}

// Rainbow is a full-spectrum gradient with perceptually even spacing.
var Rainbow = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // pink
	{87.0, 0.14},  // red
	{88.0, 0.28},  // orange
	{98.0, 0.42},  // yellow
	{180.0, 0.56}, // green
	{190.0, 0.70}, // turquoise
	{320.0, 0.84}, // blue
	{328.0, 0.91}, // violet
	{360.0, 1.0},  // pink wrap
}

// Color returns the gradient colour at position t with the given
// chroma and luminance.
func (g GradientTable) Color(t, c, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, c, l)
		}
	}
	// At or past the last keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, c, l)
}
