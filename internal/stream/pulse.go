package stream

import (
	"math"
	"time"

	"github.com/fogleman/ease"
)

// Renderer produces the frame for a given point in animation runtime.
type Renderer interface {
	RenderFrame(runtime time.Duration) *Frame
}

// GradientPulse scrolls a gradient along the strip while a brightness
// pulse, shaped by an eased look-up table, breathes over it.
type GradientPulse struct {
	gradient GradientTable
	pixels   int
	period   time.Duration
	lut      []float64
}

// NewGradientPulse creates a renderer over gradient with the given
// strip length and pulse period.
func NewGradientPulse(gradient GradientTable, pixels int, period time.Duration) *GradientPulse {
	if pixels <= 0 {
		pixels = DefaultPixels
	}
	if period <= 0 {
		period = 4 * time.Second
	}
	return &GradientPulse{
		gradient: gradient,
		pixels:   pixels,
		period:   period,
		lut:      pulseLut(pixels),
	}
}

// RenderFrame renders the strip for the given runtime offset.
func (p *GradientPulse) RenderFrame(runtime time.Duration) *Frame {
	f := NewFrame(p.pixels)
	phase := math.Mod(runtime.Seconds()/p.period.Seconds(), 1.0)
	for i := 0; i < p.pixels; i++ {
		pos := math.Mod(float64(i)/float64(p.pixels)+phase, 1.0)
		lum := 0.05 + 0.45*p.lut[(i+int(phase*float64(p.pixels)))%p.pixels]
		f.Set(i, p.gradient.Color(pos, 0.6, lum))
	}
	return f
}

// pulseLut is a symmetric eased ramp: dark at the strip ends, bright in
// the middle.
func pulseLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
