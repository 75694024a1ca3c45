// Package stream renders demo frames under animator control and ships
// them to an LED strip receiver over MQTT. It exists so the daemon has
// a visible payload: the animator decides when a frame fires, this
// package decides what the frame looks like and where it goes.
package stream

import (
	"encoding/binary"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPixels is the strip length used when the config leaves it unset.
const DefaultPixels = 150

// Frame is one strip of RGB pixels.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black frame of n pixels.
func NewFrame(n int) *Frame {
	if n <= 0 {
		n = DefaultPixels
	}
	return &Frame{pixels: make([]colorful.Color, n)}
}

// Len returns the pixel count.
func (f *Frame) Len() int { return len(f.pixels) }

// Set assigns pixel i; out-of-range indices are ignored.
func (f *Frame) Set(i int, c colorful.Color) {
	if i < 0 || i >= len(f.pixels) {
		return
	}
	f.pixels[i] = c
}

// At returns pixel i.
func (f *Frame) At(i int) colorful.Color { return f.pixels[i] }

// Blend merges f with f2 at transition point t in [0,1], interpolating
// per pixel in HCL space.
func (f *Frame) Blend(f2 *Frame, t float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := range f.pixels {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], t)
	}
	return out
}

// MarshalBinary encodes the frame for the wire: little-endian uint16
// pixel count followed by one RGB byte triple per pixel.
func (f *Frame) MarshalBinary() ([]byte, error) {
	if len(f.pixels) > 0xFFFF {
		return nil, fmt.Errorf("frame too large: %d pixels", len(f.pixels))
	}
	data := make([]byte, 2, len(f.pixels)*3+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}
	return data, nil
}
