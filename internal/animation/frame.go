package animation

import (
	"errors"

	"smartpad/internal/palette"
)

// PadCount is the number of pads on the SmartPad's grid, addressed 0-63 in
// row-major order (index = row*8 + col).
const PadCount = 64

// ErrPadIndex reports a pad index outside [0, PadCount).
var ErrPadIndex = errors.New("pad index out of range")

// Frame is a complete 64-color snapshot of the grid. The zero value is a
// valid all-Off frame.
type Frame struct {
	cells [PadCount]palette.Color
}

// NewFrame returns a blank frame with every pad Off.
func NewFrame() *Frame {
	return &Frame{}
}

// FrameFromNames builds a frame from 64 color names, normalizing each one.
// Anything that is not exactly 64 entries is discarded and a blank frame is
// returned instead, matching the lenient file format.
func FrameFromNames(names []string) *Frame {
	f := &Frame{}
	if len(names) != PadCount {
		return f
	}
	for i, n := range names {
		f.cells[i] = palette.Normalize(n)
	}
	return f
}

// FrameFromColors builds a frame from 64 colors, falling back to a blank
// frame on any other length.
func FrameFromColors(colors []palette.Color) *Frame {
	f := &Frame{}
	if len(colors) != PadCount {
		return f
	}
	copy(f.cells[:], colors)
	return f
}

// Set assigns a color to the pad at index i. Out-of-range indices are
// ignored.
func (f *Frame) Set(i int, c palette.Color) {
	if i >= 0 && i < PadCount {
		f.cells[i] = c
	}
}

// SetName assigns a color by name, resolving unknown names to Off.
func (f *Frame) SetName(i int, name string) {
	f.Set(i, palette.Normalize(name))
}

// At returns the color of the pad at index i, or ErrPadIndex when i is
// outside the grid.
func (f *Frame) At(i int) (palette.Color, error) {
	if i < 0 || i >= PadCount {
		return palette.Off, ErrPadIndex
	}
	return f.cells[i], nil
}

// Colors returns a copy of all 64 pad colors in grid order.
func (f *Frame) Colors() []palette.Color {
	out := make([]palette.Color, PadCount)
	copy(out, f.cells[:])
	return out
}

// Names returns the canonical color names of all 64 pads, the form used in
// animation and layout files.
func (f *Frame) Names() []string {
	out := make([]string, PadCount)
	for i, c := range f.cells {
		out[i] = c.Name()
	}
	return out
}

// Equal reports whether two frames hold identical colors.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	return f.cells == other.cells
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	cp := *f
	return &cp
}
