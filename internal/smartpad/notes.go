// Package smartpad speaks the MidiPlus SmartPad's wire protocol: the fixed
// pad-to-note mapping, the color-to-velocity table, and the off-before-on
// message sequencing the hardware requires. The Encoder is pure; the
// Session owns the single open MIDI output.
package smartpad

import (
	"errors"

	"smartpad/internal/palette"
)

// Channel is the MIDI channel the SmartPad listens on.
const Channel = 0

// PadCount is the number of grid pads.
const PadCount = 64

var (
	// ErrInvalidPadIndex reports a pad index outside [0, PadCount).
	ErrInvalidPadIndex = errors.New("invalid pad index")
	// ErrInvalidGridLength reports a grid that is not exactly 64 colors.
	ErrInvalidGridLength = errors.New("grid must contain 64 colors")
	// ErrNotConnected reports an operation that needs an open port.
	ErrNotConnected = errors.New("not connected")
	// ErrPortNotFound reports that no usable MIDI output port was found.
	ErrPortNotFound = errors.New("midi output port not found")
	// ErrConnectionLost reports a send failure that means the port is gone.
	ErrConnectionLost = errors.New("midi connection lost")
)

// NoteForPad maps a grid index to the SmartPad's note number. Each grid row
// of 8 pads occupies a block of 16 note numbers, so row r col c is note
// r*16 + c. The mapping is a fixed property of the hardware.
func NoteForPad(pad int) uint8 {
	return uint8((pad/8)*16 + pad%8)
}

// velocities maps each palette color to the note-on velocity that selects
// it on the device. Indexed by palette.Color.
var velocities = [...]uint8{
	palette.Off:       0,
	palette.White:     1,
	palette.Yellow:    17,
	palette.LightBlue: 33,
	palette.Purple:    49,
	palette.DarkBlue:  65,
	palette.Green:     81,
	palette.Red:       97,
}

// VelocityFor returns the note-on velocity encoding the given color.
func VelocityFor(c palette.Color) uint8 {
	if int(c) < len(velocities) {
		return velocities[c]
	}
	return 0
}
