package smartpad

import (
	"time"

	"gitlab.com/gomidi/midi/v2"

	"smartpad/internal/palette"
)

// DefaultInterDelay is the pause between a pad's note-off and the note-on
// that follows it. The hardware latches colors unreliably when the two
// arrive back to back.
const DefaultInterDelay = time.Millisecond

// Step is one encoded transport message plus the pause the sender must
// observe after it before the next message goes out.
type Step struct {
	Msg   midi.Message
	Pause time.Duration
}

// Encoder translates pad colors into ordered MIDI message sequences. It is
// stateless apart from the configured inter-command delay and safe to share.
type Encoder struct {
	// InterDelay separates a note-off from the note-on for the same pad.
	InterDelay time.Duration
}

// NewEncoder returns an encoder with the default inter-command delay.
func NewEncoder() *Encoder {
	return &Encoder{InterDelay: DefaultInterDelay}
}

// EncodeSingle produces the messages that set one pad to the given color.
// A note-off always comes first; the device shows stale colors if a note-on
// arrives for a pad that is still lit. For Off the note-off alone suffices.
func (e *Encoder) EncodeSingle(pad int, c palette.Color) ([]Step, error) {
	if pad < 0 || pad >= PadCount {
		return nil, ErrInvalidPadIndex
	}
	note := NoteForPad(pad)
	steps := []Step{{Msg: midi.NoteOff(Channel, note)}}
	if c != palette.Off {
		steps[0].Pause = e.InterDelay
		steps = append(steps, Step{Msg: midi.NoteOn(Channel, note, VelocityFor(c))})
	}
	return steps, nil
}

// EncodeGrid produces a full 64-pad refresh: note-offs for every pad in
// address order, a short gap, then note-ons in address order for each pad
// that is not Off. Batching all offs before all ons trades a brief all-dark
// flash for far less per-pad flicker than interleaved off/on pairs.
func (e *Encoder) EncodeGrid(colors []palette.Color) ([]Step, error) {
	if len(colors) != PadCount {
		return nil, ErrInvalidGridLength
	}
	steps := make([]Step, 0, PadCount*2)
	for pad := 0; pad < PadCount; pad++ {
		steps = append(steps, Step{Msg: midi.NoteOff(Channel, NoteForPad(pad))})
	}
	steps[len(steps)-1].Pause = 2 * e.InterDelay

	for pad := 0; pad < PadCount; pad++ {
		if colors[pad] == palette.Off {
			continue
		}
		steps = append(steps, Step{
			Msg: midi.NoteOn(Channel, NoteForPad(pad), VelocityFor(colors[pad])),
		})
	}
	return steps, nil
}

// EncodeClear produces note-offs for all 64 pads in address order.
func (e *Encoder) EncodeClear() []Step {
	steps := make([]Step, PadCount)
	for pad := 0; pad < PadCount; pad++ {
		steps[pad] = Step{Msg: midi.NoteOff(Channel, NoteForPad(pad))}
	}
	return steps
}
