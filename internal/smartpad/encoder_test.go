package smartpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpad/internal/palette"
)

// event is a decoded step for assertions.
type event struct {
	on  bool
	key uint8
	vel uint8
}

func decodeSteps(t *testing.T, steps []Step) []event {
	t.Helper()
	out := make([]event, 0, len(steps))
	for i, s := range steps {
		var ch, key, vel uint8
		switch {
		case s.Msg.GetNoteOff(&ch, &key, &vel):
			out = append(out, event{on: false, key: key})
		case s.Msg.GetNoteOn(&ch, &key, &vel):
			out = append(out, event{on: true, key: key, vel: vel})
		default:
			t.Fatalf("step %d is neither note-on nor note-off: %v", i, s.Msg)
		}
		require.Equal(t, uint8(Channel), ch, "step %d channel", i)
	}
	return out
}

func TestNoteForPad(t *testing.T) {
	cases := map[int]uint8{
		0:  0,
		7:  7,
		8:  16,
		15: 23,
		16: 32,
		56: 112,
		63: 119,
	}
	for pad, want := range cases {
		assert.Equal(t, want, NoteForPad(pad), "pad %d", pad)
	}
}

func TestVelocityTable(t *testing.T) {
	want := map[palette.Color]uint8{
		palette.Off:       0,
		palette.White:     1,
		palette.Yellow:    17,
		palette.LightBlue: 33,
		palette.Purple:    49,
		palette.DarkBlue:  65,
		palette.Green:     81,
		palette.Red:       97,
	}
	for c, vel := range want {
		assert.Equal(t, vel, VelocityFor(c), "color %s", c)
	}
}

func TestEncodeSingleOffBeforeOn(t *testing.T) {
	e := NewEncoder()
	for _, c := range palette.All() {
		for _, pad := range []int{0, 31, 63} {
			steps, err := e.EncodeSingle(pad, c)
			require.NoError(t, err)
			events := decodeSteps(t, steps)

			require.NotEmpty(t, events)
			assert.False(t, events[0].on, "first message must be a note-off")
			assert.Equal(t, NoteForPad(pad), events[0].key)

			if c == palette.Off {
				assert.Len(t, events, 1, "Off needs no note-on")
				assert.Zero(t, steps[0].Pause)
			} else {
				require.Len(t, events, 2)
				assert.True(t, events[1].on)
				assert.Equal(t, NoteForPad(pad), events[1].key)
				assert.Equal(t, VelocityFor(c), events[1].vel)
				assert.Equal(t, e.InterDelay, steps[0].Pause,
					"off and on must be separated by the inter-command delay")
			}
		}
	}
}

func TestEncodeSingleInvalidIndex(t *testing.T) {
	e := NewEncoder()
	for _, pad := range []int{-1, 64, 100} {
		_, err := e.EncodeSingle(pad, palette.Red)
		assert.ErrorIs(t, err, ErrInvalidPadIndex, "pad %d", pad)
	}
}

func TestEncodeGridAllOff(t *testing.T) {
	e := NewEncoder()
	steps, err := e.EncodeGrid(make([]palette.Color, PadCount))
	require.NoError(t, err)

	events := decodeSteps(t, steps)
	require.Len(t, events, PadCount, "64 offs and no ons")
	for i, ev := range events {
		assert.False(t, ev.on, "event %d", i)
		assert.Equal(t, NoteForPad(i), ev.key, "offs go out in address order")
	}
}

func TestEncodeGridFullColor(t *testing.T) {
	e := NewEncoder()
	colors := make([]palette.Color, PadCount)
	for i := range colors {
		colors[i] = palette.Green
	}
	steps, err := e.EncodeGrid(colors)
	require.NoError(t, err)

	events := decodeSteps(t, steps)
	require.Len(t, events, 2*PadCount)
	for i := 0; i < PadCount; i++ {
		assert.False(t, events[i].on, "first batch is all offs")
		assert.Equal(t, NoteForPad(i), events[i].key)
	}
	for i := 0; i < PadCount; i++ {
		ev := events[PadCount+i]
		assert.True(t, ev.on, "second batch is all ons")
		assert.Equal(t, NoteForPad(i), ev.key)
		assert.Equal(t, VelocityFor(palette.Green), ev.vel)
	}
	assert.Equal(t, 2*e.InterDelay, steps[PadCount-1].Pause,
		"the gap sits between the off batch and the on batch")
}

func TestEncodeGridMixed(t *testing.T) {
	e := NewEncoder()
	colors := make([]palette.Color, PadCount)
	colors[3] = palette.Red
	colors[40] = palette.White

	steps, err := e.EncodeGrid(colors)
	require.NoError(t, err)
	events := decodeSteps(t, steps)
	require.Len(t, events, PadCount+2)

	ons := events[PadCount:]
	assert.Equal(t, NoteForPad(3), ons[0].key)
	assert.Equal(t, VelocityFor(palette.Red), ons[0].vel)
	assert.Equal(t, NoteForPad(40), ons[1].key)
	assert.Equal(t, VelocityFor(palette.White), ons[1].vel)
}

func TestEncodeGridInvalidLength(t *testing.T) {
	e := NewEncoder()
	for _, n := range []int{0, 63, 65} {
		_, err := e.EncodeGrid(make([]palette.Color, n))
		assert.ErrorIs(t, err, ErrInvalidGridLength, "length %d", n)
	}
}

func TestEncodeClear(t *testing.T) {
	e := NewEncoder()
	events := decodeSteps(t, e.EncodeClear())
	require.Len(t, events, PadCount)
	for i, ev := range events {
		assert.False(t, ev.on)
		assert.Equal(t, NoteForPad(i), ev.key)
	}
}
