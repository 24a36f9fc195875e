package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpad/internal/palette"
)

func TestNewFrameIsAllOff(t *testing.T) {
	f := NewFrame()
	for i := 0; i < PadCount; i++ {
		c, err := f.At(i)
		require.NoError(t, err)
		assert.Equal(t, palette.Off, c)
	}
}

func TestFrameFromNames(t *testing.T) {
	names := make([]string, PadCount)
	for i := range names {
		names[i] = "red"
	}
	names[3] = "NOT_A_COLOR"

	f := FrameFromNames(names)
	c, err := f.At(0)
	require.NoError(t, err)
	assert.Equal(t, palette.Red, c)

	c, err = f.At(3)
	require.NoError(t, err)
	assert.Equal(t, palette.Off, c, "invalid names resolve to Off")
}

func TestFrameFromNamesWrongLengthFallsBackToBlank(t *testing.T) {
	for _, n := range []int{0, 1, 63, 65} {
		names := make([]string, n)
		for i := range names {
			names[i] = "GREEN"
		}
		f := FrameFromNames(names)
		assert.True(t, f.Equal(NewFrame()), "length %d should produce a blank frame", n)
	}
}

func TestFrameAtOutOfRange(t *testing.T) {
	f := NewFrame()
	for _, i := range []int{-1, 64, 1000} {
		_, err := f.At(i)
		assert.ErrorIs(t, err, ErrPadIndex, "index %d", i)
	}
}

func TestFrameSetOutOfRangeIgnored(t *testing.T) {
	f := NewFrame()
	f.Set(-1, palette.Red)
	f.Set(64, palette.Red)
	assert.True(t, f.Equal(NewFrame()))
}

func TestFrameCloneIsIndependent(t *testing.T) {
	f := NewFrame()
	f.Set(10, palette.Green)

	cp := f.Clone()
	require.True(t, f.Equal(cp))

	cp.Set(10, palette.Red)
	c, _ := f.At(10)
	assert.Equal(t, palette.Green, c, "mutating the clone must not touch the original")
	assert.False(t, f.Equal(cp))
}

func TestFrameNamesAreCanonical(t *testing.T) {
	f := NewFrame()
	f.SetName(0, "red")
	names := f.Names()
	require.Len(t, names, PadCount)
	assert.Equal(t, "RED", names[0])
	assert.Equal(t, "OFF", names[1])
}
