// Package palette defines the closed color set supported by the SmartPad's
// pads. The device has no free RGB control; every pad shows one of seven
// fixed colors or is off.
package palette

import "strings"

// Color is one entry of the SmartPad palette.
type Color uint8

const (
	Off Color = iota
	White
	Yellow
	LightBlue
	Purple
	DarkBlue
	Green
	Red

	numColors
)

// names holds the canonical (uppercase) name for each color. These exact
// strings appear in animation and layout files and must not change.
var names = [numColors]string{
	Off:       "OFF",
	White:     "WHITE",
	Yellow:    "YELLOW",
	LightBlue: "LIGHTBLUE",
	Purple:    "PURPLE",
	DarkBlue:  "DARKBLUE",
	Green:     "GREEN",
	Red:       "RED",
}

// byName is the reverse lookup, keyed by canonical name.
var byName = func() map[string]Color {
	m := make(map[string]Color, numColors)
	for c, n := range names {
		m[n] = Color(c)
	}
	return m
}()

// Name returns the canonical uppercase name of the color.
func (c Color) Name() string {
	if c < numColors {
		return names[c]
	}
	return names[Off]
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Name()
}

// Normalize resolves an arbitrary color name, case-insensitively, to a
// palette Color. Unknown names resolve to Off rather than an error; files
// written by lenient producers rely on this.
func Normalize(name string) Color {
	if c, ok := byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return c
	}
	return Off
}

// All returns every palette color in declaration order, Off first.
func All() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler using the canonical name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Normalize; it never
// fails, so decoding a color list cannot abort on a bad name.
func (c *Color) UnmarshalText(text []byte) error {
	*c = Normalize(string(text))
	return nil
}

// rgba holds display colors for presentation layers (grid previews,
// timeline thumbnails). The device itself ignores these.
var rgba = [numColors][3]uint8{
	Off:       {0x20, 0x20, 0x20},
	White:     {0xFF, 0xFF, 0xFF},
	Yellow:    {0xFF, 0xFF, 0x00},
	LightBlue: {0xAD, 0xD8, 0xE6},
	Purple:    {0x80, 0x00, 0x80},
	DarkBlue:  {0x00, 0x00, 0x8B},
	Green:     {0x00, 0xFF, 0x00},
	Red:       {0xFF, 0x00, 0x00},
}

// RGBA returns a preview color for UI rendering. Off renders as dark grey
// so an unlit pad is still visible on screen.
func (c Color) RGBA() (r, g, b, a uint8) {
	v := rgba[Off]
	if c < numColors {
		v = rgba[c]
	}
	return v[0], v[1], v[2], 0xFF
}
