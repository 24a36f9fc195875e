package layouts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpad/internal/animation"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func solidLayout(color string) []string {
	names := make([]string, animation.PadCount)
	for i := range names {
		names[i] = color
	}
	return names
}

func TestKey(t *testing.T) {
	cases := map[string]string{
		"My Layout!":      "my_layout",
		"  spaced  out  ": "spaced_out",
		"dash-ed --- up":  "dash_ed_up",
		"Simple":          "simple",
		"***":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Key(in), "Key(%q)", in)
	}
}

func TestSaveAndLoadByDisplayNameVariant(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("My Layout!", solidLayout("RED")))

	// The punctuation/case variant must find the same file.
	got, err := s.Load("my layout!")
	require.NoError(t, err)
	assert.Equal(t, solidLayout("RED"), got)

	// The sanitized key works too.
	got, err = s.Load("my_layout")
	require.NoError(t, err)
	assert.Equal(t, solidLayout("RED"), got)
}

func TestSaveCanonicalizesColors(t *testing.T) {
	s := newTestStore(t)
	data := solidLayout("green")
	data[1] = "NOT_A_COLOR"
	require.NoError(t, s.Save("Mixed", data))

	got, err := s.Load("Mixed")
	require.NoError(t, err)
	assert.Equal(t, "GREEN", got[0])
	assert.Equal(t, "OFF", got[1], "unknown colors are stored as OFF")
}

func TestSaveRejectsBadInput(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save("", solidLayout("RED")), "empty name")
	assert.Error(t, s.Save("   ", solidLayout("RED")), "blank name")
	assert.Error(t, s.Save("***", solidLayout("RED")), "name that sanitizes to nothing")
	assert.Error(t, s.Save("ok", []string{"RED"}), "wrong length")
}

func TestLoadMissingLayout(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("Doomed", solidLayout("RED")))
	require.NoError(t, s.Delete("doomed"))

	_, err := s.Load("Doomed")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Delete("Doomed"), "deleting a missing layout succeeds")
}

func TestNamesSortedAndResilient(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("Zebra", solidLayout("RED")))
	require.NoError(t, s.Save("Apple", solidLayout("GREEN")))

	// A corrupt file must not hide the healthy layouts.
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "broken.json"),
		[]byte("{not json"), 0644))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Zebra"}, names)
}

func TestNamesFallsBackToTitleCasedKey(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "no_display_name.json"),
		[]byte(`{"layout_data": []}`), 0644))

	names, err := s.Names()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "No Display Name", names[0])
}

func TestLoadRejectsWrongLength(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "short.json"),
		[]byte(`{"display_name": "Short", "layout_data": ["RED","GREEN"]}`), 0644))

	_, err := s.Load("Short")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
