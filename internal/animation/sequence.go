// Package animation models SmartPad animations: ordered 64-pad color
// frames, the edit and playback cursors over them, and the playback state
// machine stepped by an external timer.
package animation

import "smartpad/internal/palette"

const (
	// DefaultDelayMS is the frame delay for a new sequence (5 FPS).
	DefaultDelayMS = 200
	// MinDelayMS is the fastest allowed frame delay (50 FPS).
	MinDelayMS = 20
	// MaxFrames is the hard cap on frames per animation.
	MaxFrames = 999
)

// DefaultName is the name given to a freshly created sequence.
const DefaultName = "New Animation"

// PlayState is the playback state of a sequence.
type PlayState uint8

const (
	Stopped PlayState = iota
	Playing
	Paused
)

// String implements fmt.Stringer.
func (s PlayState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Hooks holds optional callbacks fired on sequence changes. Nil fields are
// skipped. This replaces UI-framework signals with plain functions; the
// presentation layer wires in whatever it needs.
type Hooks struct {
	// FramesChanged fires when frames are added, deleted or reordered.
	FramesChanged func()
	// FrameContentUpdated fires with the index of a frame whose pad
	// colors changed.
	FrameContentUpdated func(index int)
	// EditCursorChanged fires with the new edit index, -1 for none.
	EditCursorChanged func(index int)
	// PropertiesChanged fires when name, delay or loop change.
	PropertiesChanged func()
	// PlaybackStateChanged fires with true while playing, false on pause
	// or stop.
	PlaybackStateChanged func(playing bool)
}

// Sequence owns an animation: its frames, properties, cursors and playback
// state. All methods must be called from a single goroutine; the sequence
// performs no locking and no scheduling of its own.
type Sequence struct {
	name    string
	delayMS int
	loop    bool
	frames  []*Frame

	editIndex int
	state     PlayState
	playIndex int

	path     string
	modified bool
	hooks    Hooks
}

// NewSequence creates an empty sequence with default properties.
func NewSequence(name string) *Sequence {
	if name == "" {
		name = DefaultName
	}
	return &Sequence{
		name:      name,
		delayMS:   DefaultDelayMS,
		loop:      true,
		editIndex: -1,
	}
}

// SetHooks registers change callbacks. Passing the zero value detaches all
// observers.
func (s *Sequence) SetHooks(h Hooks) {
	s.hooks = h
}

// Name returns the animation name.
func (s *Sequence) Name() string { return s.name }

// DelayMS returns the per-frame delay in milliseconds.
func (s *Sequence) DelayMS() int { return s.delayMS }

// Loop reports whether playback wraps at the final frame.
func (s *Sequence) Loop() bool { return s.loop }

// FrameCount returns the number of frames.
func (s *Sequence) FrameCount() int { return len(s.frames) }

// Modified reports whether the sequence has unsaved changes.
func (s *Sequence) Modified() bool { return s.modified }

// Path returns the file the sequence was last loaded from or saved to,
// empty for an unsaved sequence.
func (s *Sequence) Path() string { return s.path }

// State returns the current playback state.
func (s *Sequence) State() PlayState { return s.state }

// PlayIndex returns the playback cursor.
func (s *Sequence) PlayIndex() int { return s.playIndex }

// EditIndex returns the edit cursor, -1 when no frame is selected.
func (s *Sequence) EditIndex() int { return s.editIndex }

// Frame returns the frame at index i, or nil when i is out of range. The
// returned frame is owned by the sequence; callers that keep it must Clone.
func (s *Sequence) Frame(i int) *Frame {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// EditFrame returns the frame under the edit cursor, or nil.
func (s *Sequence) EditFrame() *Frame {
	return s.Frame(s.editIndex)
}

func (s *Sequence) markModified() {
	s.modified = true
}

// SetEditIndex moves the edit cursor. An out-of-range index selects frame 0
// when frames exist; with no frames the cursor becomes -1.
func (s *Sequence) SetEditIndex(i int) {
	target := -1
	switch {
	case len(s.frames) == 0:
		target = -1
	case i >= 0 && i < len(s.frames):
		target = i
	default:
		target = 0
	}
	if s.editIndex != target {
		s.editIndex = target
		if s.hooks.EditCursorChanged != nil {
			s.hooks.EditCursorChanged(target)
		}
	}
}

// UpdatePad sets one pad of the current edit frame by color name. It
// returns false when no frame is selected. The write is skipped, along with
// its change notification, when the resolved color already matches; rapid
// repeated paints must not generate redundant device traffic.
func (s *Sequence) UpdatePad(pad int, colorName string) bool {
	frame := s.EditFrame()
	if frame == nil {
		return false
	}
	old, err := frame.At(pad)
	if err != nil {
		return true
	}
	next := palette.Normalize(colorName)
	if old != next {
		frame.Set(pad, next)
		if s.hooks.FrameContentUpdated != nil {
			s.hooks.FrameContentUpdated(s.editIndex)
		}
		s.markModified()
	}
	return true
}

// addFrame inserts the (already owned) frame and returns its index, or -1
// at capacity. at < 0 or past the end appends.
func (s *Sequence) addFrame(f *Frame, at int) int {
	if len(s.frames) >= MaxFrames {
		return -1
	}
	var idx int
	if at < 0 || at > len(s.frames) {
		s.frames = append(s.frames, f)
		idx = len(s.frames) - 1
	} else {
		s.frames = append(s.frames, nil)
		copy(s.frames[at+1:], s.frames[at:])
		s.frames[at] = f
		idx = at
	}
	s.SetEditIndex(idx)
	if s.hooks.FramesChanged != nil {
		s.hooks.FramesChanged()
	}
	s.markModified()
	return idx
}

// AddBlankFrame inserts an all-Off frame at the given index (or appends
// when at is -1 or out of bounds) and selects it. Returns the new index, or
// -1 when the sequence already holds MaxFrames frames.
func (s *Sequence) AddBlankFrame(at int) int {
	return s.addFrame(NewFrame(), at)
}

// AddFrameFromNames inserts a frame built from 64 color names. A malformed
// list produces a blank frame. Returns the new index or -1 at capacity.
func (s *Sequence) AddFrameFromNames(names []string, at int) int {
	return s.addFrame(FrameFromNames(names), at)
}

// AddFrameCopy inserts an independent copy of the given frame. Returns the
// new index or -1 at capacity.
func (s *Sequence) AddFrameCopy(f *Frame, at int) int {
	if f == nil {
		return s.addFrame(NewFrame(), at)
	}
	return s.addFrame(f.Clone(), at)
}

// DeleteFrame removes the frame at index i, returning false for an invalid
// index. Deleting the selected frame re-selects the frame before it when
// possible, else the one after, else clears the cursor.
func (s *Sequence) DeleteFrame(i int) bool {
	if i < 0 || i >= len(s.frames) {
		return false
	}
	s.frames = append(s.frames[:i], s.frames[i+1:]...)

	newEdit := s.editIndex
	switch {
	case len(s.frames) == 0:
		newEdit = -1
	case s.editIndex == i:
		// Prefer the frame before the deleted one, else the one now
		// occupying its slot.
		if i > 0 {
			newEdit = i - 1
		} else {
			newEdit = 0
		}
	case s.editIndex > i:
		newEdit = s.editIndex - 1
	}
	s.SetEditIndex(newEdit)
	if s.hooks.FramesChanged != nil {
		s.hooks.FramesChanged()
	}
	s.markModified()
	return true
}

// DuplicateFrame copies the frame at index i and inserts the copy right
// after it. Returns the new index, or -1 for an invalid source index or a
// full sequence.
func (s *Sequence) DuplicateFrame(i int) int {
	if len(s.frames) >= MaxFrames {
		return -1
	}
	src := s.Frame(i)
	if src == nil {
		return -1
	}
	return s.AddFrameCopy(src, i+1)
}

// SetName renames the animation.
func (s *Sequence) SetName(name string) {
	if s.name != name {
		s.name = name
		if s.hooks.PropertiesChanged != nil {
			s.hooks.PropertiesChanged()
		}
		s.markModified()
	}
}

// SetDelayMS sets the per-frame delay, clamped to MinDelayMS. The playback
// driver picks the new value up on its next tick.
func (s *Sequence) SetDelayMS(delayMS int) {
	if delayMS < MinDelayMS {
		delayMS = MinDelayMS
	}
	if s.delayMS != delayMS {
		s.delayMS = delayMS
		if s.hooks.PropertiesChanged != nil {
			s.hooks.PropertiesChanged()
		}
		s.markModified()
	}
}

// SetLoop sets whether playback wraps at the final frame.
func (s *Sequence) SetLoop(loop bool) {
	if s.loop != loop {
		s.loop = loop
		if s.hooks.PropertiesChanged != nil {
			s.hooks.PropertiesChanged()
		}
		s.markModified()
	}
}

// Start begins playback. from selects the starting frame; pass -1 to start
// from the edit cursor (or frame 0 when nothing is selected). Returns false
// when the sequence has no frames.
func (s *Sequence) Start(from int) bool {
	if len(s.frames) == 0 {
		if s.hooks.PlaybackStateChanged != nil {
			s.hooks.PlaybackStateChanged(false)
		}
		return false
	}
	s.state = Playing
	switch {
	case from >= 0 && from < len(s.frames):
		s.playIndex = from
	case s.editIndex != -1:
		s.playIndex = s.editIndex
	default:
		s.playIndex = 0
	}
	if s.hooks.PlaybackStateChanged != nil {
		s.hooks.PlaybackStateChanged(true)
	}
	return true
}

// Pause suspends playback in place. Only Playing pauses; any other state is
// untouched.
func (s *Sequence) Pause() {
	if s.state == Playing {
		s.state = Paused
		if s.hooks.PlaybackStateChanged != nil {
			s.hooks.PlaybackStateChanged(false)
		}
	}
}

// Stop halts playback and resets the playback cursor to 0. Calling Stop
// when already stopped at frame 0 does nothing, so observers see no
// redundant notification.
func (s *Sequence) Stop() {
	if s.state == Stopped && s.playIndex == 0 {
		return
	}
	s.state = Stopped
	s.playIndex = 0
	if s.hooks.PlaybackStateChanged != nil {
		s.hooks.PlaybackStateChanged(false)
	}
}

// Advance is the single stepping primitive, called once per driver tick.
// It returns the colors of the frame under the playback cursor and moves
// the cursor forward; at the end of a non-looping sequence the state flips
// to Stopped but the final frame's colors are still returned, so the device
// displays the last frame for one full tick before the following call
// returns nil. When not playing (or with no frames) it stops playback and
// returns nil.
func (s *Sequence) Advance() []palette.Color {
	if s.state != Playing || len(s.frames) == 0 {
		s.Stop()
		return nil
	}
	frame := s.Frame(s.playIndex)
	if frame == nil {
		s.Stop()
		return nil
	}
	colors := frame.Colors()

	s.playIndex++
	if s.playIndex >= len(s.frames) {
		if s.loop {
			s.playIndex = 0
		} else {
			// Stop quietly; the next Advance resets the cursor and
			// notifies observers.
			s.state = Stopped
		}
	}
	return colors
}

// Reset replaces the sequence contents with a new, empty animation.
func (s *Sequence) Reset(name string) {
	if name == "" {
		name = DefaultName
	}
	s.name = name
	s.delayMS = DefaultDelayMS
	s.loop = true
	s.frames = nil
	s.editIndex = -1
	s.state = Stopped
	s.playIndex = 0
	s.path = ""
	s.modified = false

	if s.hooks.FramesChanged != nil {
		s.hooks.FramesChanged()
	}
	if s.hooks.PropertiesChanged != nil {
		s.hooks.PropertiesChanged()
	}
	if s.hooks.EditCursorChanged != nil {
		s.hooks.EditCursorChanged(s.editIndex)
	}
}
