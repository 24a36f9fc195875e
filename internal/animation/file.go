package animation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Document is the on-disk shape of an animation. Frames are lists of
// canonical color names so files stay readable and diffable.
type Document struct {
	Name         string     `json:"name"`
	FrameDelayMS int        `json:"frame_delay_ms"`
	Loop         bool       `json:"loop"`
	Frames       [][]string `json:"frames"`
}

// Document captures the sequence's persistent state.
func (s *Sequence) Document() Document {
	frames := make([][]string, len(s.frames))
	for i, f := range s.frames {
		frames[i] = f.Names()
	}
	return Document{
		Name:         s.name,
		FrameDelayMS: s.delayMS,
		Loop:         s.loop,
		Frames:       frames,
	}
}

// FromDocument builds a sequence from a decoded document. Frames beyond
// MaxFrames are dropped with a warning and any frame that is not exactly 64
// entries is skipped; unknown color names inside a valid frame become OFF.
// The loaded sequence selects frame 0 and is not marked modified.
func FromDocument(doc Document) *Sequence {
	s := NewSequence(doc.Name)
	if doc.Name == "" {
		s.name = "Untitled Animation"
	}
	s.delayMS = doc.FrameDelayMS
	if s.delayMS < MinDelayMS {
		s.delayMS = MinDelayMS
	}
	s.loop = doc.Loop

	for i, names := range doc.Frames {
		if i >= MaxFrames {
			log.Warn().
				Str("animation", s.name).
				Int("frames", len(doc.Frames)).
				Msgf("animation exceeds %d frames, truncating", MaxFrames)
			break
		}
		if len(names) != PadCount {
			log.Warn().
				Str("animation", s.name).
				Int("frame", i).
				Int("len", len(names)).
				Msg("skipping frame with wrong pad count")
			continue
		}
		s.frames = append(s.frames, FrameFromNames(names))
	}
	if len(s.frames) > 0 {
		s.editIndex = 0
	}
	return s
}

// decodeDocument parses animation JSON, applying the historical defaults
// for absent keys (delay 200ms, loop on).
func decodeDocument(data []byte) (Document, error) {
	doc := Document{
		Name:         "Untitled Animation",
		FrameDelayMS: DefaultDelayMS,
		Loop:         true,
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile replaces the sequence contents with the animation stored at
// path. On any error the in-memory sequence is left untouched.
func (s *Sequence) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read animation: %w", err)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return fmt.Errorf("parse animation %s: %w", path, err)
	}
	loaded := FromDocument(doc)

	s.name = loaded.name
	s.delayMS = loaded.delayMS
	s.loop = loaded.loop
	s.frames = loaded.frames
	s.editIndex = loaded.editIndex
	s.state = Stopped
	s.playIndex = 0
	s.path = path
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
	return nil
}

// SaveFile writes the sequence to path as indented JSON with canonical
// color names, then clears the modified flag.
func (s *Sequence) SaveFile(path string) error {
	data, err := json.MarshalIndent(s.Document(), "", "    ")
	if err != nil {
		return fmt.Errorf("encode animation: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write animation %s: %w", path, err)
	}
	s.path = path
	s.modified = false
	return nil
}
