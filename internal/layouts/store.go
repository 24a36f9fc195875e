// Package layouts persists named static 8x8 layouts, one JSON file per
// layout, under a user directory. Layout names are sanitized into
// filesystem-safe keys; lookups accept the key or the display name.
package layouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smartpad/internal/animation"
	"smartpad/internal/palette"
)

// subdir is the directory under the store root that holds layout files.
const subdir = "user_static_layouts"

// ErrNotFound reports a layout that exists under neither its key nor its
// display name.
var ErrNotFound = errors.New("layout not found")

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// layoutFile is the on-disk shape of one layout.
type layoutFile struct {
	DisplayName string   `json:"display_name"`
	LayoutData  []string `json:"layout_data"`
}

// Store reads and writes layout files in a single directory.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a layout store under baseDir.
func NewStore(baseDir string) (*Store, error) {
	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create layouts dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the layout files.
func (s *Store) Dir() string {
	return s.dir
}

// Key sanitizes a layout name into its filesystem-safe lowercase key:
// punctuation stripped, runs of spaces and hyphens collapsed to "_".
func Key(name string) string {
	name = strings.TrimSpace(name)
	name = invalidChars.ReplaceAllString(name, "")
	name = separators.ReplaceAllString(name, "_")
	return strings.ToLower(name)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save stores a layout under the given display name, canonicalizing every
// color name (unknown names become OFF). The name must be non-empty and
// survive sanitization; the data must be exactly 64 entries.
func (s *Store) Save(displayName string, colorNames []string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return errors.New("layout name cannot be empty")
	}
	if len(colorNames) != animation.PadCount {
		return fmt.Errorf("layout data must contain %d colors, got %d",
			animation.PadCount, len(colorNames))
	}
	key := Key(displayName)
	if key == "" {
		return fmt.Errorf("layout name %q is empty after sanitization", displayName)
	}

	validated := make([]string, len(colorNames))
	for i, n := range colorNames {
		validated[i] = palette.Normalize(n).Name()
	}

	data, err := json.MarshalIndent(layoutFile{
		DisplayName: displayName,
		LayoutData:  validated,
	}, "", "    ")
	if err != nil {
		return fmt.Errorf("encode layout %q: %w", displayName, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("save layout %q: %w", displayName, err)
	}
	return nil
}

// Load returns a layout's 64 canonical color names. The name may be the
// sanitized key or any case variant of the display name.
func (s *Store) Load(name string) ([]string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %q: %w", name, err)
	}
	var lf layoutFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse layout %q: %w", name, err)
	}
	if len(lf.LayoutData) != animation.PadCount {
		return nil, fmt.Errorf("layout %q holds %d colors, want %d",
			name, len(lf.LayoutData), animation.PadCount)
	}
	validated := make([]string, len(lf.LayoutData))
	for i, n := range lf.LayoutData {
		validated[i] = palette.Normalize(n).Name()
	}
	return validated, nil
}

// Delete removes a layout. Deleting a layout that does not exist succeeds.
func (s *Store) Delete(name string) error {
	path, err := s.resolve(name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}

// resolve maps a key or display name to the layout's file path.
func (s *Store) resolve(name string) (string, error) {
	path := s.path(Key(name))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	// Fall back to a case-insensitive scan over display names.
	entries, err := s.scan()
	if err != nil {
		return "", err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, e := range entries {
		if strings.ToLower(e.display) == want {
			return s.path(e.key), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

type entry struct {
	key     string
	display string
}

// scan lists every readable layout file. Unreadable or malformed files are
// skipped with a warning so one corrupt layout does not hide the rest.
func (s *Store) scan() ([]entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	titler := cases.Title(language.English)
	entries := make([]entry, 0, len(dirents))
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(de.Name(), ".json")
		data, err := os.ReadFile(s.path(key))
		if err != nil {
			log.Warn().Err(err).Str("file", de.Name()).Msg("skipping unreadable layout")
			continue
		}
		var lf layoutFile
		if err := json.Unmarshal(data, &lf); err != nil {
			log.Warn().Err(err).Str("file", de.Name()).Msg("skipping malformed layout")
			continue
		}
		display := lf.DisplayName
		if display == "" {
			display = titler.String(strings.ReplaceAll(key, "_", " "))
		}
		entries = append(entries, entry{key: key, display: display})
	}
	return entries, nil
}

// Names returns the display names of every stored layout, sorted.
func (s *Store) Names() ([]string, error) {
	entries, err := s.scan()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.display
	}
	sort.Strings(names)
	return names, nil
}
