package storage

import (
	"compress/gzip"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/schollz/freqchart/internal/model"
	"github.com/schollz/freqchart/internal/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StateFile is the name of the saved view state inside the state directory.
const StateFile = "state.json.gz"

// Presets live as <name>.json.gz files under PresetDir of the state
// directory.
const (
	PresetDir    = "presets"
	presetSuffix = ".json.gz"
)

const (
	stateVersion  = 1
	autoSaveDelay = time.Second
)

type savedState struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	View    types.ViewState `json:"view"`
	Theme   string          `json:"theme,omitempty"`
}

var (
	autoSaveMu    sync.Mutex
	autoSaveTimer *time.Timer
	// autoSaveGen increments whenever a pending autosave is superseded.
	autoSaveGen uint64

	// writeMu serializes state file writes.
	writeMu sync.Mutex
)

// ErrNoStateDir is returned by preset operations when there is nowhere to
// keep presets.
var ErrNoStateDir = errors.New("no state directory configured")

// StatePath returns the state file location inside dir.
func StatePath(dir string) string {
	return filepath.Join(dir, StateFile)
}

func snapshot(m *model.Model) savedState {
	return savedState{Version: stateVersion, View: m.View, Theme: m.ThemeName}
}

// DoSave writes the view state immediately. Errors are logged. A pending or
// running autosave never overwrites what DoSave wrote.
func DoSave(m *model.Model) {
	if m.NoSave || m.StateDir == "" {
		return
	}
	cancelAutoSave()

	writeMu.Lock()
	defer writeMu.Unlock()
	if err := writeState(StatePath(m.StateDir), snapshot(m)); err != nil {
		log.Printf("Error saving state: %v", err)
		return
	}
	log.Printf("Saved state to %s", StatePath(m.StateDir))
}

// AutoSave schedules a save after a short quiet period; calls in quick
// succession collapse into one write of the latest view.
func AutoSave(m *model.Model) {
	if m.NoSave || m.StateDir == "" {
		return
	}
	path, state := StatePath(m.StateDir), snapshot(m)

	autoSaveMu.Lock()
	defer autoSaveMu.Unlock()
	if autoSaveTimer != nil {
		autoSaveTimer.Stop()
	}
	autoSaveGen++
	gen := autoSaveGen
	autoSaveTimer = time.AfterFunc(autoSaveDelay, func() {
		autoSaveWrite(gen, path, state)
	})
}

// autoSaveWrite runs a scheduled save unless a later AutoSave or DoSave
// superseded it.
func autoSaveWrite(gen uint64, path string, state savedState) {
	writeMu.Lock()
	defer writeMu.Unlock()

	autoSaveMu.Lock()
	stale := gen != autoSaveGen
	autoSaveMu.Unlock()
	if stale {
		return
	}
	if err := writeState(path, state); err != nil {
		log.Printf("Error auto-saving state: %v", err)
	}
}

func cancelAutoSave() {
	autoSaveMu.Lock()
	defer autoSaveMu.Unlock()
	autoSaveGen++
	if autoSaveTimer != nil {
		autoSaveTimer.Stop()
		autoSaveTimer = nil
	}
}

func writeState(path string, state savedState) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	state.SavedAt = time.Now()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	// write to a temp file and rename so a crash never leaves a torn file
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	gz := gzip.NewWriter(tmp)
	if _, err := gz.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := gz.Close(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to compress state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close state: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

func readState(path string) (savedState, error) {
	var s savedState
	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("failed to open state: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return s, fmt.Errorf("failed to decompress state: %w", err)
	}
	defer gz.Close()

	if err := json.NewDecoder(gz).Decode(&s); err != nil {
		return s, fmt.Errorf("failed to decode state: %w", err)
	}
	return s, nil
}

// applyState installs s on m. A band that no longer exists in the catalog
// is an error and leaves m untouched; an unknown theme keeps the current one.
func applyState(m *model.Model, s savedState) error {
	if _, ok := m.Catalog.Band(s.View.SelectedBandID); !ok {
		return fmt.Errorf("saved band %q is not in the catalog", s.View.SelectedBandID)
	}
	s.View.Normalize()
	m.View = s.View
	m.Details = nil
	if s.Theme != "" && !m.SetTheme(s.Theme) {
		log.Printf("Ignoring unknown saved theme %q", s.Theme)
	}
	m.PointerLeave()
	return nil
}

// LoadState restores the view saved in dir. Zoom and tuned frequency are
// clamped back into range.
func LoadState(m *model.Model, dir string) error {
	s, err := readState(StatePath(dir))
	if err != nil {
		return err
	}
	if err := applyState(m, s); err != nil {
		return err
	}
	m.StateDir = dir
	log.Printf("Loaded state from %s (saved %s)", StatePath(dir), s.SavedAt.Format(time.RFC3339))
	return nil
}

// PresetPath returns where the preset name is kept inside dir. Names are
// limited to letters, digits, '-' and '_'.
func PresetPath(dir, name string) (string, error) {
	if dir == "" {
		return "", ErrNoStateDir
	}
	if name == "" || len(name) > 64 {
		return "", fmt.Errorf("invalid preset name %q", name)
	}
	for _, r := range name {
		ok := r == '-' || r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !ok {
			return "", fmt.Errorf("invalid preset name %q", name)
		}
	}
	return filepath.Join(dir, PresetDir, name+presetSuffix), nil
}

// SavePreset stores the current view and theme under name, replacing any
// preset of the same name.
func SavePreset(m *model.Model, name string) error {
	path, err := PresetPath(m.StateDir, name)
	if err != nil {
		return err
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	if err := writeState(path, snapshot(m)); err != nil {
		return err
	}
	log.Printf("Saved preset %s to %s", name, path)
	return nil
}

// LoadPreset restores the view and theme stored under name.
func LoadPreset(m *model.Model, name string) error {
	path, err := PresetPath(m.StateDir, name)
	if err != nil {
		return err
	}
	s, err := readState(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("preset %q not found", name)
		}
		return err
	}
	return applyState(m, s)
}

// ListPresets returns the preset names in dir, sorted. A missing preset
// directory is an empty list.
func ListPresets(dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrNoStateDir
	}
	entries, err := os.ReadDir(filepath.Join(dir, PresetDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), presetSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), presetSuffix))
	}
	sort.Strings(names)
	return names, nil
}

// DeletePreset removes the preset name from dir.
func DeletePreset(dir, name string) error {
	path, err := PresetPath(dir, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("preset %q not found", name)
		}
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}
