// Package store reads and rewrites track schedule stores.
//
// A store is a single .emat file owned by an external scheduler: a versioned
// YAML document mapping track names to dates. This package loads a store
// fully into memory, renames one track, and writes the whole mapping back.
// It never creates stores, and it leaves the file untouched when any step
// fails.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/trackfile/internal/atomicfile"
)

// SchemaVersion is the store schema version this build reads and writes.
// Any other version on disk is treated as corrupt rather than best-effort
// readable.
const SchemaVersion = 1

// Extension is the fixed on-disk extension for store files.
const Extension = ".emat"

// Errors
var (
	ErrStoreNotFound = errors.New("store not found")
	ErrStoreCorrupt  = errors.New("store corrupt")
	ErrTrackNotFound = errors.New("track not found")
)

// Track is one named entry in a store. The date is carried as an opaque
// string and round-tripped untouched.
type Track struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"`
}

// Store is an ordered collection of uniquely named tracks.
type Store struct {
	Tracks []Track
}

type storeFile struct {
	Version int     `yaml:"version"`
	Tracks  []Track `yaml:"tracks"`
}

// Get returns the track with the given name.
func (s *Store) Get(name string) (Track, bool) {
	for _, t := range s.Tracks {
		if t.Name == name {
			return t, true
		}
	}
	return Track{}, false
}

// Has reports whether a track with the given name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Len returns the number of tracks in the store.
func (s *Store) Len() int {
	return len(s.Tracks)
}

// RenameOutcome describes the effect of a completed rename.
type RenameOutcome struct {
	Track     Track // the renamed entry as it exists afterwards
	NoOp      bool  // old and new names were equal; nothing changed
	Overwrote bool  // an entry already named newName was replaced
	Previous  Track // the replaced entry, set when Overwrote
}

// Rename renames oldName to newName in memory.
//
// Unaffected tracks keep their order. A rename to a fresh name appends the
// renamed track at the end; a rename onto an existing name keeps that
// entry's position and replaces its date (last-write-wins). Renaming a
// track to its own name changes nothing.
func (s *Store) Rename(oldName, newName string) (RenameOutcome, error) {
	track, ok := s.Get(oldName)
	if !ok {
		return RenameOutcome{}, fmt.Errorf("%w: %s", ErrTrackNotFound, oldName)
	}

	if oldName == newName {
		return RenameOutcome{Track: track, NoOp: true}, nil
	}

	outcome := RenameOutcome{Track: Track{Name: newName, Date: track.Date}}
	kept := make([]Track, 0, len(s.Tracks))
	for _, t := range s.Tracks {
		if t.Name == oldName {
			continue
		}
		if t.Name == newName {
			outcome.Overwrote = true
			outcome.Previous = t
			t.Date = track.Date
		}
		kept = append(kept, t)
	}
	if !outcome.Overwrote {
		kept = append(kept, outcome.Track)
	}
	s.Tracks = kept

	return outcome, nil
}

// Load reads and validates the store at path.
//
// A missing file is ErrStoreNotFound. A file that exists but cannot be
// decoded, carries an unsupported schema version, or violates the
// unique-name invariant is ErrStoreCorrupt.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw storeFile
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty file", ErrStoreCorrupt, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreCorrupt, path, err)
	}

	if raw.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: %s: unsupported schema version %d", ErrStoreCorrupt, path, raw.Version)
	}

	seen := make(map[string]struct{}, len(raw.Tracks))
	for _, t := range raw.Tracks {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: %s: track with empty name", ErrStoreCorrupt, path)
		}
		if _, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate track name %q", ErrStoreCorrupt, path, t.Name)
		}
		seen[t.Name] = struct{}{}
	}

	return &Store{Tracks: raw.Tracks}, nil
}

// Save writes the full store to path, overwriting prior contents.
// The write goes through a temp file and rename, so a crash mid-write never
// leaves a truncated store. Existing file permissions are preserved.
func Save(path string, s *Store) error {
	if s == nil {
		s = &Store{}
	}

	data, err := yaml.Marshal(storeFile{
		Version: SchemaVersion,
		Tracks:  s.Tracks,
	})
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if err := atomicfile.WriteFile(path, data, 0); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// RenameTrack loads the store at path, renames oldName to newName, and
// writes the store back. Nothing is written when loading or the rename
// fails, and a same-name rename leaves the file untouched.
func RenameTrack(path, oldName, newName string) (RenameOutcome, error) {
	s, err := Load(path)
	if err != nil {
		return RenameOutcome{}, err
	}

	outcome, err := s.Rename(oldName, newName)
	if err != nil {
		return RenameOutcome{}, err
	}
	if outcome.NoOp {
		return outcome, nil
	}

	if err := Save(path, s); err != nil {
		return RenameOutcome{}, err
	}
	return outcome, nil
}
