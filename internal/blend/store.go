// Package blend persists user-named combinations of songs and their averaged
// audio profile in a single JSON document.
package blend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ademuri/bollywood-analytics/internal/dataset"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MinSongs is the smallest number of songs a blend can be created from.
const MinSongs = 2

var (
	ErrNotFound = errors.New("blend not found")
	ErrInvalid  = errors.New("invalid blend")
)

// PersistenceError reports a failure to read or write the blend document.
// A failed write leaves the in-memory store ahead of the file until the next
// successful write.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Blend is a named set of songs and the mean of their audio features.
type Blend struct {
	Name     string                `json:"-"`
	Songs    []string              `json:"songs"`
	Features dataset.AudioFeatures `json:"features"`
}

func (b Blend) clone() Blend {
	b.Songs = append([]string(nil), b.Songs...)
	return b
}

// Store maps blend names to blends and mirrors every mutation to disk. Names
// keep the order of the document; overwriting an existing name keeps its
// position.
type Store struct {
	mu     sync.Mutex
	path   string
	blends *orderedmap.OrderedMap[string, Blend]
}

// Open loads the blend document at path. A missing file yields an empty store;
// the file is created by the first mutation.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		blends: orderedmap.New[string, Blend](),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no blend document, starting empty", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "read", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, s.blends); err != nil {
		return nil, &PersistenceError{Op: "decode", Path: path, Err: err}
	}
	for pair := s.blends.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.Name = pair.Key
	}
	slog.Debug("loaded blends", "path", path, "count", s.blends.Len())
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// CreateOrReplace stores a blend under name, overwriting any blend already
// stored there, and rewrites the document.
func (s *Store) CreateOrReplace(name string, songs []string, features dataset.AudioFeatures) (Blend, error) {
	if name == "" {
		return Blend{}, fmt.Errorf("%w: empty name", ErrInvalid)
	}
	if len(songs) < MinSongs {
		return Blend{}, fmt.Errorf("%w: need at least %d songs, got %d", ErrInvalid, MinSongs, len(songs))
	}
	if !features.Finite() {
		return Blend{}, fmt.Errorf("%w: features of %q are missing or not finite: %+v", ErrInvalid, name, features)
	}

	b := Blend{
		Name:     name,
		Songs:    append([]string(nil), songs...),
		Features: features,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.blends.Set(name, b)
	slog.Debug("saved blend", "name", name, "songs", len(songs), "replaced", replaced)
	return b.clone(), s.persist()
}

// Rename moves the blend at oldName to newName. A blend already stored under
// newName is overwritten.
func (s *Store) Rename(oldName, newName string) (Blend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blends.Get(oldName); !ok {
		return Blend{}, fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	if newName == "" {
		return Blend{}, fmt.Errorf("%w: empty name", ErrInvalid)
	}
	if newName == oldName {
		return Blend{}, fmt.Errorf("%w: %q is already named %q", ErrInvalid, oldName, newName)
	}

	b, _ := s.blends.Delete(oldName)
	b.Name = newName
	_, replaced := s.blends.Set(newName, b)
	slog.Debug("renamed blend", "from", oldName, "to", newName, "replaced", replaced)
	return b.clone(), s.persist()
}

func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blends.Delete(name); !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	slog.Debug("deleted blend", "name", name)
	return s.persist()
}

func (s *Store) Get(name string) (Blend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blends.Get(name)
	if !ok {
		return Blend{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return b.clone(), nil
}

// Names returns every blend name in document order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, s.blends.Len())
	for pair := s.blends.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// All returns copies of every blend in document order.
func (s *Store) All() []Blend {
	s.mu.Lock()
	defer s.mu.Unlock()

	blends := make([]Blend, 0, s.blends.Len())
	for pair := s.blends.Oldest(); pair != nil; pair = pair.Next() {
		blends = append(blends, pair.Value.clone())
	}
	return blends
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blends.Len()
}

// persist rewrites the whole document through a temp file in the same
// directory so readers never observe a partial write. Callers hold s.mu.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.blends, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".blends-*.json")
	if err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}

	slog.Debug("wrote blend document", "path", s.path, "count", s.blends.Len())
	return nil
}
