// Package store maps record names to files under the tabsets
// directory and owns raw persistence. One JSON file per record; the
// filesystem is the only source of truth.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alchemmist/tabset/internal/tabset"
)

const (
	fileSuffix      = ".tabset.json"
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

var (
	ErrNotFound = errors.New("tabset record not found")
	ErrExists   = errors.New("tabset record already exists")
	ErrCorrupt  = errors.New("tabset record is corrupt")
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// PathFor is the deterministic name -> file mapping. The caller is
// responsible for validating the name first.
func (s *Store) PathFor(name string) string {
	return filepath.Join(s.dir, name+fileSuffix)
}

// Save serializes the snapshot under name, overwriting any previous
// record with that name. The write goes through a temp file and
// rename so a crash never leaves a half-written record behind.
func (s *Store) Save(snap tabset.Snapshot, name string) error {
	if !tabset.ValidName(name) {
		return fmt.Errorf("invalid tabset name %q", name)
	}
	if err := os.MkdirAll(s.dir, defaultDirPerm); err != nil {
		return fmt.Errorf("create tabsets dir: %w", err)
	}
	return writeJSONAtomic(s.PathFor(name), snap)
}

// Load reads the record stored under name. A missing file is
// ErrNotFound; a file that fails to decode is ErrCorrupt. Both are
// distinguishable with errors.Is.
func (s *Store) Load(name string) (tabset.Snapshot, error) {
	var snap tabset.Snapshot
	b, err := os.ReadFile(s.PathFor(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return snap, err
	}
	if err := json.Unmarshal(b, &snap); err != nil {
		return snap, fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	return snap, nil
}

// List enumerates stored record names, sorted lexicographically.
// A missing store directory is an empty store, not an error.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tabsets dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if !strings.HasSuffix(n, fileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(n, fileSuffix))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the record stored under name. Deleting a record
// that does not exist is ErrNotFound, not a silent success.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.PathFor(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// Rename moves the record at oldName to newName. It refuses to
// overwrite: an existing record under newName is ErrExists and the
// source is left untouched.
func (s *Store) Rename(oldName, newName string) error {
	if !tabset.ValidName(newName) {
		return fmt.Errorf("invalid tabset name %q", newName)
	}
	src := s.PathFor(oldName)
	dst := s.PathFor(newName)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, newName)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}
	return os.Rename(src, dst)
}

func writeJSONAtomic(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), defaultFilePerm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
