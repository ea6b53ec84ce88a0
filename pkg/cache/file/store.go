// Package file stores raw API responses in a single JSON document on disk.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
)

const cacheFilePerms = 0o644

// Store is a key to response mapping mirrored to one JSON file.
// Every Put rewrites the whole file. It is not safe for concurrent use and
// concurrent processes sharing a file lose updates (last writer wins).
type Store struct {
	path    string
	entries map[string]json.RawMessage
	log     zerolog.Logger
}

// Open loads the store at path. A missing or unreadable file starts empty.
func Open(path string, log zerolog.Logger) *Store {
	s := &Store{path: path, log: log}
	s.entries = s.load()
	return s
}

// Load reads the mapping at path, returning an empty mapping on any failure.
func Load(path string) map[string]json.RawMessage {
	s := &Store{path: path, log: zerolog.Nop()}
	return s.load()
}

func (s *Store) load() map[string]json.RawMessage {
	entries := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("cache file unreadable, starting empty")
		}
		return entries
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("cache file corrupt, starting empty")
		return entries
	}
	for k, v := range decoded {
		entries[k] = v
	}

	s.log.Debug().Str("path", s.path).Int("entries", len(entries)).Msg("cache loaded")
	return entries
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored response for key.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Put stores value under key and rewrites the backing file.
func (s *Store) Put(key string, value json.RawMessage) error {
	s.entries[key] = value
	return s.persist()
}

// Delete removes key and rewrites the backing file. Deleting an absent key
// is a no-op that still persists.
func (s *Store) Delete(key string) error {
	delete(s.entries, key)
	return s.persist()
}

// Clear drops every entry and rewrites the backing file.
func (s *Store) Clear() error {
	s.entries = make(map[string]json.RawMessage)
	return s.persist()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// persist replaces the backing file with the full mapping. The data is
// written to a sibling temp file first and renamed into place.
func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Chmod(cacheFilePerms); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}

	s.log.Debug().Str("path", s.path).Int("entries", len(s.entries)).Msg("cache persisted")
	return nil
}
