// Package stores persists the combination collection.
//
// The whole collection is one JSON document, rewritten on every save. The
// two directions follow different error contracts:
//   - Load never fails. A missing, empty or unreadable document yields an
//     empty collection and the cause is logged.
//   - Save always reports I/O failures to the caller.
package stores

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/fsops"
)

// Store loads and saves the full combination collection.
type Store interface {
	// Load returns the stored collection, or an empty one if nothing usable is stored.
	Load() combo.Collection

	// Save replaces the stored collection.
	Save(c combo.Collection) error
}

// FileStore implements Store with a single JSON file.
type FileStore struct {
	fs     fsops.FS
	path   string
	logger *slog.Logger
}

// NewFileStore creates a FileStore for the document at path.
// A nil logger falls back to slog.Default().
func NewFileStore(fs fsops.FS, path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

// Path returns the document location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the collection.
func (s *FileStore) Load() combo.Collection {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read combinations document, using empty collection",
				"path", s.path, "error", err)
		}
		return combo.Collection{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return combo.Collection{}
	}

	var c combo.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		s.logger.Warn("failed to parse combinations document, using empty collection",
			"path", s.path, "error", err)
		return combo.Collection{}
	}
	if c == nil {
		return combo.Collection{}
	}

	return c
}

// Save writes the collection, creating the containing directory if needed.
func (s *FileStore) Save(c combo.Collection) error {
	if c == nil {
		c = combo.Collection{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal combinations: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write combinations document: %w", err)
	}

	s.logger.Debug("saved combinations", "path", s.path, "count", len(c))
	return nil
}
