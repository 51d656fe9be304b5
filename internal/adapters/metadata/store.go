// Package metadata implements the cache-metadata and menu document store
// using a file-per-key strategy.
package metadata

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
)

// Subdirectories under the store root.
const (
	entryDir = "image_cache"
	menuDir  = "menus"
)

// Store implements ports.MetadataStore on the local filesystem. Cache
// entries and menu documents live in separate subdirectories, one JSON
// file per key.
type Store struct {
	root string
}

// NewStore creates a metadata store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// GetEntry retrieves the cache entry for a key. Absent entries return
// nil, nil so callers can distinguish a miss from a failing store.
func (s *Store) GetEntry(key string) (*domain.CacheEntry, error) {
	//nolint:gosec // Path is constructed from trusted root and hashed key
	data, err := os.ReadFile(s.entryFilename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &entry, nil
}

// PutEntry stores the cache entry, overwriting any prior entry for the key.
func (s *Store) PutEntry(key string, entry domain.CacheEntry) error {
	return s.writeJSON(s.entryFilename(key), entry)
}

// PutMenu persists the finished menu document for a week, overwriting any
// prior document for the same week.
func (s *Store) PutMenu(doc domain.MenuDocument) error {
	return s.writeJSON(s.menuFilename(doc.WeekID), doc)
}

// GetMenu retrieves the stored menu document for a week. Returns nil, nil
// if no document exists.
func (s *Store) GetMenu(weekID domain.WeekID) (*domain.MenuDocument, error) {
	//nolint:gosec // Path is constructed from trusted root and validated week id
	data, err := os.ReadFile(s.menuFilename(weekID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var doc domain.MenuDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &doc, nil
}

func (s *Store) writeJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted root
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) entryFilename(key string) string {
	return filepath.Join(s.root, entryDir, key+".json")
}

func (s *Store) menuFilename(weekID domain.WeekID) string {
	return filepath.Join(s.root, menuDir, weekID.String()+".json")
}
