// Package storage implements the durable artifact store. Two backends are
// provided: a local filesystem tree for development and single-host runs,
// and an AWS S3 bucket for hosted deployments.
package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
)

// FSStore implements ports.ObjectStore on a local directory.
type FSStore struct {
	root    string
	baseURL string
}

// NewFSStore creates a filesystem store rooted at root. baseURL, when set,
// is the public prefix reported for stored artifacts; otherwise URLs are
// file paths under root.
func NewFSStore(root, baseURL string) *FSStore {
	return &FSStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Exists reports whether an artifact is still present at the given path.
func (s *FSStore) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return true, nil
}

// Upload stores data at the given path, overwriting any prior artifact.
func (s *FSStore) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	filename := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrUploadFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted root and derived artifact path
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrUploadFailed.Error())
	}

	return s.PublicURL(path), nil
}

// PublicURL returns the resolvable URL for an already stored path.
func (s *FSStore) PublicURL(path string) string {
	if s.baseURL != "" {
		return s.baseURL + "/" + path
	}
	return filepath.Join(s.root, filepath.FromSlash(path))
}
