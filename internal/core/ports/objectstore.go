package ports

import "context"

// ObjectStore defines the interface for the durable artifact store.
//
//go:generate mockgen -source=objectstore.go -destination=mocks/mock_objectstore.go -package=mocks
type ObjectStore interface {
	// Exists reports whether an artifact is still present at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// Upload stores data at the given path with the given content type and
	// returns a publicly resolvable URL for it. Existing artifacts at the
	// same path are overwritten.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// PublicURL returns the resolvable URL for an already stored path.
	PublicURL(path string) string
}
