// Package ports defines the core interfaces for the application.
package ports

import "context"

// Generator defines the interface for the image-generation collaborator.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Generate produces raw image bytes illustrating the given food
	// description. A nil slice with a nil error means the collaborator
	// had nothing to offer; callers treat that as a non-fatal miss.
	Generate(ctx context.Context, foodName string) ([]byte, error)
}
