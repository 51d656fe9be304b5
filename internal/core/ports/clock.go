package ports

import "time"

// Clock defines the interface for reading the current time, so freshness
// checks stay testable.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() time.Time
}
