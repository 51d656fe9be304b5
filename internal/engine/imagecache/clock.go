package imagecache

import (
	"time"

	"go.trai.ch/lunchcal/internal/core/ports"
)

var _ ports.Clock = SystemClock{}

// SystemClock implements ports.Clock with the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
