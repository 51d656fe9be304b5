// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lunchcal/internal/adapters/config"
	_ "go.trai.ch/lunchcal/internal/adapters/export"
	_ "go.trai.ch/lunchcal/internal/adapters/fetch"
	_ "go.trai.ch/lunchcal/internal/adapters/genai"
	_ "go.trai.ch/lunchcal/internal/adapters/logger"
	_ "go.trai.ch/lunchcal/internal/adapters/metadata"
	_ "go.trai.ch/lunchcal/internal/adapters/scraper"
	_ "go.trai.ch/lunchcal/internal/adapters/storage"
	// Register app and engine nodes.
	_ "go.trai.ch/lunchcal/internal/app"
	_ "go.trai.ch/lunchcal/internal/engine/compositor"
	_ "go.trai.ch/lunchcal/internal/engine/imagecache"
)
