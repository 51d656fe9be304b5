package app

import (
	"go.trai.ch/lunchcal/internal/adapters/config"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// Components bundles the constructed application with the collaborators
// the outer layers still need direct access to.
type Components struct {
	App    *App
	Config *config.Config
	Logger ports.Logger
}
