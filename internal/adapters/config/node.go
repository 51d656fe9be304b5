package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config Graft node.
const NodeID graft.ID = "adapter.config"

// pathOverride is set from the --config flag before the graph executes.
var pathOverride string

// SetPath overrides the configuration file location for this process.
func SetPath(path string) {
	pathOverride = path
}

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Config, error) {
			return Load(pathOverride)
		},
	})
}
