package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.hollert.ch/sokforge/internal/core/ports"
)

// NodeID is the unique identifier for the environment probe Graft node.
const NodeID graft.ID = "adapter.environment_probe"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvironmentProbe, error) {
			return NewProbe(), nil
		},
	})
}
