package scribe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vdep/internal/core/ports"
)

const (
	// FactoryNodeID is the unique identifier for the report factory Graft node.
	FactoryNodeID graft.ID = "adapter.scribe.factory"
	// CombinerNodeID is the unique identifier for the report combiner Graft node.
	CombinerNodeID graft.ID = "adapter.scribe.combiner"
)

func init() {
	graft.Register(graft.Node[ports.ReportFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.ReportCombiner]{
		ID:        CombinerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportCombiner, error) {
			return Combiner{}, nil
		},
	})
}
