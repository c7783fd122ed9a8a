package folder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vdep/internal/core/ports"
)

const (
	// InstallerNodeID is the unique identifier for the report installer Graft node.
	InstallerNodeID graft.ID = "adapter.folder.installer"
	// StoreNodeID is the unique identifier for the report store Graft node.
	StoreNodeID graft.ID = "adapter.folder.store"
)

func init() {
	graft.Register(graft.Node[ports.ReportInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportInstaller, error) {
			return NewInstaller(), nil
		},
	})

	graft.Register(graft.Node[ports.ReportStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportStore, error) {
			return NewReportStore(), nil
		},
	})
}
