package virtualdeps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vdep/internal/adapters/folder"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vdep/internal/adapters/scribe"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vdep/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vdep/internal/core/ports"
)

// InstallerNodeID is the unique identifier for the installer Graft node.
const InstallerNodeID graft.ID = "engine.virtualdeps.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			folder.InstallerNodeID,
			folder.StoreNodeID,
			scribe.CombinerNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			installer, err := graft.Dep[ports.ReportInstaller](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}

			combiner, err := graft.Dep[ports.ReportCombiner](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewInstaller(installer, combiner).
				WithReportStore(store).
				WithTracer(tel.Tracer(TracerName)), nil
		},
	})
}
