package ports

import (
	"iter"

	"go.trai.ch/vdep/internal/core/domain"
)

// ReportFactory renders virtual dependencies into artifact content and per-module reports.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportFactory interface {
	// DeployScribes lazily renders one WrittenVirtualDependency per entry, in map order.
	DeployScribes(deps *domain.VirtualDependencyMap) iter.Seq2[domain.WrittenVirtualDependency, error]
}

// ReportCombiner merges per-module reports into the report exposed to the resolver.
type ReportCombiner interface {
	// Combine merges reports. The result must not depend on their order.
	Combine(reports []*domain.Report) *domain.CombinedReport
}

// ReportInstaller writes rendered artifacts into a scratch area and publishes it.
type ReportInstaller interface {
	// PrepareScratch creates an empty scratch area that can later be published to destination.
	PrepareScratch(destination string) (string, error)

	// DiscardScratch removes a scratch area. Removing an already published scratch area is a no-op.
	DiscardScratch(scratchRoot string) error

	// WriteReport stores one rendered artifact under scratchRoot.
	WriteReport(scratchRoot, summaryHash string, virtualImportPath domain.ImportPath, content string) error

	// InstallReports atomically replaces destination with the contents of scratchRoot.
	InstallReports(scratchRoot, destination string) error
}
