package ports

import "go.trai.ch/vdep/internal/core/domain"

// ReportStore persists the combined report next to the published artifacts.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Put writes the combined report into root.
	Put(root string, report *domain.CombinedReport) error

	// Get reads the combined report from root.
	Get(root string) (*domain.CombinedReport, error)
}
