package ports

import "go.trai.ch/vdep/internal/core/domain"

// SignificantInfoFinder lists the facts about a module that must change its artifact when they change.
//
//go:generate mockgen -source=significant_info.go -destination=mocks/mock_significant_info.go -package=mocks
type SignificantInfoFinder interface {
	Find(project *domain.DiscoveredProject, module domain.Module) []string
}
