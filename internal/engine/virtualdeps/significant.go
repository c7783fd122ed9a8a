package virtualdeps

import (
	"strconv"

	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
)

var _ ports.SignificantInfoFinder = SignificantInfo{}

// SignificantInfo is the default significant-info finder.
//
// It records the module itself, whether it is installed, and for every model it defines each
// concrete model that can stand in for it together with that model's custom queryset.
type SignificantInfo struct{}

// Find implements ports.SignificantInfoFinder.
func (SignificantInfo) Find(project *domain.DiscoveredProject, module domain.Module) []string {
	info := []string{
		"module:" + module.ImportPath.String(),
		"installed:" + strconv.FormatBool(module.Installed),
	}
	for _, model := range project.ModelsIn(module.ImportPath) {
		for _, concrete := range project.ConcreteDescendants(model.ImportPath) {
			info = append(info, "concrete:"+model.ImportPath.String()+">"+concrete.ImportPath.String())
			if concrete.DefaultCustomQuerySet != "" {
				info = append(info, "queryset:"+concrete.ImportPath.String()+">"+concrete.DefaultCustomQuerySet.String())
			}
		}
	}
	return info
}
