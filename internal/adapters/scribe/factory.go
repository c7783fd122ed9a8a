package scribe

import (
	"iter"

	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ReportFactory  = (*Factory)(nil)
	_ ports.ReportCombiner = Combiner{}
)

// Factory is the default ReportFactory. It renders stub files and fills one report per module.
type Factory struct {
	hash func(domain.VirtualDependency) string
}

// NewFactory creates a Factory that fingerprints summaries with SummaryHash.
func NewFactory() *Factory {
	return &Factory{hash: SummaryHash}
}

// DeployScribes implements ports.ReportFactory.
// Rendering happens as the sequence is consumed, one module at a time.
func (f *Factory) DeployScribes(deps *domain.VirtualDependencyMap) iter.Seq2[domain.WrittenVirtualDependency, error] {
	return func(yield func(domain.WrittenVirtualDependency, error) bool) {
		for module, vd := range deps.All() {
			written, err := f.write(module, vd)
			if !yield(written, err) || err != nil {
				return
			}
		}
	}
}

func (f *Factory) write(module domain.ImportPath, vd domain.VirtualDependency) (domain.WrittenVirtualDependency, error) {
	virtual := vd.Summary.VirtualDependencyName
	if virtual == "" {
		return domain.WrittenVirtualDependency{}, zerr.With(
			zerr.Wrap(domain.ErrInconsistentDiscovery, "virtual dependency has no name"), "module", module.String())
	}

	report := domain.NewReport()
	report.RegisterModule(vd.Summary.ModuleImportPath, virtual)
	for model, concrete := range vd.ConcreteModels.Sorted() {
		report.RegisterModel(domain.ModelRegistration{
			Model:                model,
			VirtualImportPath:    virtual,
			ConcreteName:         ConcreteName(model),
			ConcreteQuerySetName: ConcreteQuerySetName(model),
			ConcreteModels:       domain.ModelPaths(concrete),
		})
	}

	summaryHash := f.hash(vd)
	return domain.WrittenVirtualDependency{
		Content:           Render(vd, summaryHash),
		SummaryHash:       summaryHash,
		Report:            report,
		VirtualImportPath: virtual,
	}, nil
}

// Combiner is the default ReportCombiner.
type Combiner struct{}

// Combine implements ports.ReportCombiner.
func (Combiner) Combine(reports []*domain.Report) *domain.CombinedReport {
	return domain.Combine(reports)
}
