package virtualdeps

import (
	"sync"
	"unicode"

	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Differentiator returns the caller-supplied token that distinguishes otherwise identical runs.
type Differentiator func() string

// NoDifferentiator is a Differentiator that adds no entropy.
func NoDifferentiator() string { return "" }

type makeKey struct {
	project           string
	module            domain.ImportPath
	installedAppsHash string
	differentiator    string
}

type made struct {
	vd          domain.VirtualDependency
	diagnostics []domain.Diagnostic
}

// Maker builds the VirtualDependency of a single module.
// Results are memoized per project content, module, installed-apps hash and differentiator.
// Only the most recent project is kept, so a long-lived Maker serves repeated runs over an
// unchanged project from memory.
type Maker struct {
	namer             Namer
	finder            ports.SignificantInfoFinder
	installedAppsHash string
	differentiator    Differentiator

	mu          sync.Mutex
	cache       map[makeKey]made
	lastProject string
}

// NewMaker creates a Maker. Nil strategies select the defaults.
func NewMaker(
	namer Namer,
	finder ports.SignificantInfoFinder,
	installedAppsHash string,
	differentiator Differentiator,
) *Maker {
	if finder == nil {
		finder = SignificantInfo{}
	}
	if differentiator == nil {
		differentiator = NoDifferentiator
	}
	return &Maker{
		namer:             namer,
		finder:            finder,
		installedAppsHash: installedAppsHash,
		differentiator:    differentiator,
		cache:             make(map[makeKey]made),
	}
}

// Namer returns the namer used for synthetic names.
func (m *Maker) Namer() Namer {
	return m.namer
}

// Make builds the virtual dependency for one module of the project.
func (m *Maker) Make(
	project *domain.DiscoveredProject,
	module domain.ImportPath,
) (domain.VirtualDependency, []domain.Diagnostic, error) {
	mod, ok := project.Module(module)
	if !ok {
		return domain.VirtualDependency{}, nil, zerr.With(
			zerr.Wrap(domain.ErrModuleNotFound, "cannot build virtual dependency"), "module", module.String())
	}

	key := makeKey{
		project:           project.Fingerprint(),
		module:            module,
		installedAppsHash: m.installedAppsHash,
		differentiator:    m.differentiator(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if key.project != m.lastProject {
		clear(m.cache)
		m.lastProject = key.project
	}
	if cached, ok := m.cache[key]; ok {
		return cached.vd, cached.diagnostics, nil
	}

	concrete := make(domain.ConcreteModelsMap)
	var diagnostics []domain.Diagnostic
	for _, model := range project.ModelsIn(module) {
		if !isIdentifier(model.ImportPath.Name()) {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Module:  module,
				Model:   model.ImportPath,
				Message: domain.ErrInvalidModelName.Error(),
			})
			continue
		}
		descendants := project.ConcreteDescendants(model.ImportPath)
		if len(descendants) == 0 {
			if model.IsAbstract {
				diagnostics = append(diagnostics, domain.Diagnostic{
					Module:  module,
					Model:   model.ImportPath,
					Message: "abstract model has no installed concrete descendants",
				})
			}
			continue
		}
		concrete[model.ImportPath] = descendants
	}

	vd := domain.VirtualDependency{
		Module: mod,
		Summary: domain.VirtualDependencySummary{
			VirtualDependencyName: m.namer.Name(module),
			ModuleImportPath:      module,
			InstalledAppsHash:     m.installedAppsHash,
			SignificantInfo:       m.finder.Find(project, mod),
		},
		ConcreteModels:          concrete,
		AllRelatedModels:        project.RelatedModels(module),
		InterfaceDifferentiator: key.differentiator,
	}

	m.cache[key] = made{vd: vd, diagnostics: diagnostics}
	return vd, diagnostics, nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
