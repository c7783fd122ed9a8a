package domain

import (
	"maps"
	"slices"
)

// ModelRegistration captures the aliases a rendered artifact exposes for one model.
type ModelRegistration struct {
	Model                ImportPath
	VirtualImportPath    ImportPath
	ConcreteName         string
	ConcreteQuerySetName string
	ConcreteModels       []ImportPath
}

// Report accumulates what was rendered for a single module.
// It is filled while rendering and consumed once by combination.
type Report struct {
	modules map[ImportPath]ImportPath
	models  map[ImportPath]ModelRegistration
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		modules: make(map[ImportPath]ImportPath),
		models:  make(map[ImportPath]ModelRegistration),
	}
}

// RegisterModule associates a real module with its synthetic module.
func (r *Report) RegisterModule(moduleImportPath, virtualImportPath ImportPath) {
	r.modules[moduleImportPath] = virtualImportPath
}

// RegisterModel records the aliases rendered for a model.
func (r *Report) RegisterModel(reg ModelRegistration) {
	reg.ConcreteModels = slices.Clone(reg.ConcreteModels)
	r.models[reg.Model] = reg
}

// Modules returns the real to synthetic module associations recorded so far.
func (r *Report) Modules() map[ImportPath]ImportPath {
	return maps.Clone(r.modules)
}

// Models returns the model registrations recorded so far.
func (r *Report) Models() map[ImportPath]ModelRegistration {
	return maps.Clone(r.models)
}

// CombinedReport is the merge of every per-module report of one run.
// It is the only object exposed to the resolver and is never mutated after creation.
type CombinedReport struct {
	// ReportImportPath maps real modules to their synthetic modules.
	ReportImportPath map[ImportPath]ImportPath `json:"report_import_path"`

	// ConcreteAnnotations maps models to the fully qualified concrete union alias.
	ConcreteAnnotations map[ImportPath]string `json:"concrete_annotations"`

	// ConcreteQuerySets maps models to the fully qualified concrete queryset alias.
	ConcreteQuerySets map[ImportPath]string `json:"concrete_querysets"`

	// ConcreteModels maps models to the concrete models behind their aliases.
	ConcreteModels map[ImportPath][]ImportPath `json:"concrete_models"`
}

// Combine merges reports into one CombinedReport.
// The result does not depend on the order of reports. When two reports disagree about the
// same key the lexicographically smallest value is kept.
func Combine(reports []*Report) *CombinedReport {
	combined := &CombinedReport{
		ReportImportPath:    make(map[ImportPath]ImportPath),
		ConcreteAnnotations: make(map[ImportPath]string),
		ConcreteQuerySets:   make(map[ImportPath]string),
		ConcreteModels:      make(map[ImportPath][]ImportPath),
	}

	for _, report := range reports {
		if report == nil {
			continue
		}
		for module, virtual := range report.modules {
			if existing, ok := combined.ReportImportPath[module]; !ok || virtual < existing {
				combined.ReportImportPath[module] = virtual
			}
		}
		for model, reg := range report.models {
			annotation := qualify(reg.VirtualImportPath, reg.ConcreteName)
			querySet := qualify(reg.VirtualImportPath, reg.ConcreteQuerySetName)
			concrete := slices.Clone(reg.ConcreteModels)
			slices.Sort(concrete)
			concrete = slices.Compact(concrete)

			if _, ok := combined.ConcreteAnnotations[model]; ok {
				current := []string{combined.ConcreteAnnotations[model], combined.ConcreteQuerySets[model]}
				if c := slices.Compare([]string{annotation, querySet}, current); c > 0 ||
					(c == 0 && slices.Compare(concrete, combined.ConcreteModels[model]) >= 0) {
					continue
				}
			}
			combined.ConcreteAnnotations[model] = annotation
			combined.ConcreteQuerySets[model] = querySet
			combined.ConcreteModels[model] = concrete
		}
	}

	return combined
}

func qualify(virtualImportPath ImportPath, alias string) string {
	if alias == "" {
		return ""
	}
	return virtualImportPath.String() + "." + alias
}

// ConcreteAliases returns the concrete union alias for each requested model.
// Every requested model is present in the result; an empty string means no alias is known.
func (c *CombinedReport) ConcreteAliases(models ...ImportPath) map[ImportPath]string {
	return lookup(c.ConcreteAnnotations, models)
}

// QuerySetAliases returns the concrete queryset alias for each requested model.
// Every requested model is present in the result; an empty string means no alias is known.
func (c *CombinedReport) QuerySetAliases(models ...ImportPath) map[ImportPath]string {
	return lookup(c.ConcreteQuerySets, models)
}

func lookup(from map[ImportPath]string, models []ImportPath) map[ImportPath]string {
	out := make(map[ImportPath]string, len(models))
	for _, model := range models {
		out[model] = from[model]
	}
	return out
}

// AdditionalDeps returns the synthetic modules a file must depend on: the synthetic module of
// the file itself and of every imported module. An import of a name inside a module, such as
// "app.models.User", resolves to the module that contains it. The result is sorted.
func (c *CombinedReport) AdditionalDeps(fileImportPath ImportPath, imports []ImportPath) []ImportPath {
	seen := make(map[ImportPath]struct{})
	add := func(path ImportPath) {
		for path != "" {
			if virtual, ok := c.ReportImportPath[path]; ok {
				seen[virtual] = struct{}{}
				return
			}
			path, _ = path.Split()
		}
	}

	if virtual, ok := c.ReportImportPath[fileImportPath]; ok {
		seen[virtual] = struct{}{}
	}
	for _, imp := range imports {
		add(imp)
	}

	return slices.Sorted(maps.Keys(seen))
}
