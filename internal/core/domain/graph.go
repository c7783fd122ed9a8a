package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DiscoveredProject is the full class graph produced by discovery.
//
// Models and modules live in arenas sorted by import path and refer to each other by index,
// so index order is also lexicographic order. Relations may form cycles; inheritance may not.
// A DiscoveredProject is immutable once built.
type DiscoveredProject struct {
	installedApps []string

	modules     []Module
	moduleIndex map[ImportPath]int

	models     []Model
	modelIndex map[ImportPath]int

	moduleModels [][]int
	parents      [][]int
	children     [][]int
	related      [][]int
	relatedFrom  [][]int
	descendants  [][]int

	fingerprint string
}

// NewDiscoveredProject validates the discovery output and builds the derived indices:
// module to models, and model to transitive descendants.
func NewDiscoveredProject(in ProjectInput) (*DiscoveredProject, error) {
	p := &DiscoveredProject{
		installedApps: slices.Compact(slices.Sorted(slices.Values(in.InstalledApps))),
		moduleIndex:   make(map[ImportPath]int, len(in.Modules)),
		modelIndex:    make(map[ImportPath]int, len(in.Models)),
	}

	if err := p.addModules(in.Modules); err != nil {
		return nil, err
	}
	if err := p.addModels(in.Models); err != nil {
		return nil, err
	}
	if err := p.checkDefinedModels(); err != nil {
		return nil, err
	}
	if err := p.checkInstalledApps(); err != nil {
		return nil, err
	}
	if err := p.link(); err != nil {
		return nil, err
	}
	if err := p.validateInheritance(); err != nil {
		return nil, err
	}
	p.computeDescendants()
	p.computeFingerprint()

	return p, nil
}

func (p *DiscoveredProject) addModules(modules []Module) error {
	p.modules = make([]Module, 0, len(modules))
	for _, m := range modules {
		m.DefinedModels = maps.Clone(m.DefinedModels)
		p.modules = append(p.modules, m)
	}
	slices.SortFunc(p.modules, func(a, b Module) int {
		return strings.Compare(string(a.ImportPath), string(b.ImportPath))
	})

	for i, m := range p.modules {
		if _, exists := p.moduleIndex[m.ImportPath]; exists {
			return zerr.With(zerr.Wrap(ErrDuplicateModule, "invalid discovery"), "module", m.ImportPath.String())
		}
		p.moduleIndex[m.ImportPath] = i
	}
	p.moduleModels = make([][]int, len(p.modules))
	return nil
}

func (p *DiscoveredProject) addModels(models []Model) error {
	p.models = make([]Model, 0, len(models))
	for _, m := range models {
		m.Parents = slices.Clone(m.Parents)
		m.Related = slices.Clone(m.Related)
		p.models = append(p.models, m)
	}
	slices.SortFunc(p.models, func(a, b Model) int {
		return strings.Compare(string(a.ImportPath), string(b.ImportPath))
	})

	for i, m := range p.models {
		if _, exists := p.modelIndex[m.ImportPath]; exists {
			return zerr.With(zerr.Wrap(ErrDuplicateModel, "invalid discovery"), "model", m.ImportPath.String())
		}
		p.modelIndex[m.ImportPath] = i

		modIdx, ok := p.moduleIndex[m.Module]
		if !ok {
			err := zerr.With(zerr.Wrap(ErrInconsistentDiscovery, "model in unknown module"), "model", m.ImportPath.String())
			return zerr.With(err, "unknown_module", m.Module.String())
		}
		p.moduleModels[modIdx] = append(p.moduleModels[modIdx], i)
	}
	return nil
}

func (p *DiscoveredProject) checkDefinedModels() error {
	for _, m := range p.modules {
		for _, name := range slices.Sorted(maps.Keys(m.DefinedModels)) {
			path := m.DefinedModels[name]
			idx, ok := p.modelIndex[path]
			if !ok || p.models[idx].Module != m.ImportPath {
				err := zerr.With(zerr.Wrap(ErrInconsistentDiscovery, "defined model mismatch"), "module", m.ImportPath.String())
				return zerr.With(err, "defined_model", path.String())
			}
		}
	}
	return nil
}

func (p *DiscoveredProject) checkInstalledApps() error {
	groups := make(map[string]bool, len(p.modules))
	for _, m := range p.modules {
		if m.Group != "" {
			groups[m.Group] = true
		}
	}
	for _, app := range p.installedApps {
		if !groups[app] {
			return zerr.With(zerr.Wrap(ErrModuleNotFound, "installed app"), "group", app)
		}
	}
	return nil
}

// link resolves parent and related references to arena indices and records each relation
// on both ends. A reference to a model that was not discovered is deferrable rather than fatal.
func (p *DiscoveredProject) link() error {
	p.parents = make([][]int, len(p.models))
	p.children = make([][]int, len(p.models))
	p.related = make([][]int, len(p.models))
	p.relatedFrom = make([][]int, len(p.models))

	resolve := func(from ImportPath, refs []ImportPath) ([]int, error) {
		out := make([]int, 0, len(refs))
		for _, ref := range refs {
			idx, ok := p.modelIndex[ref]
			if !ok {
				err := zerr.With(zerr.Wrap(ErrDeferred, "unresolved reference"), "model", from.String())
				return nil, zerr.With(err, "reference", ref.String())
			}
			out = append(out, idx)
		}
		slices.Sort(out)
		return slices.Compact(out), nil
	}

	for i, m := range p.models {
		parents, err := resolve(m.ImportPath, m.Parents)
		if err != nil {
			return err
		}
		related, err := resolve(m.ImportPath, m.Related)
		if err != nil {
			return err
		}
		p.parents[i] = parents
		p.related[i] = related
		for _, parent := range parents {
			p.children[parent] = append(p.children[parent], i)
		}
		for _, target := range related {
			p.relatedFrom[target] = append(p.relatedFrom[target], i)
		}
	}
	return nil
}

// validateInheritance checks for inheritance cycles with a depth-first search.
func (p *DiscoveredProject) validateInheritance() error {
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make([]int, len(p.models))
	var path []int

	var visit func(u int) error
	visit = func(u int) error {
		state[u] = visiting
		path = append(path, u)

		for _, parent := range p.parents[u] {
			switch state[parent] {
			case visiting:
				return p.buildCycleError(path, parent)
			case unvisited:
				if err := visit(parent); err != nil {
					return err
				}
			}
		}

		state[u] = visited
		path = path[:len(path)-1]
		return nil
	}

	for i := range p.models {
		if state[i] == unvisited {
			if err := visit(i); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (p *DiscoveredProject) buildCycleError(path []int, parent int) error {
	start := slices.Index(path, parent)
	var b strings.Builder
	for _, idx := range path[start:] {
		b.WriteString(p.models[idx].ImportPath.String())
		b.WriteString(" -> ")
	}
	b.WriteString(p.models[parent].ImportPath.String())
	return zerr.With(zerr.Wrap(ErrInheritanceCycle, "invalid inheritance"), "cycle", b.String())
}

// computeDescendants fills the transitive descendant index over the full graph.
// Children are visited after validateInheritance so the recursion terminates.
func (p *DiscoveredProject) computeDescendants() {
	p.descendants = make([][]int, len(p.models))
	done := make([]bool, len(p.models))

	var visit func(u int) []int
	visit = func(u int) []int {
		if done[u] {
			return p.descendants[u]
		}
		var out []int
		for _, child := range p.children[u] {
			out = append(out, child)
			out = append(out, visit(child)...)
		}
		slices.Sort(out)
		out = slices.Compact(out)
		p.descendants[u] = out
		done[u] = true
		return out
	}

	for i := range p.models {
		visit(i)
	}
}

// InstalledApps returns the sorted list of active module groups.
func (p *DiscoveredProject) InstalledApps() []string {
	return slices.Clone(p.installedApps)
}

// ModuleCount returns the number of discovered modules.
func (p *DiscoveredProject) ModuleCount() int {
	return len(p.modules)
}

// Modules yields every discovered module in import path order.
func (p *DiscoveredProject) Modules() iter.Seq[Module] {
	return func(yield func(Module) bool) {
		for _, m := range p.modules {
			if !yield(m) {
				return
			}
		}
	}
}

// Module returns the module with the given import path.
func (p *DiscoveredProject) Module(path ImportPath) (Module, bool) {
	idx, ok := p.moduleIndex[path]
	if !ok {
		return Module{}, false
	}
	return p.modules[idx], true
}

// Model returns the model with the given import path.
func (p *DiscoveredProject) Model(path ImportPath) (Model, bool) {
	idx, ok := p.modelIndex[path]
	if !ok {
		return Model{}, false
	}
	return p.models[idx], true
}

// ModelsIn returns the models defined by a module, in import path order.
func (p *DiscoveredProject) ModelsIn(module ImportPath) []Model {
	idx, ok := p.moduleIndex[module]
	if !ok {
		return nil
	}
	out := make([]Model, 0, len(p.moduleModels[idx]))
	for _, m := range p.moduleModels[idx] {
		out = append(out, p.models[m])
	}
	return out
}

// ConcreteDescendants returns the concrete models that can stand in for the given model:
// the model itself when it is concrete, and every concrete descendant. Only models whose
// module is installed are kept. The closure is computed over the full graph first, so toggling
// a module changes visibility without changing the graph.
func (p *DiscoveredProject) ConcreteDescendants(path ImportPath) []Model {
	idx, ok := p.modelIndex[path]
	if !ok {
		return nil
	}

	candidates := make([]int, 0, len(p.descendants[idx])+1)
	candidates = append(candidates, idx)
	candidates = append(candidates, p.descendants[idx]...)
	slices.Sort(candidates)

	out := make([]Model, 0, len(candidates))
	for _, c := range slices.Compact(candidates) {
		if p.models[c].IsAbstract || !p.installed(c) {
			continue
		}
		out = append(out, p.models[c])
	}
	return out
}

// RelatedModels returns every model path a module's artifact depends on: the models it defines,
// the models those point at or are pointed at by, the ancestors of the defined models, and the visible concrete
// descendants of all of them. The result is sorted and never nil.
func (p *DiscoveredProject) RelatedModels(module ImportPath) []ImportPath {
	modIdx, ok := p.moduleIndex[module]
	if !ok {
		return []ImportPath{}
	}

	seen := make(map[int]struct{})
	var direct []int
	for _, m := range p.moduleModels[modIdx] {
		direct = append(direct, m)
		direct = append(direct, p.related[m]...)
		direct = append(direct, p.relatedFrom[m]...)
		for _, a := range p.ancestors(m) {
			seen[a] = struct{}{}
		}
	}
	for _, m := range direct {
		seen[m] = struct{}{}
		for _, d := range p.descendants[m] {
			if !p.models[d].IsAbstract && p.installed(d) {
				seen[d] = struct{}{}
			}
		}
	}

	out := make([]ImportPath, 0, len(seen))
	for _, idx := range slices.Sorted(maps.Keys(seen)) {
		out = append(out, p.models[idx].ImportPath)
	}
	return out
}

func (p *DiscoveredProject) ancestors(u int) []int {
	var out []int
	stack := slices.Clone(p.parents[u])
	seen := make(map[int]bool)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[top] {
			continue
		}
		seen[top] = true
		out = append(out, top)
		stack = append(stack, p.parents[top]...)
	}
	return out
}

func (p *DiscoveredProject) installed(modelIdx int) bool {
	modIdx := p.moduleIndex[p.models[modelIdx].Module]
	return p.modules[modIdx].Installed
}

// ModelPaths maps models to their import paths, preserving order.
func ModelPaths(models []Model) []ImportPath {
	out := make([]ImportPath, len(models))
	for i, m := range models {
		out[i] = m.ImportPath
	}
	return out
}
