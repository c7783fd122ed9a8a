package domain

import (
	"iter"
	"maps"
	"slices"
)

// VirtualDependencySummary is the part of a virtual dependency that determines whether its
// rendered artifact changed. Two runs over an unchanged project produce equal summaries.
type VirtualDependencySummary struct {
	// VirtualDependencyName is the synthetic import path of the artifact.
	VirtualDependencyName ImportPath

	// ModuleImportPath is the real module the artifact describes.
	ModuleImportPath ImportPath

	// InstalledAppsHash fingerprints the active module groups.
	InstalledAppsHash string

	// SignificantInfo lists the facts that, when changed, must change the artifact.
	SignificantInfo []string
}

// ConcreteModelsMap maps a model to the ordered concrete models that can stand in for it.
// Entries are never empty.
type ConcreteModelsMap map[ImportPath][]Model

// Sorted yields the entries in import path order.
func (m ConcreteModelsMap) Sorted() iter.Seq2[ImportPath, []Model] {
	return func(yield func(ImportPath, []Model) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// VirtualDependency is the per-module record rendered into one artifact.
type VirtualDependency struct {
	Module                  Module
	Summary                 VirtualDependencySummary
	ConcreteModels          ConcreteModelsMap
	AllRelatedModels        []ImportPath
	InterfaceDifferentiator string
}

// VirtualDependencyMap holds one virtual dependency per real module and remembers insertion order.
type VirtualDependencyMap struct {
	keys   []ImportPath
	values map[ImportPath]VirtualDependency
}

// NewVirtualDependencyMap creates an empty map sized for n modules.
func NewVirtualDependencyMap(n int) *VirtualDependencyMap {
	return &VirtualDependencyMap{
		keys:   make([]ImportPath, 0, n),
		values: make(map[ImportPath]VirtualDependency, n),
	}
}

// Set stores the virtual dependency for a module, replacing any earlier value in place.
func (m *VirtualDependencyMap) Set(module ImportPath, vd VirtualDependency) {
	if _, exists := m.values[module]; !exists {
		m.keys = append(m.keys, module)
	}
	m.values[module] = vd
}

// Get returns the virtual dependency for a module.
func (m *VirtualDependencyMap) Get(module ImportPath) (VirtualDependency, bool) {
	vd, ok := m.values[module]
	return vd, ok
}

// Len returns the number of modules in the map.
func (m *VirtualDependencyMap) Len() int {
	return len(m.keys)
}

// Keys returns the module import paths in insertion order.
func (m *VirtualDependencyMap) Keys() []ImportPath {
	return slices.Clone(m.keys)
}

// All yields every entry in insertion order.
func (m *VirtualDependencyMap) All() iter.Seq2[ImportPath, VirtualDependency] {
	return func(yield func(ImportPath, VirtualDependency) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// WrittenVirtualDependency is the rendering output for one module, consumed by the installer.
type WrittenVirtualDependency struct {
	Content           string
	SummaryHash       string
	Report            *Report
	VirtualImportPath ImportPath
}
