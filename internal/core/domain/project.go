// Package domain contains the core domain models for the virtual dependency engine.
package domain

import "strings"

// ImportPath is a dotted import path such as "django.contrib.auth.models.User".
type ImportPath string

// String returns the import path as a plain string.
func (p ImportPath) String() string {
	return string(p)
}

// Split separates the import path at its last dot.
// For "a.b.C" it returns ("a.b", "C"). A path without dots has an empty parent.
func (p ImportPath) Split() (ImportPath, string) {
	idx := strings.LastIndexByte(string(p), '.')
	if idx < 0 {
		return "", string(p)
	}
	return p[:idx], string(p[idx+1:])
}

// Name returns the last segment of the import path.
func (p ImportPath) Name() string {
	_, name := p.Split()
	return name
}

// Module is a real module that may define models.
// It is owned by discovery and read-only to the engine.
type Module struct {
	// ImportPath identifies the module.
	ImportPath ImportPath

	// Group is the module group (installed app) the module belongs to. It may be empty.
	Group string

	// Installed reports whether the module's group is active in the current configuration.
	Installed bool

	// DefinedModels maps model names to the import paths of models defined in this module.
	DefinedModels map[string]ImportPath
}

// Model is an entity (model class) participating in the inheritance graph.
type Model struct {
	// ImportPath identifies the model.
	ImportPath ImportPath

	// Module is the import path of the module defining the model.
	Module ImportPath

	// IsAbstract reports whether the model requires subclassing to be used.
	IsAbstract bool

	// Parents are the direct model ancestors of this model.
	Parents []ImportPath

	// Related are the models this model's fields and managers point at.
	Related []ImportPath

	// DefaultCustomQuerySet is the import path of a custom collection-accessor class, if any.
	DefaultCustomQuerySet ImportPath
}

// ProjectInput is the raw output of discovery used to build a DiscoveredProject.
type ProjectInput struct {
	// InstalledApps lists the module groups active in the current configuration.
	InstalledApps []string
	Modules       []Module
	Models        []Model
}

// Diagnostic records a recoverable problem found while computing a module's closure.
type Diagnostic struct {
	Module  ImportPath
	Model   ImportPath
	Message string
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	if d.Model == "" {
		return d.Module.String() + ": " + d.Message
	}
	return d.Module.String() + ": " + d.Model.String() + ": " + d.Message
}

// ProjectConfig is a loaded project description: where to publish and what discovery found.
type ProjectConfig struct {
	// Namespace is the synthetic package virtual dependencies are named under.
	Namespace string

	// Destination is the directory virtual dependencies are published into.
	Destination string

	// Input is the discovery output the class graph is built from.
	Input ProjectInput
}
