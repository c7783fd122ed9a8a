package config

// Projectfile represents the structure of the vdep.yaml configuration file.
type Projectfile struct {
	Version       string                `yaml:"version"`
	Namespace     string                `yaml:"namespace"`
	Destination   string                `yaml:"destination"`
	InstalledApps []string              `yaml:"installed_apps"`
	Modules       map[string]*ModuleDTO `yaml:"modules"`
}

// ModuleDTO represents a module definition in the configuration.
// Group defaults to the module path without its last segment.
type ModuleDTO struct {
	Group  string               `yaml:"group"`
	Models map[string]*ModelDTO `yaml:"models"`
}

// ModelDTO represents a model definition in the configuration.
type ModelDTO struct {
	Abstract bool     `yaml:"abstract"`
	Parents  []string `yaml:"parents"`
	Related  []string `yaml:"related"`
	QuerySet string   `yaml:"queryset"`
}
