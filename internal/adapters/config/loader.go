// Package config provides the project file loader for vdep.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the project file at configPath and returns the project description.
// A relative destination is resolved against the directory of the project file.
func (l *Loader) Load(configPath string) (*domain.ProjectConfig, error) {
	var pf Projectfile
	if err := readAndUnmarshalYAML(configPath, &pf); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if pf.Version != supportedVersion {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigVersion, "cannot load project file"),
			"version", pf.Version)
		return nil, zerr.With(err, "path", configPath)
	}

	namespace := pf.Namespace
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	destination := pf.Destination
	if destination == "" {
		destination = domain.DefaultDestination
	}

	return &domain.ProjectConfig{
		Namespace:   namespace,
		Destination: resolveRoot(configPath, destination),
		Input:       l.buildInput(&pf),
	}, nil
}

func (l *Loader) buildInput(pf *Projectfile) domain.ProjectInput {
	installed := make(map[string]bool, len(pf.InstalledApps))
	apps := make([]string, 0, len(pf.InstalledApps))
	for _, app := range pf.InstalledApps {
		if installed[app] {
			l.Logger.Warn(fmt.Sprintf("installed app %q is listed more than once", app))
			continue
		}
		installed[app] = true
		apps = append(apps, app)
	}

	in := domain.ProjectInput{
		InstalledApps: apps,
		Modules:       make([]domain.Module, 0, len(pf.Modules)),
	}

	for _, modulePath := range slices.Sorted(maps.Keys(pf.Modules)) {
		dto := pf.Modules[modulePath]
		if dto == nil {
			dto = &ModuleDTO{}
		}
		module := domain.ImportPath(modulePath)

		group := dto.Group
		if group == "" {
			parent, _ := module.Split()
			group = parent.String()
		}

		defined := make(map[string]domain.ImportPath, len(dto.Models))
		for _, name := range slices.Sorted(maps.Keys(dto.Models)) {
			model := dto.Models[name]
			if model == nil {
				model = &ModelDTO{}
			}
			path := domain.ImportPath(modulePath + "." + name)
			defined[name] = path
			in.Models = append(in.Models, domain.Model{
				ImportPath:            path,
				Module:                module,
				IsAbstract:            model.Abstract,
				Parents:               toImportPaths(model.Parents),
				Related:               toImportPaths(model.Related),
				DefaultCustomQuerySet: domain.ImportPath(model.QuerySet),
			})
		}

		in.Modules = append(in.Modules, domain.Module{
			ImportPath:    module,
			Group:         group,
			Installed:     installed[group],
			DefinedModels: defined,
		})
	}

	return in
}

func toImportPaths(paths []string) []domain.ImportPath {
	if len(paths) == 0 {
		return nil
	}
	out := make([]domain.ImportPath, len(paths))
	for i, p := range paths {
		out[i] = domain.ImportPath(p)
	}
	return out
}

// resolveRoot resolves the configured path relative to the project file directory.
func resolveRoot(configPath, configuredRoot string) string {
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
