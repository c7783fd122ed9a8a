package virtualdeps_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/vdep/internal/core/domain"
)

// project builds:
//
//	base.models.Animal (abstract)
//	├── zoo.models.Cat
//	└── farm.models.Cow
//	zoo.models.Keeper points at base.models.Animal
//	lonely.models defines nothing
func project(t *testing.T, installed ...string) *domain.DiscoveredProject {
	t.Helper()
	if installed == nil {
		installed = []string{"base", "zoo", "farm", "lonely"}
	}
	in := func(group string) bool { return slices.Contains(installed, group) }

	p, err := domain.NewDiscoveredProject(domain.ProjectInput{
		InstalledApps: installed,
		Modules: []domain.Module{
			{
				ImportPath:    "base.models",
				Group:         "base",
				Installed:     in("base"),
				DefinedModels: map[string]domain.ImportPath{"Animal": "base.models.Animal"},
			},
			{
				ImportPath: "zoo.models",
				Group:      "zoo",
				Installed:  in("zoo"),
				DefinedModels: map[string]domain.ImportPath{
					"Cat":    "zoo.models.Cat",
					"Keeper": "zoo.models.Keeper",
				},
			},
			{
				ImportPath:    "farm.models",
				Group:         "farm",
				Installed:     in("farm"),
				DefinedModels: map[string]domain.ImportPath{"Cow": "farm.models.Cow"},
			},
			{ImportPath: "lonely.models", Group: "lonely", Installed: in("lonely")},
		},
		Models: []domain.Model{
			{ImportPath: "base.models.Animal", Module: "base.models", IsAbstract: true},
			{ImportPath: "zoo.models.Cat", Module: "zoo.models", Parents: []domain.ImportPath{"base.models.Animal"}},
			{ImportPath: "farm.models.Cow", Module: "farm.models", Parents: []domain.ImportPath{"base.models.Animal"}},
			{ImportPath: "zoo.models.Keeper", Module: "zoo.models", Related: []domain.ImportPath{"base.models.Animal"}},
		},
	})
	require.NoError(t, err)
	return p
}
