package domain_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/zerr"
)

// fixtureInput describes a small project:
//
//	myapp.models.Parent (abstract)
//	├── myapp.models.Child1
//	├── myapp.models.Child2 (abstract)
//	│   └── otherapp.models.Child3
//	└── leftover.models.Child4 (module not installed)
func fixtureInput(installed ...string) domain.ProjectInput {
	if installed == nil {
		installed = []string{"myapp", "otherapp", "empty"}
	}
	isInstalled := func(group string) bool { return slices.Contains(installed, group) }

	return domain.ProjectInput{
		InstalledApps: installed,
		Modules: []domain.Module{
			{
				ImportPath: "myapp.models",
				Group:      "myapp",
				Installed:  isInstalled("myapp"),
				DefinedModels: map[string]domain.ImportPath{
					"Parent": "myapp.models.Parent",
					"Child1": "myapp.models.Child1",
					"Child2": "myapp.models.Child2",
				},
			},
			{
				ImportPath: "otherapp.models",
				Group:      "otherapp",
				Installed:  isInstalled("otherapp"),
				DefinedModels: map[string]domain.ImportPath{
					"Child3":    "otherapp.models.Child3",
					"Unrelated": "otherapp.models.Unrelated",
				},
			},
			{
				ImportPath: "leftover.models",
				Group:      "leftover",
				Installed:  isInstalled("leftover"),
				DefinedModels: map[string]domain.ImportPath{
					"Child4": "leftover.models.Child4",
				},
			},
			{
				ImportPath: "empty.models",
				Group:      "empty",
				Installed:  isInstalled("empty"),
			},
		},
		Models: []domain.Model{
			{ImportPath: "myapp.models.Parent", Module: "myapp.models", IsAbstract: true},
			{
				ImportPath: "myapp.models.Child1",
				Module:     "myapp.models",
				Parents:    []domain.ImportPath{"myapp.models.Parent"},
				Related:    []domain.ImportPath{"otherapp.models.Unrelated"},
			},
			{
				ImportPath: "myapp.models.Child2",
				Module:     "myapp.models",
				IsAbstract: true,
				Parents:    []domain.ImportPath{"myapp.models.Parent"},
			},
			{
				ImportPath:            "otherapp.models.Child3",
				Module:                "otherapp.models",
				Parents:               []domain.ImportPath{"myapp.models.Child2"},
				DefaultCustomQuerySet: "otherapp.querysets.Child3QuerySet",
			},
			{
				ImportPath: "otherapp.models.Unrelated",
				Module:     "otherapp.models",
				Related:    []domain.ImportPath{"myapp.models.Child1"},
			},
			{
				ImportPath: "leftover.models.Child4",
				Module:     "leftover.models",
				Parents:    []domain.ImportPath{"myapp.models.Parent"},
			},
		},
	}
}

func mustProject(t *testing.T, in domain.ProjectInput) *domain.DiscoveredProject {
	t.Helper()
	project, err := domain.NewDiscoveredProject(in)
	require.NoError(t, err)
	return project
}

func TestDiscoveredProject_ConcreteDescendants(t *testing.T) {
	project := mustProject(t, fixtureInput())

	tests := []struct {
		name  string
		model domain.ImportPath
		want  []domain.ImportPath
	}{
		{
			name:  "abstract root skips uninstalled modules",
			model: "myapp.models.Parent",
			want:  []domain.ImportPath{"myapp.models.Child1", "otherapp.models.Child3"},
		},
		{
			name:  "concrete model includes itself",
			model: "myapp.models.Child1",
			want:  []domain.ImportPath{"myapp.models.Child1"},
		},
		{
			name:  "abstract model across modules",
			model: "myapp.models.Child2",
			want:  []domain.ImportPath{"otherapp.models.Child3"},
		},
		{
			name:  "concrete model in uninstalled module",
			model: "leftover.models.Child4",
			want:  []domain.ImportPath{},
		},
		{
			name:  "unknown model",
			model: "nope.models.Missing",
			want:  []domain.ImportPath{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ModelPaths(project.ConcreteDescendants(tt.model))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoveredProject_ConcreteDescendants_InstalledToggle(t *testing.T) {
	project := mustProject(t, fixtureInput("myapp", "otherapp", "empty", "leftover"))

	got := domain.ModelPaths(project.ConcreteDescendants("myapp.models.Parent"))
	assert.Equal(t, []domain.ImportPath{
		"leftover.models.Child4",
		"myapp.models.Child1",
		"otherapp.models.Child3",
	}, got)
}

func TestDiscoveredProject_RelatedModels(t *testing.T) {
	project := mustProject(t, fixtureInput())

	t.Run("module with models", func(t *testing.T) {
		got := project.RelatedModels("myapp.models")
		assert.Equal(t, []domain.ImportPath{
			"myapp.models.Child1",
			"myapp.models.Child2",
			"myapp.models.Parent",
			"otherapp.models.Child3",
			"otherapp.models.Unrelated",
		}, got)
	})

	t.Run("related cycles are allowed", func(t *testing.T) {
		got := project.RelatedModels("otherapp.models")
		assert.Equal(t, []domain.ImportPath{
			"myapp.models.Child1",
			"myapp.models.Child2",
			"myapp.models.Parent",
			"otherapp.models.Child3",
			"otherapp.models.Unrelated",
		}, got)
	})

	t.Run("module without models is empty not nil", func(t *testing.T) {
		got := project.RelatedModels("empty.models")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDiscoveredProject_RelatedModels_Reverse(t *testing.T) {
	project := mustProject(t, domain.ProjectInput{
		InstalledApps: []string{"admin", "contenttypes"},
		Modules: []domain.Module{
			{
				ImportPath:    "admin.models",
				Group:         "admin",
				Installed:     true,
				DefinedModels: map[string]domain.ImportPath{"LogEntry": "admin.models.LogEntry"},
			},
			{
				ImportPath:    "contenttypes.models",
				Group:         "contenttypes",
				Installed:     true,
				DefinedModels: map[string]domain.ImportPath{"ContentType": "contenttypes.models.ContentType"},
			},
		},
		Models: []domain.Model{
			{
				ImportPath: "admin.models.LogEntry",
				Module:     "admin.models",
				Related:    []domain.ImportPath{"contenttypes.models.ContentType"},
			},
			{ImportPath: "contenttypes.models.ContentType", Module: "contenttypes.models"},
		},
	})

	assert.Equal(t, []domain.ImportPath{
		"admin.models.LogEntry",
		"contenttypes.models.ContentType",
	}, project.RelatedModels("contenttypes.models"))
	assert.Equal(t, []domain.ImportPath{
		"admin.models.LogEntry",
		"contenttypes.models.ContentType",
	}, project.RelatedModels("admin.models"))
}

func TestDiscoveredProject_Accessors(t *testing.T) {
	project := mustProject(t, fixtureInput())

	assert.Equal(t, []string{"empty", "myapp", "otherapp"}, project.InstalledApps())
	assert.Equal(t, 4, project.ModuleCount())

	var order []domain.ImportPath
	for m := range project.Modules() {
		order = append(order, m.ImportPath)
	}
	assert.Equal(t, []domain.ImportPath{
		"empty.models", "leftover.models", "myapp.models", "otherapp.models",
	}, order)

	model, ok := project.Model("otherapp.models.Child3")
	require.True(t, ok)
	assert.Equal(t, domain.ImportPath("otherapp.querysets.Child3QuerySet"), model.DefaultCustomQuerySet)

	_, ok = project.Module("missing")
	assert.False(t, ok)

	assert.Equal(t, []domain.ImportPath{
		"myapp.models.Child1", "myapp.models.Child2", "myapp.models.Parent",
	}, domain.ModelPaths(project.ModelsIn("myapp.models")))
}

func TestNewDiscoveredProject_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *domain.ProjectInput)
		wantErr  error
		deferred bool
	}{
		{
			name: "undiscovered parent is deferred",
			mutate: func(in *domain.ProjectInput) {
				in.Models[1].Parents = append(in.Models[1].Parents, "later.models.Base")
			},
			wantErr:  domain.ErrDeferred,
			deferred: true,
		},
		{
			name: "undiscovered related model is deferred",
			mutate: func(in *domain.ProjectInput) {
				in.Models[4].Related = append(in.Models[4].Related, "later.models.Thing")
			},
			wantErr:  domain.ErrDeferred,
			deferred: true,
		},
		{
			name: "model in unknown module",
			mutate: func(in *domain.ProjectInput) {
				in.Models[0].Module = "ghost.models"
			},
			wantErr: domain.ErrInconsistentDiscovery,
		},
		{
			name: "installed app without module",
			mutate: func(in *domain.ProjectInput) {
				in.InstalledApps = append(in.InstalledApps, "ghost")
			},
			wantErr: domain.ErrModuleNotFound,
		},
		{
			name: "duplicate module",
			mutate: func(in *domain.ProjectInput) {
				in.Modules = append(in.Modules, domain.Module{ImportPath: "empty.models", Group: "empty"})
			},
			wantErr: domain.ErrDuplicateModule,
		},
		{
			name: "duplicate model",
			mutate: func(in *domain.ProjectInput) {
				in.Models = append(in.Models, domain.Model{ImportPath: "myapp.models.Parent", Module: "myapp.models"})
			},
			wantErr: domain.ErrDuplicateModel,
		},
		{
			name: "defined model owned by another module",
			mutate: func(in *domain.ProjectInput) {
				in.Modules[3].DefinedModels = map[string]domain.ImportPath{"Child1": "myapp.models.Child1"}
			},
			wantErr: domain.ErrInconsistentDiscovery,
		},
		{
			name: "inheritance cycle",
			mutate: func(in *domain.ProjectInput) {
				in.Models[0].Parents = []domain.ImportPath{"otherapp.models.Child3"}
			},
			wantErr: domain.ErrInheritanceCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fixtureInput()
			tt.mutate(&in)

			project, err := domain.NewDiscoveredProject(in)
			require.Error(t, err)
			assert.Nil(t, project)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.deferred, domain.IsDeferred(err))
		})
	}
}

func TestNewDiscoveredProject_CycleMetadata(t *testing.T) {
	in := fixtureInput()
	in.Models[0].Parents = []domain.ImportPath{"myapp.models.Child2"}

	_, err := domain.NewDiscoveredProject(in)
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	cycle, ok := zErr.Metadata()["cycle"].(string)
	require.True(t, ok)
	assert.Contains(t, cycle, "myapp.models.Child2")
	assert.Contains(t, cycle, "myapp.models.Parent")
}

func TestNewDiscoveredProject_DoesNotAliasInput(t *testing.T) {
	in := fixtureInput()
	project := mustProject(t, in)

	in.Models[1].Parents[0] = "changed"
	model, ok := project.Model("myapp.models.Child1")
	require.True(t, ok)
	assert.Equal(t, []domain.ImportPath{"myapp.models.Parent"}, model.Parents)
}

func TestDiscoveredProject_Fingerprint(t *testing.T) {
	first := mustProject(t, fixtureInput())
	assert.Len(t, first.Fingerprint(), 16)

	reordered := fixtureInput()
	slices.Reverse(reordered.Models)
	slices.Reverse(reordered.Modules)
	assert.Equal(t, first.Fingerprint(), mustProject(t, reordered).Fingerprint())

	toggled := mustProject(t, fixtureInput("myapp", "otherapp", "empty", "leftover"))
	assert.NotEqual(t, first.Fingerprint(), toggled.Fingerprint())

	changed := fixtureInput()
	changed.Models[0].IsAbstract = false
	assert.NotEqual(t, first.Fingerprint(), mustProject(t, changed).Fingerprint())
}
