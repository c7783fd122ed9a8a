package scribe_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdep/internal/adapters/scribe"
	"go.trai.ch/vdep/internal/core/domain"
)

var (
	child1 = domain.Model{ImportPath: "myapp.models.Child1", Module: "myapp.models"}
	child3 = domain.Model{
		ImportPath:            "otherapp.models.Child3",
		Module:                "otherapp.models",
		DefaultCustomQuerySet: "otherapp.querysets.Child3QuerySet",
	}
)

func modelsDependency() domain.VirtualDependency {
	return domain.VirtualDependency{
		Module: domain.Module{ImportPath: "myapp.models", Installed: true},
		Summary: domain.VirtualDependencySummary{
			VirtualDependencyName: "__virtual__.mod_1",
			ModuleImportPath:      "myapp.models",
			InstalledAppsHash:     "apps",
			SignificantInfo:       []string{"module:myapp.models"},
		},
		ConcreteModels: domain.ConcreteModelsMap{
			"myapp.models.Parent": {child1, child3},
			"myapp.models.Child2": {child3},
		},
		InterfaceDifferentiator: "run-1",
	}
}

func emptyDependency() domain.VirtualDependency {
	return domain.VirtualDependency{
		Module: domain.Module{ImportPath: "empty.models", Installed: true},
		Summary: domain.VirtualDependencySummary{
			VirtualDependencyName: "__virtual__.mod_2",
			ModuleImportPath:      "empty.models",
		},
		ConcreteModels: domain.ConcreteModelsMap{},
	}
}

func TestRender_Golden(t *testing.T) {
	tests := []struct {
		name       string
		vd         domain.VirtualDependency
		hash       string
		goldenName string
	}{
		{
			name:       "module with concrete models",
			vd:         modelsDependency(),
			hash:       "0123456789abcdef",
			goldenName: "render_models",
		},
		{
			name:       "module without models",
			vd:         emptyDependency(),
			hash:       "0000000000000000",
			goldenName: "render_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(scribe.Render(tt.vd, tt.hash)))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	vd := modelsDependency()
	assert.Equal(t, scribe.Render(vd, "h"), scribe.Render(modelsDependency(), "h"))
}

func TestSummaryHash(t *testing.T) {
	base := modelsDependency()
	hash := scribe.SummaryHash(base)
	assert.Len(t, hash, 16)
	assert.Equal(t, hash, scribe.SummaryHash(modelsDependency()))

	changedInfo := modelsDependency()
	changedInfo.Summary.SignificantInfo = append(changedInfo.Summary.SignificantInfo, "installed:false")
	assert.NotEqual(t, hash, scribe.SummaryHash(changedInfo))

	changedDiff := modelsDependency()
	changedDiff.InterfaceDifferentiator = "run-2"
	assert.NotEqual(t, hash, scribe.SummaryHash(changedDiff))

	changedApps := modelsDependency()
	changedApps.Summary.InstalledAppsHash = "other"
	assert.NotEqual(t, hash, scribe.SummaryHash(changedApps))

	// Rendered content changes even when a finder reports the same significant info.
	changedModels := modelsDependency()
	changedModels.ConcreteModels["myapp.models.Parent"] = []domain.Model{child1}
	assert.NotEqual(t, hash, scribe.SummaryHash(changedModels))

	changedQuerySet := modelsDependency()
	other := child3
	other.DefaultCustomQuerySet = "otherapp.querysets.OtherQuerySet"
	changedQuerySet.ConcreteModels["myapp.models.Child2"] = []domain.Model{other}
	assert.NotEqual(t, hash, scribe.SummaryHash(changedQuerySet))
}

func TestQuerySetFor(t *testing.T) {
	assert.Equal(t, "django.db.models.QuerySet[myapp.models.Child1]", scribe.QuerySetFor(child1))
	assert.Equal(t, "otherapp.querysets.Child3QuerySet", scribe.QuerySetFor(child3))
}

func TestFactory_DeployScribes(t *testing.T) {
	deps := domain.NewVirtualDependencyMap(2)
	deps.Set("myapp.models", modelsDependency())
	deps.Set("empty.models", emptyDependency())

	var written []domain.WrittenVirtualDependency
	for w, err := range scribe.NewFactory().DeployScribes(deps) {
		require.NoError(t, err)
		written = append(written, w)
	}
	require.Len(t, written, 2)

	first := written[0]
	assert.Equal(t, domain.ImportPath("__virtual__.mod_1"), first.VirtualImportPath)
	assert.Equal(t, scribe.SummaryHash(modelsDependency()), first.SummaryHash)
	assert.Contains(t, first.Content, `summary = "`+first.SummaryHash+`"`)
	assert.Equal(t,
		map[domain.ImportPath]domain.ImportPath{"myapp.models": "__virtual__.mod_1"},
		first.Report.Modules(),
	)
	reg := first.Report.Models()["myapp.models.Parent"]
	assert.Equal(t, "Concrete__Parent", reg.ConcreteName)
	assert.Equal(t, "ConcreteQuerySet__Parent", reg.ConcreteQuerySetName)
	assert.Equal(t, []domain.ImportPath{"myapp.models.Child1", "otherapp.models.Child3"}, reg.ConcreteModels)

	assert.Equal(t, domain.ImportPath("__virtual__.mod_2"), written[1].VirtualImportPath)
	assert.Empty(t, written[1].Report.Models())
}

func TestFactory_DeployScribes_StopsEarly(t *testing.T) {
	deps := domain.NewVirtualDependencyMap(2)
	deps.Set("myapp.models", modelsDependency())
	deps.Set("empty.models", emptyDependency())

	count := 0
	for range scribe.NewFactory().DeployScribes(deps) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestFactory_DeployScribes_MissingName(t *testing.T) {
	vd := emptyDependency()
	vd.Summary.VirtualDependencyName = ""
	deps := domain.NewVirtualDependencyMap(1)
	deps.Set("empty.models", vd)

	var errs []error
	for _, err := range scribe.NewFactory().DeployScribes(deps) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrInconsistentDiscovery)
}

func TestCombiner_Combine(t *testing.T) {
	deps := domain.NewVirtualDependencyMap(1)
	deps.Set("myapp.models", modelsDependency())

	var reports []*domain.Report
	for w, err := range scribe.NewFactory().DeployScribes(deps) {
		require.NoError(t, err)
		reports = append(reports, w.Report)
	}

	combined := scribe.Combiner{}.Combine(reports)
	assert.Equal(t,
		map[domain.ImportPath]string{"myapp.models.Child2": "__virtual__.mod_1.Concrete__Child2"},
		combined.ConcreteAliases("myapp.models.Child2"),
	)
}
