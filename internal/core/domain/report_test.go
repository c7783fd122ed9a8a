package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdep/internal/core/domain"
)

func reportFor(module, virtual domain.ImportPath, regs ...domain.ModelRegistration) *domain.Report {
	r := domain.NewReport()
	r.RegisterModule(module, virtual)
	for _, reg := range regs {
		reg.VirtualImportPath = virtual
		r.RegisterModel(reg)
	}
	return r
}

func sampleReports() (*domain.Report, *domain.Report) {
	a := reportFor("myapp.models", "__virtual__.mod_1", domain.ModelRegistration{
		Model:                "myapp.models.Parent",
		ConcreteName:         "Concrete__Parent",
		ConcreteQuerySetName: "ConcreteQuerySet__Parent",
		ConcreteModels:       []domain.ImportPath{"otherapp.models.Child3", "myapp.models.Child1"},
	})
	b := reportFor("otherapp.models", "__virtual__.mod_2", domain.ModelRegistration{
		Model:                "otherapp.models.Child3",
		ConcreteName:         "Concrete__Child3",
		ConcreteQuerySetName: "ConcreteQuerySet__Child3",
		ConcreteModels:       []domain.ImportPath{"otherapp.models.Child3"},
	})
	return a, b
}

func TestCombine_OrderIndependent(t *testing.T) {
	a, b := sampleReports()

	ab := domain.Combine([]*domain.Report{a, b})
	ba := domain.Combine([]*domain.Report{b, a})
	assert.Equal(t, ab, ba)
}

func TestCombine_ConflictKeepsSmallest(t *testing.T) {
	first := reportFor("shared.models", "__virtual__.mod_9", domain.ModelRegistration{
		Model:        "shared.models.Thing",
		ConcreteName: "Concrete__Thing",
	})
	second := reportFor("shared.models", "__virtual__.mod_1", domain.ModelRegistration{
		Model:        "shared.models.Thing",
		ConcreteName: "Concrete__Thing",
	})

	for _, order := range [][]*domain.Report{{first, second}, {second, first}} {
		combined := domain.Combine(order)
		assert.Equal(t, domain.ImportPath("__virtual__.mod_1"), combined.ReportImportPath["shared.models"])
		assert.Equal(t, "__virtual__.mod_1.Concrete__Thing", combined.ConcreteAnnotations["shared.models.Thing"])
	}
}

func TestCombinedReport_Aliases(t *testing.T) {
	a, b := sampleReports()
	combined := domain.Combine([]*domain.Report{a, b, nil})

	concrete := combined.ConcreteAliases("myapp.models.Parent", "missing.models.Nope")
	assert.Equal(t, map[domain.ImportPath]string{
		"myapp.models.Parent": "__virtual__.mod_1.Concrete__Parent",
		"missing.models.Nope": "",
	}, concrete)

	querySets := combined.QuerySetAliases("otherapp.models.Child3")
	assert.Equal(t, map[domain.ImportPath]string{
		"otherapp.models.Child3": "__virtual__.mod_2.ConcreteQuerySet__Child3",
	}, querySets)

	assert.Equal(t,
		[]domain.ImportPath{"myapp.models.Child1", "otherapp.models.Child3"},
		combined.ConcreteModels["myapp.models.Parent"],
	)

	assert.Empty(t, combined.ConcreteAliases())
}

func TestCombinedReport_AdditionalDeps(t *testing.T) {
	a, b := sampleReports()
	combined := domain.Combine([]*domain.Report{a, b})

	deps := combined.AdditionalDeps("myapp.models", []domain.ImportPath{
		"otherapp.models.Child3",
		"django.db.models",
		"otherapp.models",
	})
	assert.Equal(t, []domain.ImportPath{"__virtual__.mod_1", "__virtual__.mod_2"}, deps)

	assert.Empty(t, combined.AdditionalDeps("unknown", nil))
}

func TestCombinedReport_JSONRoundTrip(t *testing.T) {
	a, b := sampleReports()
	combined := domain.Combine([]*domain.Report{a, b})

	data, err := json.Marshal(combined)
	require.NoError(t, err)

	var loaded domain.CombinedReport
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, combined, &loaded)
}

func TestReport_RegisterModelCopiesInput(t *testing.T) {
	models := []domain.ImportPath{"a.models.A"}
	r := domain.NewReport()
	r.RegisterModel(domain.ModelRegistration{Model: "a.models.A", ConcreteModels: models})
	models[0] = "changed"

	assert.Equal(t, []domain.ImportPath{"a.models.A"}, r.Models()["a.models.A"].ConcreteModels)
	assert.Empty(t, r.Modules())
}
