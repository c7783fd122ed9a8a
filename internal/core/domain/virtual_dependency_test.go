package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdep/internal/core/domain"
)

func TestVirtualDependencyMap_PreservesInsertionOrder(t *testing.T) {
	m := domain.NewVirtualDependencyMap(3)
	m.Set("b", domain.VirtualDependency{InterfaceDifferentiator: "1"})
	m.Set("a", domain.VirtualDependency{InterfaceDifferentiator: "2"})
	m.Set("b", domain.VirtualDependency{InterfaceDifferentiator: "3"})

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []domain.ImportPath{"b", "a"}, m.Keys())

	var seen []string
	for _, vd := range m.All() {
		seen = append(seen, vd.InterfaceDifferentiator)
	}
	assert.Equal(t, []string{"3", "2"}, seen)

	vd, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", vd.InterfaceDifferentiator)

	_, ok = m.Get("c")
	assert.False(t, ok)
}

func TestConcreteModelsMap_Sorted(t *testing.T) {
	m := domain.ConcreteModelsMap{
		"z.models.Z": {{ImportPath: "z.models.Z"}},
		"a.models.A": {{ImportPath: "a.models.A"}},
	}

	var keys []domain.ImportPath
	for k := range m.Sorted() {
		keys = append(keys, k)
	}
	assert.Equal(t, []domain.ImportPath{"a.models.A", "z.models.Z"}, keys)
}
