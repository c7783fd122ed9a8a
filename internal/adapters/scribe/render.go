// Package scribe renders virtual dependencies into importable stub files.
package scribe

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vdep/internal/core/domain"
)

const (
	// ConcretePrefix prefixes the alias holding the union of concrete models.
	ConcretePrefix = "Concrete__"

	// ConcreteQuerySetPrefix prefixes the alias holding the union of concrete querysets.
	ConcreteQuerySetPrefix = "ConcreteQuerySet__"

	// DefaultQuerySet is the queryset used for models without a custom queryset.
	DefaultQuerySet = "django.db.models.QuerySet"

	header = "# Generated by vdep. Do not edit.\n"

	// rendererVersion changes whenever Render produces different output for the same input.
	rendererVersion = "1"
)

// SummaryHash fingerprints everything Render reads from a virtual dependency: the summary,
// the concrete models with their querysets, the differentiator and the renderer version.
// Identical inputs give identical hashes across runs and machines.
func SummaryHash(vd domain.VirtualDependency) string {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x00")
	}

	write(vd.Summary.VirtualDependencyName.String())
	write(vd.Summary.ModuleImportPath.String())
	write(vd.Summary.InstalledAppsHash)
	for _, info := range vd.Summary.SignificantInfo {
		write(info)
	}
	write(vd.InterfaceDifferentiator)
	for model, concrete := range vd.ConcreteModels.Sorted() {
		for _, c := range concrete {
			write(model.String() + ">" + c.ImportPath.String() + "|" + QuerySetFor(c))
		}
	}
	write("renderer:" + rendererVersion)

	return fmt.Sprintf("%016x", d.Sum64())
}

// ConcreteName returns the concrete alias name for a model.
func ConcreteName(model domain.ImportPath) string {
	return ConcretePrefix + model.Name()
}

// ConcreteQuerySetName returns the concrete queryset alias name for a model.
func ConcreteQuerySetName(model domain.ImportPath) string {
	return ConcreteQuerySetPrefix + model.Name()
}

// QuerySetFor returns the queryset expression of a concrete model.
func QuerySetFor(model domain.Model) string {
	if model.DefaultCustomQuerySet != "" {
		return model.DefaultCustomQuerySet.String()
	}
	return DefaultQuerySet + "[" + model.ImportPath.String() + "]"
}

// Render produces the stub content for a virtual dependency.
// The output is a pure function of its arguments.
func Render(vd domain.VirtualDependency, summaryHash string) string {
	imports := make([]string, 0, len(vd.ConcreteModels))
	var aliases strings.Builder

	for model, concrete := range vd.ConcreteModels.Sorted() {
		models := make([]string, 0, len(concrete))
		querySets := make([]string, 0, len(concrete))
		for _, c := range concrete {
			module, _ := c.ImportPath.Split()
			imports = append(imports, module.String())
			models = append(models, c.ImportPath.String())

			if c.DefaultCustomQuerySet != "" {
				qsModule, _ := c.DefaultCustomQuerySet.Split()
				imports = append(imports, qsModule.String())
			} else {
				imports = append(imports, strings.TrimSuffix(DefaultQuerySet, ".QuerySet"))
			}
			querySets = append(querySets, QuerySetFor(c))
		}

		aliases.WriteString("\n")
		aliases.WriteString(ConcreteName(model) + " = " + strings.Join(models, " | ") + "\n")
		aliases.WriteString(ConcreteQuerySetName(model) + " = " + strings.Join(querySets, " | ") + "\n")
	}

	slices.Sort(imports)
	imports = slices.Compact(imports)

	var b strings.Builder
	b.WriteString(header)
	if len(imports) > 0 {
		b.WriteString("\n")
		for _, imp := range imports {
			if imp == "" {
				continue
			}
			b.WriteString("import " + imp + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString("mod = \"" + vd.Summary.ModuleImportPath.String() + "\"\n")
	b.WriteString("summary = \"" + summaryHash + "\"\n")
	if vd.InterfaceDifferentiator != "" {
		b.WriteString("\n")
		b.WriteString("def interface__" + sanitize(vd.InterfaceDifferentiator) + "() -> None: ...\n")
	}
	b.WriteString(aliases.String())

	return b.String()
}

// sanitize replaces every character that cannot appear in an identifier with an underscore.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
