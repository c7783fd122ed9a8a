package domain

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies the content of the project. Projects built from equal discovery
// output have equal fingerprints, whatever the order of the input.
func (p *DiscoveredProject) Fingerprint() string {
	return p.fingerprint
}

func (p *DiscoveredProject) computeFingerprint() {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x00")
	}
	writeRefs := func(refs []int) {
		write(strconv.Itoa(len(refs)))
		for _, r := range refs {
			write(p.models[r].ImportPath.String())
		}
	}

	for _, app := range p.installedApps {
		write("app:" + app)
	}
	for _, m := range p.modules {
		write("module:" + m.ImportPath.String())
		write(m.Group)
		write(strconv.FormatBool(m.Installed))
		for _, name := range slices.Sorted(maps.Keys(m.DefinedModels)) {
			write(name + "=" + m.DefinedModels[name].String())
		}
	}
	for i, m := range p.models {
		write("model:" + m.ImportPath.String())
		write(m.Module.String())
		write(strconv.FormatBool(m.IsAbstract))
		write(m.DefaultCustomQuerySet.String())
		writeRefs(p.parents[i])
		writeRefs(p.related[i])
	}

	p.fingerprint = fmt.Sprintf("%016x", d.Sum64())
}
