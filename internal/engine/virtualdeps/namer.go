// Package virtualdeps builds and installs virtual dependencies: one synthetic module per real
// module describing the concrete models that can stand in for each of its models.
package virtualdeps

import (
	"fmt"
	"hash/adler32"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vdep/internal/core/domain"
)

// Checksum maps a real import path to the suffix of its synthetic module name.
type Checksum func(path domain.ImportPath) string

// Adler32Checksum is the reference checksum: Adler-32 of the import path printed in decimal.
func Adler32Checksum(path domain.ImportPath) string {
	return strconv.FormatUint(uint64(adler32.Checksum([]byte(path))), 10)
}

// XXHashChecksum is a 64-bit checksum for projects large enough to collide under Adler-32.
func XXHashChecksum(path domain.ImportPath) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(string(path)))
}

// Namer gives every real module a deterministic synthetic import path.
type Namer struct {
	Namespace string
	Checksum  Checksum
}

// NewNamer creates a Namer. A nil checksum selects Adler32Checksum.
func NewNamer(namespace string, checksum Checksum) Namer {
	if checksum == nil {
		checksum = Adler32Checksum
	}
	return Namer{Namespace: namespace, Checksum: checksum}
}

// Name returns the synthetic import path for a real module.
func (n Namer) Name(path domain.ImportPath) domain.ImportPath {
	return domain.ImportPath(n.Namespace + ".mod_" + n.Checksum(path))
}
