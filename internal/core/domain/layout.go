package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ProjectFileName is the name of the project description file.
	ProjectFileName = "vdep.yaml"

	// DefaultNamespace is the synthetic namespace used when none is configured.
	DefaultNamespace = "__virtual__"

	// DefaultDestination is the directory virtual dependencies are published into.
	DefaultDestination = ".vdep"

	// ReportFileName is the name of the persisted combined report in the destination.
	ReportFileName = "report.json"

	// StubExtension is the file extension of rendered virtual dependencies.
	StubExtension = ".pyi"

	// SummaryExtension is appended to a rendered file name to store its summary hash.
	SummaryExtension = ".summary"

	// ScratchPattern is the pattern for scratch directories created next to the destination.
	ScratchPattern = ".vdep-scratch-*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// VirtualFilePath returns the path of a virtual dependency relative to a root directory.
// The namespace segments become directories, so "__virtual__.mod_1" maps to "__virtual__/mod_1.pyi".
func VirtualFilePath(root string, virtualImportPath ImportPath) string {
	segments := strings.Split(virtualImportPath.String(), ".")
	segments[len(segments)-1] += StubExtension
	return filepath.Join(append([]string{root}, segments...)...)
}

// SummaryFilePath returns the sidecar path holding the summary hash of a virtual dependency.
func SummaryFilePath(root string, virtualImportPath ImportPath) string {
	return VirtualFilePath(root, virtualImportPath) + SummaryExtension
}

// ReportFilePath returns the path of the combined report inside a root directory.
func ReportFilePath(root string) string {
	return filepath.Join(root, ReportFileName)
}
