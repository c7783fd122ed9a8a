// Package folder publishes virtual dependencies as a directory of stub files.
package folder

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportInstaller = (*Installer)(nil)

// Installer implements ports.ReportInstaller on the local file system.
//
// Scratch areas are created next to their destination so publishing is a rename on one file
// system. Files whose summary hash matches the published copy are hard-linked instead of
// rewritten.
type Installer struct {
	mu        sync.Mutex
	previous  map[string]string
	removeAll func(path string) error
}

// NewInstaller creates a new Installer.
func NewInstaller() *Installer {
	return &Installer{
		previous:  make(map[string]string),
		removeAll: os.RemoveAll,
	}
}

// PrepareScratch creates an empty scratch directory beside destination.
func (i *Installer) PrepareScratch(destination string) (string, error) {
	destination = filepath.Clean(destination)
	parent := filepath.Dir(destination)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", parent)
	}

	scratch, err := os.MkdirTemp(parent, domain.ScratchPattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", parent)
	}
	// The scratch directory becomes the destination, so it gets the published permissions.
	if err := os.Chmod(scratch, domain.DirPerm); err != nil {
		_ = os.Remove(scratch)
		return "", zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", scratch)
	}

	i.mu.Lock()
	i.previous[scratch] = destination
	i.mu.Unlock()

	return scratch, nil
}

// DiscardScratch removes a scratch directory and forgets it.
func (i *Installer) DiscardScratch(scratchRoot string) error {
	i.mu.Lock()
	delete(i.previous, scratchRoot)
	i.mu.Unlock()

	if err := i.removeAll(scratchRoot); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove scratch area"), "path", scratchRoot)
	}
	return nil
}

// WriteReport writes one rendered artifact and its summary sidecar into scratchRoot.
func (i *Installer) WriteReport(
	scratchRoot string,
	summaryHash string,
	virtualImportPath domain.ImportPath,
	content string,
) error {
	target := domain.VirtualFilePath(scratchRoot, virtualImportPath)
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", target)
	}

	if i.reuse(scratchRoot, summaryHash, virtualImportPath) {
		return nil
	}

	//nolint:gosec // Path is constructed from the scratch root and a synthetic module name
	if err := os.WriteFile(target, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", target)
	}

	if summaryHash == "" {
		return nil
	}
	summary := domain.SummaryFilePath(scratchRoot, virtualImportPath)
	//nolint:gosec // Path is constructed from the scratch root and a synthetic module name
	if err := os.WriteFile(summary, []byte(summaryHash), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", summary)
	}
	return nil
}

// reuse hard-links the published artifact into the scratch area when its summary is unchanged.
func (i *Installer) reuse(scratchRoot, summaryHash string, virtualImportPath domain.ImportPath) bool {
	if summaryHash == "" {
		return false
	}

	i.mu.Lock()
	published, ok := i.previous[scratchRoot]
	i.mu.Unlock()
	if !ok {
		return false
	}

	//nolint:gosec // Path is constructed from the destination and a synthetic module name
	recorded, err := os.ReadFile(domain.SummaryFilePath(published, virtualImportPath))
	if err != nil || !bytes.Equal(bytes.TrimSpace(recorded), []byte(summaryHash)) {
		return false
	}

	if err := os.Link(
		domain.VirtualFilePath(published, virtualImportPath),
		domain.VirtualFilePath(scratchRoot, virtualImportPath),
	); err != nil {
		return false
	}
	if err := os.Link(
		domain.SummaryFilePath(published, virtualImportPath),
		domain.SummaryFilePath(scratchRoot, virtualImportPath),
	); err != nil {
		_ = os.Remove(domain.VirtualFilePath(scratchRoot, virtualImportPath))
		return false
	}
	return true
}

// InstallReports replaces destination with scratchRoot in one step.
//
// A missing destination is created with a plain rename. An existing destination is swapped
// with the scratch area and the previous contents are removed afterwards. Readers observe
// either the old tree or the new one. Once the new tree is published the call succeeds; a
// previous tree that cannot be removed stays in scratchRoot for DiscardScratch.
func (i *Installer) InstallReports(scratchRoot, destination string) error {
	i.mu.Lock()
	delete(i.previous, scratchRoot)
	i.mu.Unlock()

	info, err := os.Stat(destination)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(destination), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "destination", destination)
		}
		if err := os.Rename(scratchRoot, destination); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "destination", destination)
		}
		return nil
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "destination", destination)
	case !info.IsDir():
		return zerr.With(domain.ErrDestinationNotDirectory, "destination", destination)
	}

	if err := exchange(scratchRoot, destination); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "destination", destination)
	}

	// scratchRoot now holds the previous tree.
	_ = i.removeAll(scratchRoot)
	return nil
}

// renameAside swaps two directories with two renames. It is used where an atomic exchange is
// not available; readers may briefly observe a missing destination. Once the new tree is in
// place it reports success even if the previous tree cannot be moved back into scratchRoot.
func renameAside(scratchRoot, destination string) error {
	aside := scratchRoot + ".previous"
	if err := os.Rename(destination, aside); err != nil {
		return err
	}
	if err := os.Rename(scratchRoot, destination); err != nil {
		if rbErr := os.Rename(aside, destination); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	if err := os.Rename(aside, scratchRoot); err != nil {
		_ = os.RemoveAll(aside)
	}
	return nil
}
