package folder

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*ReportStore)(nil)

// ReportStore implements ports.ReportStore as a JSON file inside a root directory.
type ReportStore struct{}

// NewReportStore creates a new ReportStore.
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Get reads the combined report from root.
func (s *ReportStore) Get(root string) (*domain.CombinedReport, error) {
	filename := domain.ReportFilePath(root)
	//nolint:gosec // Path is constructed from a trusted root
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", filename)
	}

	var report domain.CombinedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportMarshalFailed.Error()), "path", filename)
	}
	return &report, nil
}

// Put writes the combined report into root.
func (s *ReportStore) Put(root string, report *domain.CombinedReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportMarshalFailed.Error())
	}

	filename := domain.ReportFilePath(root)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", filename)
	}

	//nolint:gosec // Path is constructed from a trusted root
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScratchWriteFailed.Error()), "path", filename)
	}
	return nil
}
