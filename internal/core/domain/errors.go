package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrDeferred is returned when discovery has not yet produced enough information to compute a
	// closure, for example when an entity references another entity that was not discovered.
	// Callers should retry the whole run on a later pass rather than treat it as a failure.
	ErrDeferred = zerr.New("not enough information discovered yet, retry later")

	// ErrModuleNotFound is returned when an installed module group has no discovered module.
	ErrModuleNotFound = zerr.New("installed module group has no discovered module")

	// ErrInconsistentDiscovery is returned when the discovered project contradicts itself.
	ErrInconsistentDiscovery = zerr.New("discovered project is inconsistent")

	// ErrInheritanceCycle is returned when an entity is its own ancestor.
	ErrInheritanceCycle = zerr.New("inheritance cycle detected")

	// ErrDuplicateModule is returned when two modules share an import path.
	ErrDuplicateModule = zerr.New("module already exists")

	// ErrDuplicateModel is returned when two models share an import path.
	ErrDuplicateModel = zerr.New("model already exists")

	// ErrSyntheticNameCollision is returned when two real modules map to the same synthetic name.
	ErrSyntheticNameCollision = zerr.New("synthetic name collision")

	// ErrInvalidModelName is returned when a model name cannot be used as an alias identifier.
	ErrInvalidModelName = zerr.New("model name is not a valid identifier")

	// ErrScratchWriteFailed is returned when an artifact cannot be written to the scratch area.
	ErrScratchWriteFailed = zerr.New("failed to write virtual dependency")

	// ErrInstallFailed is returned when the scratch area cannot be published.
	ErrInstallFailed = zerr.New("failed to install virtual dependencies")

	// ErrDestinationNotDirectory is returned when the destination exists but is not a directory.
	ErrDestinationNotDirectory = zerr.New("destination is not a directory")

	// ErrReportReadFailed is returned when a persisted combined report cannot be read.
	ErrReportReadFailed = zerr.New("failed to read combined report")

	// ErrReportMarshalFailed is returned when a combined report cannot be (un)marshaled.
	ErrReportMarshalFailed = zerr.New("failed to marshal combined report")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrUnsupportedConfigVersion is returned when the project file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported project file version")

	// ErrMissingNamespace is returned when no namespace is configured.
	ErrMissingNamespace = zerr.New("namespace must not be empty")

	// ErrUnknownChecksum is returned when a checksum name is not recognized.
	ErrUnknownChecksum = zerr.New("unknown checksum")

	// ErrMissingDestination is returned when no destination is configured.
	ErrMissingDestination = zerr.New("destination must not be empty")
)

// IsDeferred reports whether err means the run should be retried on a later discovery pass.
// Every other error from discovery, construction or installation is fatal for the run.
func IsDeferred(err error) bool {
	return errors.Is(err, ErrDeferred)
}
