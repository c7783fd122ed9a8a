// Package app implements the application layer for vdep.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/vdep/internal/adapters/watcher" //nolint:depguard // Debouncer is used directly
	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/vdep/internal/engine/virtualdeps"
	"go.trai.ch/vdep/internal/ui/style"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name used for application spans.
const TracerName = "go.trai.ch/vdep/internal/app"

// Checksum names accepted by GenerateOptions.
const (
	ChecksumAdler32 = "adler32"
	ChecksumXXHash  = "xxhash"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	factory      ports.ReportFactory
	reports      ports.ReportInstaller
	store        ports.ReportStore
	installer    *virtualdeps.Installer
	watcher      ports.Watcher
	tracer       trace.Tracer
	engineTracer trace.Tracer
	telemetry    ports.Telemetry

	// runMu serializes generation runs triggered by watch mode and guards the fields below.
	runMu         sync.Mutex
	maker         *virtualdeps.Maker
	makerSettings makerKey
}

// makerKey holds the settings a Maker is built with. Runs with equal settings share one Maker.
type makerKey struct {
	namespace         string
	checksum          string
	installedAppsHash string
	differentiator    string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	factory ports.ReportFactory,
	reports ports.ReportInstaller,
	store ports.ReportStore,
	installer *virtualdeps.Installer,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		factory:      factory,
		reports:      reports,
		store:        store,
		installer:    installer,
		watcher:      w,
		tracer:       otel.Tracer(TracerName),
		engineTracer: otel.Tracer(virtualdeps.TracerName),
	}
}

// WithTelemetry takes application and engine tracers from tel.
func (a *App) WithTelemetry(tel ports.Telemetry) *App {
	a.telemetry = tel
	a.tracer = tel.Tracer(TracerName)
	a.engineTracer = tel.Tracer(virtualdeps.TracerName)
	return a
}

// SetTracing reports finished spans through the logger when enabled.
func (a *App) SetTracing(enable bool) {
	if a.telemetry != nil {
		a.telemetry.SetVerbose(enable)
	}
}

// WithTracer replaces the tracer used for spans.
func (a *App) WithTracer(tracer trace.Tracer) *App {
	a.tracer = tracer
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// GenerateOptions configures a generation run. Empty fields fall back to the project file.
type GenerateOptions struct {
	ConfigPath     string
	Namespace      string
	Destination    string
	Differentiator string
	Checksum       string
}

// GenerateResult describes a completed generation run.
type GenerateResult struct {
	Destination string
	Modules     int
	Diagnostics []domain.Diagnostic
	Report      *domain.CombinedReport
}

// Generate loads the project file, builds one virtual dependency per module and installs them.
// A deferred project is returned as an error matching domain.ErrDeferred and nothing is written.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	ctx, span := a.tracer.Start(ctx, "vdep generate")
	defer span.End()

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	namespace := firstNonEmpty(opts.Namespace, cfg.Namespace)
	if namespace == "" {
		return nil, domain.ErrMissingNamespace
	}
	destination := firstNonEmpty(opts.Destination, cfg.Destination)
	if destination == "" {
		return nil, domain.ErrMissingDestination
	}

	checksum, err := checksumFor(opts.Checksum)
	if err != nil {
		return nil, err
	}
	checksumName := firstNonEmpty(opts.Checksum, ChecksumAdler32)

	span.SetAttributes(
		attribute.String("namespace", namespace),
		attribute.String("destination", destination),
	)

	project, err := domain.NewDiscoveredProject(cfg.Input)
	if err != nil {
		return nil, err
	}

	maker := a.makerFor(makerKey{
		namespace:         namespace,
		checksum:          checksumName,
		installedAppsHash: domain.InstalledAppsHash(project.InstalledApps()),
		differentiator:    opts.Differentiator,
	}, checksum)

	deps, diagnostics, err := virtualdeps.NewGenerator(maker, a.logger).WithTracer(a.engineTracer).Generate(ctx, project)
	if err != nil {
		return nil, err
	}

	scratch, err := a.reports.PrepareScratch(destination)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to prepare scratch area"), "destination", destination)
	}
	defer func() {
		if err := a.reports.DiscardScratch(scratch); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to remove scratch area %s: %v", scratch, err))
		}
	}()

	combined, err := a.installer.Install(ctx, deps, scratch, destination, a.factory)
	if err != nil {
		return nil, err
	}

	a.logger.Info(style.Summary(deps.Len(), destination))

	return &GenerateResult{
		Destination: destination,
		Modules:     deps.Len(),
		Diagnostics: diagnostics,
		Report:      combined,
	}, nil
}

// makerFor returns the Maker for key, reusing the previous one when the settings are unchanged.
// Callers hold runMu.
func (a *App) makerFor(key makerKey, checksum virtualdeps.Checksum) *virtualdeps.Maker {
	if a.maker != nil && a.makerSettings == key {
		return a.maker
	}

	differentiator := virtualdeps.NoDifferentiator
	if key.differentiator != "" {
		differentiator = func() string { return key.differentiator }
	}
	a.maker = virtualdeps.NewMaker(
		virtualdeps.NewNamer(key.namespace, checksum),
		nil,
		key.installedAppsHash,
		differentiator,
	)
	a.makerSettings = key
	return a.maker
}

// WatchOptions configures watch mode.
type WatchOptions struct {
	GenerateOptions
	// DebounceWindow coalesces bursts of changes. Zero selects watcher.DefaultDebounceWindow.
	DebounceWindow time.Duration
}

// Watch generates once and then again every time the project file changes, until ctx is done.
// Failed runs are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	window := opts.DebounceWindow
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	a.generateAndLog(ctx, opts.GenerateOptions)

	if err := a.watcher.Start(ctx, opts.ConfigPath); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		a.logger.Info("change detected: " + strings.Join(paths, ", "))
		a.generateAndLog(ctx, opts.GenerateOptions)
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	if ctx.Err() != nil {
		debouncer.Stop()
		return nil
	}
	debouncer.Flush()
	return nil
}

func (a *App) generateAndLog(ctx context.Context, opts GenerateOptions) {
	if ctx.Err() != nil {
		return
	}
	_, err := a.Generate(ctx, opts)
	switch {
	case err == nil:
	case domain.IsDeferred(err):
		a.logger.Warn("project is incomplete, waiting for the next change: " + err.Error())
	default:
		a.logger.Error(err)
	}
}

// ReportOptions locates a published combined report.
type ReportOptions struct {
	ConfigPath  string
	Destination string
}

// Deps returns the synthetic modules a file in module must depend on, given its imports.
func (a *App) Deps(
	_ context.Context,
	opts ReportOptions,
	module domain.ImportPath,
	imports []domain.ImportPath,
) ([]domain.ImportPath, error) {
	report, err := a.loadReport(opts)
	if err != nil {
		return nil, err
	}
	return report.AdditionalDeps(module, imports), nil
}

// Aliases returns the concrete and queryset aliases of each model. Missing aliases are empty.
func (a *App) Aliases(
	_ context.Context,
	opts ReportOptions,
	models []domain.ImportPath,
) (concrete, querySets map[domain.ImportPath]string, err error) {
	report, err := a.loadReport(opts)
	if err != nil {
		return nil, nil, err
	}
	return report.ConcreteAliases(models...), report.QuerySetAliases(models...), nil
}

func (a *App) loadReport(opts ReportOptions) (*domain.CombinedReport, error) {
	destination := opts.Destination
	if destination == "" {
		cfg, err := a.configLoader.Load(opts.ConfigPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		destination = cfg.Destination
	}

	report, err := a.store.Get(destination)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load combined report"), "destination", destination)
	}
	return report, nil
}

func checksumFor(name string) (virtualdeps.Checksum, error) {
	switch name {
	case "", ChecksumAdler32:
		return virtualdeps.Adler32Checksum, nil
	case ChecksumXXHash:
		return virtualdeps.XXHashChecksum, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownChecksum, "cannot name virtual dependencies"), "checksum", name)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
