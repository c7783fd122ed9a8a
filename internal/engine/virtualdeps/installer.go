package virtualdeps

import (
	"context"
	"errors"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Installer renders, writes and publishes a set of virtual dependencies.
type Installer struct {
	installer   ports.ReportInstaller
	combiner    ports.ReportCombiner
	store       ports.ReportStore
	tracer      trace.Tracer
	parallelism int
}

// NewInstaller creates an Installer that writes with one worker per CPU.
func NewInstaller(installer ports.ReportInstaller, combiner ports.ReportCombiner) *Installer {
	return &Installer{
		installer:   installer,
		combiner:    combiner,
		tracer:      otel.Tracer(TracerName),
		parallelism: runtime.NumCPU(),
	}
}

// WithTracer replaces the tracer used for spans.
func (i *Installer) WithTracer(tracer trace.Tracer) *Installer {
	i.tracer = tracer
	return i
}

// WithReportStore persists the combined report into the scratch area so it is published
// together with the artifacts.
func (i *Installer) WithReportStore(store ports.ReportStore) *Installer {
	i.store = store
	return i
}

// WithParallelism bounds the number of concurrent writes. Values below one mean one.
func (i *Installer) WithParallelism(n int) *Installer {
	i.parallelism = max(n, 1)
	return i
}

// Install streams the rendered artifacts into scratchRoot, combines their reports and
// publishes scratchRoot into destination in a single step.
//
// A failed write aborts before publishing, leaving destination untouched. The context is
// only consulted before publishing starts.
func (i *Installer) Install(
	ctx context.Context,
	deps *domain.VirtualDependencyMap,
	scratchRoot string,
	destination string,
	factory ports.ReportFactory,
) (*domain.CombinedReport, error) {
	ctx, span := i.tracer.Start(ctx, "install virtual dependencies")
	defer span.End()
	span.SetAttributes(
		attribute.Int("modules", deps.Len()),
		attribute.String("destination", destination),
	)

	reports, err := i.writeAll(ctx, deps, scratchRoot, factory)
	if err != nil {
		return nil, fail(span, err)
	}

	combined := i.combiner.Combine(reports)
	if i.store != nil {
		if err := i.store.Put(scratchRoot, combined); err != nil {
			return nil, fail(span, errors.Join(domain.ErrScratchWriteFailed, err))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(span, err)
	}

	_, publish := i.tracer.Start(ctx, "publish")
	err = i.installer.InstallReports(scratchRoot, destination)
	publish.End()
	if err != nil {
		err = zerr.With(errors.Join(domain.ErrInstallFailed, err), "destination", destination)
		return nil, fail(span, err)
	}

	return combined, nil
}

func (i *Installer) writeAll(
	ctx context.Context,
	deps *domain.VirtualDependencyMap,
	scratchRoot string,
	factory ports.ReportFactory,
) ([]*domain.Report, error) {
	_, span := i.tracer.Start(ctx, "write")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.parallelism)

	reports := make([]*domain.Report, 0, deps.Len())
	var renderErr error
	for written, err := range factory.DeployScribes(deps) {
		if err != nil {
			renderErr = err
			break
		}
		if gctx.Err() != nil {
			break
		}
		reports = append(reports, written.Report)

		g.Go(func() error {
			err := i.installer.WriteReport(scratchRoot, written.SummaryHash, written.VirtualImportPath, written.Content)
			if err != nil {
				return zerr.With(errors.Join(domain.ErrScratchWriteFailed, err),
					"virtual_import_path", written.VirtualImportPath.String())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if renderErr != nil {
		return nil, renderErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("written", len(reports)))
	return reports, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
