package virtualdeps

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/vdep/internal/core/domain"
	"go.trai.ch/vdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name used for engine spans.
const TracerName = "go.trai.ch/vdep/internal/engine/virtualdeps"

// Generator builds the virtual dependency of every module in a project.
type Generator struct {
	maker  *Maker
	logger ports.Logger
	tracer trace.Tracer
}

// NewGenerator creates a Generator using the global tracer provider.
func NewGenerator(maker *Maker, logger ports.Logger) *Generator {
	return &Generator{
		maker:  maker,
		logger: logger,
		tracer: otel.Tracer(TracerName),
	}
}

// WithTracer replaces the tracer used for spans.
func (g *Generator) WithTracer(tracer trace.Tracer) *Generator {
	g.tracer = tracer
	return g
}

// Generate returns one virtual dependency per module, keyed and ordered by module import path.
// Diagnostics are logged as warnings and returned. Two modules mapping to the same synthetic
// name abort the run before anything is written.
func (g *Generator) Generate(
	ctx context.Context,
	project *domain.DiscoveredProject,
) (*domain.VirtualDependencyMap, []domain.Diagnostic, error) {
	_, span := g.tracer.Start(ctx, "generate virtual dependencies")
	defer span.End()
	span.SetAttributes(attribute.Int("modules", project.ModuleCount()))

	deps := domain.NewVirtualDependencyMap(project.ModuleCount())
	owners := make(map[domain.ImportPath]domain.ImportPath, project.ModuleCount())
	var diagnostics []domain.Diagnostic

	for module := range project.Modules() {
		vd, diags, err := g.maker.Make(project, module.ImportPath)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, nil, err
		}

		name := vd.Summary.VirtualDependencyName
		if owner, exists := owners[name]; exists {
			err := zerr.With(zerr.Wrap(domain.ErrSyntheticNameCollision, "cannot name virtual dependency"),
				"virtual_import_path", name.String())
			err = zerr.With(err, "first_module", owner.String())
			err = zerr.With(err, "second_module", module.ImportPath.String())
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, nil, err
		}
		owners[name] = module.ImportPath

		for _, d := range diags {
			g.logger.Warn(d.String())
		}
		diagnostics = append(diagnostics, diags...)
		deps.Set(module.ImportPath, vd)
	}

	span.SetAttributes(attribute.Int("diagnostics", len(diagnostics)))
	return deps, diagnostics, nil
}
