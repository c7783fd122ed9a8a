package ports

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Telemetry provides the tracers used by the engine and reports finished spans when verbose.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Tracer returns a tracer for the given instrumentation name.
	Tracer(name string) trace.Tracer
	// SetVerbose enables or disables reporting of finished spans.
	SetVerbose(enable bool)
	// Shutdown flushes and stops span processing.
	Shutdown(ctx context.Context) error
}
