// Package telemetry wires OpenTelemetry tracing to the logger.
package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/vdep/internal/core/ports"
)

var _ ports.Telemetry = (*Provider)(nil)

// Provider implements ports.Telemetry with an SDK tracer provider feeding a Bridge.
type Provider struct {
	provider *sdktrace.TracerProvider
	bridge   *Bridge
}

// NewProvider creates a Provider that reports to logger once verbose is enabled.
func NewProvider(logger ports.Logger) *Provider {
	bridge := NewBridge(logger)
	return &Provider{
		provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge)),
		bridge:   bridge,
	}
}

// Tracer returns a tracer for the given instrumentation name.
func (p *Provider) Tracer(name string) trace.Tracer {
	return p.provider.Tracer(name)
}

// SetVerbose enables or disables reporting of finished spans.
func (p *Provider) SetVerbose(enable bool) {
	p.bridge.SetEnabled(enable)
}

// Shutdown stops span processing.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.provider.Shutdown(ctx)
}
