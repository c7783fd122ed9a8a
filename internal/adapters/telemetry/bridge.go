package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vdep/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a Logger.
type Bridge struct {
	logger  ports.Logger
	enabled atomic.Bool
}

// NewBridge returns a disabled Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// SetEnabled turns reporting on or off.
func (b *Bridge) SetEnabled(enable bool) {
	b.enabled.Store(enable)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration, attributes and failure status.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !b.enabled.Load() || b.logger == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "trace: %s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	for _, kv := range s.Attributes() {
		sb.WriteString(" " + string(kv.Key) + "=" + kv.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		sb.WriteString(" error=" + strings.ReplaceAll(desc, "\n", "; "))
	}

	b.logger.Info(sb.String())
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}
