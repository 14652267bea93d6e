package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "nitro"

// Metrics holds all OTEL metric instruments for nitro.
type Metrics struct {
	// Lines emitted by the list command (partitioned by source: tmux, zoxide)
	ListLines metric.Int64Counter

	// Connect actions (partitioned by mode: attach, switch; created: bool)
	Connects metric.Int64Counter

	// Connect targets that failed
	ConnectFailures metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.ListLines, err = meter.Int64Counter("list.lines",
		metric.WithDescription("Display lines emitted by the list command, partitioned by source"),
		metric.WithUnit("{line}"))
	if err != nil {
		return nil, err
	}

	m.Connects, err = meter.Int64Counter("connects.total",
		metric.WithDescription("Connect actions performed, partitioned by mode and whether the session was created"))
	if err != nil {
		return nil, err
	}

	m.ConnectFailures, err = meter.Int64Counter("connects.failures",
		metric.WithDescription("Connect targets that failed to resolve or attach"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordListLines records lines emitted for one source.
func (m *Metrics) RecordListLines(ctx context.Context, source string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.ListLines.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("list.source", source),
	))
}

// RecordConnect records one connect action.
func (m *Metrics) RecordConnect(ctx context.Context, inside bool) {
	if m == nil {
		return
	}
	mode := "attach"
	if inside {
		mode = "switch"
	}
	m.Connects.Add(ctx, 1, metric.WithAttributes(
		attribute.String("connect.mode", mode),
	))
}

// RecordConnectFailure records one failed connect target.
func (m *Metrics) RecordConnectFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.ConnectFailures.Add(ctx, 1)
}
