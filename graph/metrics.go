package graph

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instrumentationName scopes every instrument this package creates.
const instrumentationName = "github.com/katalvlaran/dualgraph/graph"

// Transition attribute values.
const (
	transitionFreeze   = "freeze"
	transitionUnfreeze = "unfreeze"
)

// metrics holds the instruments of one Graph.
type metrics struct {
	freezeLatency metric.Float64Histogram
	transitions   metric.Int64Counter
	queryLatency  metric.Float64Histogram
	rejections    metric.Int64Counter
}

// newMetrics creates the instruments on mp. If any instrument cannot be
// created, the error is logged and a no-op set is returned.
func newMetrics(mp metric.MeterProvider, log *logrus.Logger) *metrics {
	m, err := buildMetrics(mp.Meter(instrumentationName))
	if err != nil {
		log.WithError(err).Warn("graph: metrics disabled")
		m, _ = buildMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}

	return m
}

func buildMetrics(meter metric.Meter) (*metrics, error) {
	var (
		m   metrics
		err error
	)
	m.freezeLatency, err = meter.Float64Histogram(
		"dualgraph_freeze_duration_seconds",
		metric.WithDescription("Duration of Dynamic to CSR compilation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	m.transitions, err = meter.Int64Counter(
		"dualgraph_transitions_total",
		metric.WithDescription("Completed state transitions"),
	)
	if err != nil {
		return nil, err
	}
	m.queryLatency, err = meter.Float64Histogram(
		"dualgraph_query_duration_seconds",
		metric.WithDescription("Duration of algorithm queries on the frozen graph"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	m.rejections, err = meter.Int64Counter(
		"dualgraph_guard_rejections_total",
		metric.WithDescription("Calls rejected because the graph was in the wrong state"),
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// recordTransition records one completed freeze or unfreeze.
func (m *metrics) recordTransition(transition string, duration time.Duration) {
	ctx := context.Background()
	if transition == transitionFreeze {
		m.freezeLatency.Record(ctx, duration.Seconds())
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("transition", transition)))
}

// recordQuery records the latency of one algorithm query.
func (m *metrics) recordQuery(query string, duration time.Duration) {
	m.queryLatency.Record(context.Background(), duration.Seconds(),
		metric.WithAttributes(attribute.String("query", query)),
	)
}

// recordRejection counts one state-guard rejection.
func (m *metrics) recordRejection(op string) {
	m.rejections.Add(context.Background(), 1, metric.WithAttributes(attribute.String("op", op)))
}
