package graph

import (
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Option configures a Graph at construction time.
type Option func(*config)

type config struct {
	logger       *logrus.Logger
	provider     metric.MeterProvider
	nodeCapacity int
}

// defaultConfig returns a silent logger and the global meter provider.
func defaultConfig() config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)

	return config{
		logger:   l,
		provider: otel.GetMeterProvider(),
	}
}

// WithLogger routes state transitions and rejected calls to l (Debug level).
// A nil l keeps the silent default.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMeterProvider sets the OpenTelemetry provider for the graph's instruments.
// A nil mp keeps otel.GetMeterProvider().
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		if mp != nil {
			c.provider = mp
		}
	}
}

// WithNodeCapacity pre-sizes the initial Dynamic graph for n nodes.
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.nodeCapacity = n
		}
	}
}
