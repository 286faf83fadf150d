package observability

import (
	"time"

	"github.com/hupe1980/rvec"
	"github.com/hupe1980/rvec/scalar"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rvec"

// PrometheusCollector implements rvec.MetricsCollector with Prometheus
// counters and histograms.
type PrometheusCollector struct {
	casts        *prometheus.CounterVec
	castWarnings *prometheus.CounterVec
	castLatency  *prometheus.HistogramVec
	copies       *prometheus.CounterVec
	copiedElems  prometheus.Counter
	inPlace      *prometheus.CounterVec
	ioOps        *prometheus.CounterVec
	ioBytes      *prometheus.CounterVec
	ioLatency    *prometheus.HistogramVec
}

var _ rvec.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default handler.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		casts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "casts_total",
			Help:      "Casts between element kinds.",
		}, []string{"from", "to", "status"}),
		castWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cast_warnings_total",
			Help:      "Casts that raised coercion warnings.",
		}, []string{"to"}),
		castLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cast_duration_seconds",
			Help:      "Cast latency.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"to"}),
		copies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cow_copies_total",
			Help:      "Copies made because a shared vector was written.",
		}, []string{"kind"}),
		copiedElems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cow_copied_elements_total",
			Help:      "Elements copied by copy-on-write.",
		}),
		inPlace: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "in_place_writes_total",
			Help:      "Writes that reused a Temporary vector.",
		}, []string{"kind"}),
		ioOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Save and load operations.",
		}, []string{"op", "status"}),
		ioBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_bytes_total",
			Help:      "Encoded bytes saved or loaded.",
		}, []string{"op"}),
		ioLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_duration_seconds",
			Help:      "Save and load latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.casts, c.castWarnings, c.castLatency,
		c.copies, c.copiedElems, c.inPlace,
		c.ioOps, c.ioBytes, c.ioLatency,
	)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordCast implements rvec.MetricsCollector.
func (c *PrometheusCollector) RecordCast(from, to scalar.Kind, duration time.Duration, warned bool, err error) {
	c.casts.WithLabelValues(from.String(), to.String(), status(err)).Inc()
	c.castLatency.WithLabelValues(to.String()).Observe(duration.Seconds())
	if warned {
		c.castWarnings.WithLabelValues(to.String()).Inc()
	}
}

// RecordCopy implements rvec.MetricsCollector.
func (c *PrometheusCollector) RecordCopy(kind scalar.Kind, length int) {
	c.copies.WithLabelValues(kind.String()).Inc()
	c.copiedElems.Add(float64(length))
}

// RecordInPlaceWrite implements rvec.MetricsCollector.
func (c *PrometheusCollector) RecordInPlaceWrite(kind scalar.Kind) {
	c.inPlace.WithLabelValues(kind.String()).Inc()
}

// RecordSave implements rvec.MetricsCollector.
func (c *PrometheusCollector) RecordSave(bytes int, duration time.Duration, err error) {
	c.recordIO("save", bytes, duration, err)
}

// RecordLoad implements rvec.MetricsCollector.
func (c *PrometheusCollector) RecordLoad(bytes int, duration time.Duration, err error) {
	c.recordIO("load", bytes, duration, err)
}

func (c *PrometheusCollector) recordIO(op string, bytes int, duration time.Duration, err error) {
	c.ioOps.WithLabelValues(op, status(err)).Inc()
	c.ioLatency.WithLabelValues(op).Observe(duration.Seconds())
	if err == nil {
		c.ioBytes.WithLabelValues(op).Add(float64(bytes))
	}
}
