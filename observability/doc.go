// Package observability exports session metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	s := rvec.New(rvec.WithMetricsCollector(observability.NewPrometheusCollector(reg)))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package observability
