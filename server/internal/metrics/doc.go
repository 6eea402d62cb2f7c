// Package metrics counts dashboard activity and serves it in the Prometheus
// text exposition format.
//
// Collector implements dashboard.Observer, so it can be handed straight to
// the callback registry:
//
//	launchdash_control_events_total{control}  control changes dispatched
//	launchdash_recomputes_total{output}       chart figures recomputed
//
// Gauges are read lazily at scrape time through AddGauge (dataset size,
// connected WebSocket clients).
//
// Families are built as client_model dto.MetricFamily values and encoded
// with prometheus/common/expfmt, the same types the scraper side of this
// codebase parses.
package metrics
