// Package types defines the chart specification shared by the REST API, the
// WebSocket hub and the page renderer.
//
// A Figure is a declarative, Plotly-compatible description: a list of traces
// ("pie" or "scatter") plus a layout. Figures are plain values built fresh on
// every recompute and are safe to marshal straight to JSON.
package types
