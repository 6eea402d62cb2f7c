// Package ws implements the reactive WebSocket channel of the dashboard.
//
// New(registry, defaults) creates a Hub. Hub.ServeHTTP upgrades a connection,
// sends the figures for the default control state immediately, then answers
// every control event with the recomputed figures of the outputs that depend
// on it. Hub.Run(ctx) blocks until ctx is cancelled, then closes all active
// connections.
//
// Client → server:
//
//	{
//	  "event":   "control",
//	  "changed": "payload-slider",
//	  "values":  { "site-dropdown": "ALL", "payload-slider": [0, 10000] }
//	}
//
// Server → client:
//
//	{ "event": "figures", "outputs": { "<output id>": { /* types.Figure */ } } }
//	{ "event": "error",   "error": "..." }
//
// Each message is recomputed synchronously on the connection's read loop, so
// events from one client are answered in order. The upgrader accepts all
// origins; apply CORS restrictions at the reverse proxy. The endpoint is
// mounted at /ws/controls by the server.
package ws
