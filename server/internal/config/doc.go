// Package config loads the dashboard configuration from a YAML file.
//
// Config fields:
//   - Server.HTTPPort         port for the page, REST API, WebSocket and /metrics (default 8050)
//   - Server.ShutdownTimeout  grace period for in-flight requests on SIGTERM (default 5s)
//   - Server.PrettyHTML       indent the rendered page (default false)
//   - Dataset.Path            launch-records CSV read once at startup
//   - Dataset.Sites           fixed dropdown enumeration (default the four SpaceX sites)
//   - Slider.Min/Max/Step     payload slider track (default 0, 10000, 1000)
//   - Log.Level               debug | info | warn | error (default info)
//
// Load(path) applies defaults before unmarshalling, then validates.
// Default() returns the same defaults without reading a file.
//
// Watch(ctx, path, onChange) uses fsnotify to re-read the file on change.
// The server applies only Log.Level from a reload; the dataset and the page
// layout are fixed for the life of the process.
package config
