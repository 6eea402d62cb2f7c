// Package api implements the HTTP REST API of the launch dashboard.
//
// New(table, registry, layout) returns an http.Handler that serves:
//
//	GET  /api/v1/health                 record/site counts and payload bounds
//	GET  /api/v1/layout                 the control view model (dashboard.Layout)
//	POST /api/v1/update                 {changed, values} → {outputs: {id: Figure}}
//	GET  /api/v1/charts/success-pie     ?site=
//	GET  /api/v1/charts/payload-scatter ?site=&low=&high=
//	GET  /api/v1/records                ?site=&low=&high=, the filtered rows
//
// Query parameters default to the layout's initial control state; values
// that do not parse fall back to that default instead of failing the request.
// Unknown sites and empty ranges answer 200 with empty figures.
//
// All endpoints respond with Content-Type: application/json and return 405
// for the wrong method. JSON types are defined in types.go.
package api
