// Package dashboard holds the reactive core of the launch dashboard: the
// view model of its controls, the two chart handlers, and the callback
// registry that re-runs them when a control changes.
//
// Control identifiers:
//
//	site-dropdown                  selected launch site, or "ALL"
//	payload-slider                 [low, high] payload range in kg
//	success-pie-chart              output of SiteSuccessPie
//	success-payload-scatter-chart  output of PayloadScatter
//
// SiteSuccessPie and PayloadScatter are pure functions of an immutable
// *dataset.Table and a ControlState. Unknown sites and out-of-range payload
// ranges produce empty but valid figures, never errors.
//
// Registry binds each output to the controls it depends on. Dispatch(changed,
// state) runs every callback whose inputs include changed; an empty changed
// runs them all (initial render). Registration happens before serving;
// Dispatch is then safe for concurrent use.
package dashboard
