package dashboard

import (
	"errors"
	"fmt"

	"github.com/launchdash/launchdash/pkg/types"
	"github.com/launchdash/launchdash/server/internal/dataset"
)

// ErrUnknownControl is returned by Dispatch for a control no callback reads.
var ErrUnknownControl = errors.New("dashboard: unknown control")

// HandlerFunc recomputes one output figure from the current control state.
type HandlerFunc func(ControlState) types.Figure

// Callback binds an output to the controls it depends on.
type Callback struct {
	Output string
	Inputs []string
	Fn     HandlerFunc
}

// Observer is notified of every dispatched control event and every output
// recompute. Implementations must be safe for concurrent use.
type Observer interface {
	ControlChanged(control string)
	Recomputed(output string)
}

// Registry holds the registered callbacks in registration order.
type Registry struct {
	callbacks []Callback
	inputs    map[string]struct{}
	obs       Observer
}

// NewRegistry returns an empty Registry. obs may be nil.
func NewRegistry(obs Observer) *Registry {
	return &Registry{inputs: make(map[string]struct{}), obs: obs}
}

// NewDashboard returns a Registry with the pie and scatter callbacks bound
// to the read-only table t.
func NewDashboard(t *dataset.Table, obs Observer) *Registry {
	r := NewRegistry(obs)
	// Both callbacks are static and valid; Register cannot fail here.
	_ = r.Register(Callback{
		Output: SuccessPieID,
		Inputs: []string{SiteDropdownID},
		Fn: func(s ControlState) types.Figure {
			return SiteSuccessPie(t, s.SelectedSite)
		},
	})
	_ = r.Register(Callback{
		Output: PayloadScatterID,
		Inputs: []string{SiteDropdownID, PayloadSliderID},
		Fn: func(s ControlState) types.Figure {
			return PayloadScatter(t, s.SelectedSite, s.PayloadRange)
		},
	})
	return r
}

// Register adds cb. Each output may be registered once.
func (r *Registry) Register(cb Callback) error {
	if cb.Output == "" || cb.Fn == nil || len(cb.Inputs) == 0 {
		return fmt.Errorf("dashboard: callback for %q needs an output, inputs and a handler", cb.Output)
	}
	for _, existing := range r.callbacks {
		if existing.Output == cb.Output {
			return fmt.Errorf("dashboard: output %q already registered", cb.Output)
		}
	}
	for _, in := range cb.Inputs {
		r.inputs[in] = struct{}{}
	}
	r.callbacks = append(r.callbacks, cb)
	return nil
}

// Outputs returns the registered output IDs in registration order.
func (r *Registry) Outputs() []string {
	out := make([]string, len(r.callbacks))
	for i, cb := range r.callbacks {
		out[i] = cb.Output
	}
	return out
}

// Dispatch recomputes every output that depends on changed, using state as
// the current control values. An empty changed recomputes every output.
func (r *Registry) Dispatch(changed string, state ControlState) (map[string]types.Figure, error) {
	if changed != "" {
		if _, ok := r.inputs[changed]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownControl, changed)
		}
		if r.obs != nil {
			r.obs.ControlChanged(changed)
		}
	}

	out := make(map[string]types.Figure, len(r.callbacks))
	for _, cb := range r.callbacks {
		if changed != "" && !dependsOn(cb, changed) {
			continue
		}
		out[cb.Output] = cb.Fn(state)
		if r.obs != nil {
			r.obs.Recomputed(cb.Output)
		}
	}
	return out, nil
}

func dependsOn(cb Callback, control string) bool {
	for _, in := range cb.Inputs {
		if in == control {
			return true
		}
	}
	return false
}
