package dashboard

import (
	"encoding/json"
	"math"
)

// AllSites is the dropdown value that selects every launch site.
const AllSites = "ALL"

// Control and output identifiers shared with the page.
const (
	SiteDropdownID   = "site-dropdown"
	PayloadSliderID  = "payload-slider"
	SuccessPieID     = "success-pie-chart"
	PayloadScatterID = "success-payload-scatter-chart"
)

// PayloadRange is an inclusive [low, high] payload interval in kg. It
// marshals as a two-element JSON array, the shape the range slider emits.
type PayloadRange [2]float64

// Low returns the lower bound.
func (r PayloadRange) Low() float64 { return r[0] }

// High returns the upper bound.
func (r PayloadRange) High() float64 { return r[1] }

// Valid reports whether both bounds are finite and low <= high.
func (r PayloadRange) Valid() bool {
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r[0] <= r[1]
}

// ControlState is the current value of every input control.
type ControlState struct {
	SelectedSite string       `json:"site-dropdown"`
	PayloadRange PayloadRange `json:"payload-slider"`
}

// ApplyValues overlays raw control values, keyed by control ID, onto s and
// returns the result. Absent or undecodable values keep the value from s,
// so a malformed control degrades to its current setting.
func (s ControlState) ApplyValues(values map[string]json.RawMessage) ControlState {
	out := s
	if raw, ok := values[SiteDropdownID]; ok {
		var site string
		if err := json.Unmarshal(raw, &site); err == nil && site != "" {
			out.SelectedSite = site
		}
	}
	if raw, ok := values[PayloadSliderID]; ok {
		var r []float64
		if err := json.Unmarshal(raw, &r); err == nil && len(r) == 2 {
			out.PayloadRange = PayloadRange{r[0], r[1]}
		}
	}
	return out
}
