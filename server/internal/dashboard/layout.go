package dashboard

import (
	"strconv"

	"github.com/launchdash/launchdash/server/internal/dataset"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown describes the site selector.
type Dropdown struct {
	ID      string   `json:"id"`
	Options []Option `json:"options"`
	Value   string   `json:"value"`
}

// Mark is one labelled tick on the range slider.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider describes the payload range control.
type RangeSlider struct {
	ID    string       `json:"id"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []Mark       `json:"marks"`
	Value PayloadRange `json:"value"`
}

// SliderBounds configures the slider's track.
type SliderBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// Layout is the static view model of the page: a title, the two controls
// and the identifiers of the chart regions in display order.
type Layout struct {
	Title    string      `json:"title"`
	Dropdown Dropdown    `json:"dropdown"`
	Slider   RangeSlider `json:"slider"`
	Charts   []string    `json:"charts"`
}

// NewLayout builds the view model. The dropdown offers "All Sites" followed
// by sites; the slider spans bounds and defaults to the table's observed
// payload extremes.
func NewLayout(t *dataset.Table, sites []string, bounds SliderBounds) Layout {
	opts := make([]Option, 0, len(sites)+1)
	opts = append(opts, Option{Label: "All Sites", Value: AllSites})
	for _, s := range sites {
		opts = append(opts, Option{Label: s, Value: s})
	}

	lo, hi := t.PayloadBounds()
	return Layout{
		Title: "SpaceX Launch Records Dashboard",
		Dropdown: Dropdown{
			ID:      SiteDropdownID,
			Options: opts,
			Value:   AllSites,
		},
		Slider: RangeSlider{
			ID:    PayloadSliderID,
			Min:   bounds.Min,
			Max:   bounds.Max,
			Step:  bounds.Step,
			Marks: marks(bounds),
			Value: PayloadRange{lo, hi},
		},
		Charts: []string{SuccessPieID, PayloadScatterID},
	}
}

// DefaultState is the control state before any user interaction.
func (l Layout) DefaultState() ControlState {
	return ControlState{
		SelectedSite: l.Dropdown.Value,
		PayloadRange: l.Slider.Value,
	}
}

// marks places one tick per step from Min to Max inclusive.
func marks(b SliderBounds) []Mark {
	if b.Step <= 0 || b.Max < b.Min {
		return []Mark{}
	}
	n := int((b.Max-b.Min)/b.Step) + 1
	out := make([]Mark, 0, n)
	for i := 0; i < n; i++ {
		v := b.Min + float64(i)*b.Step
		out = append(out, Mark{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return out
}
