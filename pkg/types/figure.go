package types

// Trace kinds understood by the browser renderer.
const (
	TracePie     = "pie"
	TraceScatter = "scatter"
)

// Figure is one chart: its traces and its layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one series of a Figure. Pie traces use Labels/Values/Hole,
// scatter traces use X/Y/Mode.
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Hole   float64   `json:"hole,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

// Marker holds trace colouring. Pie traces take per-slice Colors; scatter
// traces take a single Color.
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// Layout is the figure-level presentation.
type Layout struct {
	Title  Title   `json:"title"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Legend names the grouping shown in the legend.
type Legend struct {
	Title Title `json:"title"`
}

// Title is a text label.
type Title struct {
	Text string `json:"text"`
}

// Axis describes one cartesian axis.
type Axis struct {
	Title Title `json:"title"`
}

// Points returns the number of data points across all traces: slices for
// pie traces, markers for scatter traces.
func (f Figure) Points() int {
	n := 0
	for _, tr := range f.Data {
		if tr.Type == TracePie {
			n += len(tr.Values)
			continue
		}
		n += len(tr.X)
	}
	return n
}
