package metrics

import (
	"log/slog"
	"net/http"
	"sort"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

const namespace = "launchdash"

// Collector accumulates counters and lazily evaluated gauges.
// All methods are safe for concurrent use.
type Collector struct {
	mu         sync.Mutex
	controls   map[string]float64
	recomputes map[string]float64
	gauges     []gauge
}

type gauge struct {
	name string
	help string
	fn   func() float64
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{
		controls:   make(map[string]float64),
		recomputes: make(map[string]float64),
	}
}

// ControlChanged counts one dispatched change of control.
func (c *Collector) ControlChanged(control string) {
	c.mu.Lock()
	c.controls[control]++
	c.mu.Unlock()
}

// Recomputed counts one recompute of output.
func (c *Collector) Recomputed(output string) {
	c.mu.Lock()
	c.recomputes[output]++
	c.mu.Unlock()
}

// AddGauge registers a gauge named launchdash_<name> whose value is read from
// fn on every Gather.
func (c *Collector) AddGauge(name, help string, fn func() float64) {
	c.mu.Lock()
	c.gauges = append(c.gauges, gauge{name: namespace + "_" + name, help: help, fn: fn})
	c.mu.Unlock()
}

// Gather returns the current metric families sorted by name.
func (c *Collector) Gather() []*dto.MetricFamily {
	c.mu.Lock()
	var mfs []*dto.MetricFamily
	for _, mf := range []*dto.MetricFamily{
		counterFamily(namespace+"_control_events_total", "Control change events dispatched, by control.", "control", c.controls),
		counterFamily(namespace+"_recomputes_total", "Chart figures recomputed, by output.", "output", c.recomputes),
	} {
		// The text encoder rejects families without samples.
		if len(mf.Metric) > 0 {
			mfs = append(mfs, mf)
		}
	}
	gauges := make([]gauge, len(c.gauges))
	copy(gauges, c.gauges)
	c.mu.Unlock()

	// Gauge callbacks may take their own locks; call them unlocked.
	for _, g := range gauges {
		mfs = append(mfs, &dto.MetricFamily{
			Name:   proto.String(g.name),
			Help:   proto.String(g.help),
			Type:   dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(g.fn())}}},
		})
	}

	sort.Slice(mfs, func(i, j int) bool { return mfs[i].GetName() < mfs[j].GetName() })
	return mfs
}

// ServeHTTP writes every family in the text exposition format.
func (c *Collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	w.Header().Set("Content-Type", string(format))

	enc := expfmt.NewEncoder(w, format)
	for _, mf := range c.Gather() {
		if err := enc.Encode(mf); err != nil {
			slog.Warn("metrics: encode failed", "family", mf.GetName(), "err", err)
			return
		}
	}
}

// counterFamily builds a labelled counter family from values, one metric per
// label value in sorted order.
func counterFamily(name, help, label string, values map[string]float64) *dto.MetricFamily {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	metrics := make([]*dto.Metric, 0, len(keys))
	for _, k := range keys {
		metrics = append(metrics, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: proto.String(label), Value: proto.String(k)}},
			Counter: &dto.Counter{Value: proto.Float64(values[k])},
		})
	}
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_COUNTER.Enum(),
		Metric: metrics,
	}
}
