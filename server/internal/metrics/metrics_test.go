package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

func scrape(t *testing.T, c *Collector) map[string]*dto.MetricFamily {
	t.Helper()
	rr := httptest.NewRecorder()
	c.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse exposition: %v\n%s", err, rr.Body.String())
	}
	return mfs
}

func labelled(mf *dto.MetricFamily, value string) float64 {
	if mf == nil {
		return -1
	}
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	return -1
}

func TestCollector_Counters(t *testing.T) {
	c := New()
	c.ControlChanged("site-dropdown")
	c.ControlChanged("site-dropdown")
	c.ControlChanged("payload-slider")
	c.Recomputed("success-pie-chart")

	mfs := scrape(t, c)

	events := mfs["launchdash_control_events_total"]
	if got := labelled(events, "site-dropdown"); got != 2 {
		t.Errorf("site-dropdown events: got %v, want 2", got)
	}
	if got := labelled(events, "payload-slider"); got != 1 {
		t.Errorf("payload-slider events: got %v, want 1", got)
	}
	if events.GetType() != dto.MetricType_COUNTER {
		t.Errorf("type: got %v, want COUNTER", events.GetType())
	}
	if got := labelled(mfs["launchdash_recomputes_total"], "success-pie-chart"); got != 1 {
		t.Errorf("pie recomputes: got %v, want 1", got)
	}
}

func TestCollector_EmptyCountersOmitted(t *testing.T) {
	mfs := scrape(t, New())
	if len(mfs) != 0 {
		t.Errorf("families: got %d, want 0 before any activity", len(mfs))
	}
}

func TestCollector_GaugeReadAtScrape(t *testing.T) {
	c := New()
	n := 3.0
	c.AddGauge("ws_clients", "Connected WebSocket clients.", func() float64 { return n })

	if got := scrape(t, c)["launchdash_ws_clients"].GetMetric()[0].GetGauge().GetValue(); got != 3 {
		t.Errorf("gauge: got %v, want 3", got)
	}
	n = 5
	if got := scrape(t, c)["launchdash_ws_clients"].GetMetric()[0].GetGauge().GetValue(); got != 5 {
		t.Errorf("gauge after change: got %v, want 5", got)
	}
}

func TestCollector_GatherSorted(t *testing.T) {
	c := New()
	c.AddGauge("dataset_records", "Records loaded.", func() float64 { return 1 })
	c.Recomputed("x")
	c.ControlChanged("y")

	mfs := c.Gather()
	for i := 1; i < len(mfs); i++ {
		if mfs[i-1].GetName() > mfs[i].GetName() {
			t.Errorf("families out of order: %q before %q", mfs[i-1].GetName(), mfs[i].GetName())
		}
	}
}

func TestCollector_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	New().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type: got %q, want text/plain", ct)
	}
}

func TestCollector_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	New().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}
