package dashboard_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/launchdash/launchdash/pkg/types"
	"github.com/launchdash/launchdash/server/internal/dashboard"
	"github.com/launchdash/launchdash/server/internal/dataset"
)

func TestSiteSuccessPie_SingleSite(t *testing.T) {
	tbl := table(t,
		"KSC LC-39A,2490,FT,1",
		"KSC LC-39A,5600,FT,0",
		"CCAFS LC-40,500,v1.0,1",
	)
	fig := dashboard.SiteSuccessPie(tbl, "KSC LC-39A")

	if len(fig.Data) != 1 {
		t.Fatalf("traces: got %d, want 1", len(fig.Data))
	}
	tr := fig.Data[0]
	if tr.Type != types.TracePie {
		t.Errorf("type: got %q, want pie", tr.Type)
	}
	if diff := cmp.Diff([]string{"Success", "Failure"}, tr.Labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 1}, tr.Values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if tr.Hole != 0.3 {
		t.Errorf("hole: got %v, want 0.3", tr.Hole)
	}
	if got, want := fig.Layout.Title.Text, "Success vs. Failure Launches for KSC LC-39A"; got != want {
		t.Errorf("title: got %q, want %q", got, want)
	}
}

func TestSiteSuccessPie_SingleSiteSumsToSiteCount(t *testing.T) {
	tbl := launches(t)
	for _, site := range tbl.Sites() {
		fig := dashboard.SiteSuccessPie(tbl, site)
		n := len(tbl.Where(dataset.AtSite(site)))
		if got := sum(fig.Data[0].Values); got != float64(n) {
			t.Errorf("%s: slices sum to %v, want %d", site, got, n)
		}
	}
}

func TestSiteSuccessPie_AllSites(t *testing.T) {
	tbl := launches(t)
	fig := dashboard.SiteSuccessPie(tbl, dashboard.AllSites)

	tr := fig.Data[0]
	wantLabels := []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}
	if diff := cmp.Diff(wantLabels, tr.Labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 2, 3, 1}, tr.Values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if got, want := fig.Layout.Title.Text, "Total Success Launches by Launch Site"; got != want {
		t.Errorf("title: got %q, want %q", got, want)
	}
	if len(tr.Marker.Colors) != len(tr.Labels) {
		t.Errorf("colors: got %d, want one per slice (%d)", len(tr.Marker.Colors), len(tr.Labels))
	}
}

func TestSiteSuccessPie_AllSitesSumsToDatasetSuccesses(t *testing.T) {
	tbl := launches(t)
	var total float64
	for _, r := range tbl.Records() {
		total += r.OutcomeValue()
	}
	fig := dashboard.SiteSuccessPie(tbl, dashboard.AllSites)
	if got := sum(fig.Data[0].Values); got != total {
		t.Errorf("per-site successes sum to %v, want %v", got, total)
	}
}

func TestSiteSuccessPie_UnknownSite(t *testing.T) {
	fig := dashboard.SiteSuccessPie(launches(t), "Boca Chica")

	if len(fig.Data) != 1 {
		t.Fatalf("traces: got %d, want 1", len(fig.Data))
	}
	if diff := cmp.Diff([]float64{0, 0}, fig.Data[0].Values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestSiteSuccessPie_Idempotent(t *testing.T) {
	tbl := launches(t)
	for _, site := range []string{dashboard.AllSites, "KSC LC-39A", "nowhere"} {
		a := dashboard.SiteSuccessPie(tbl, site)
		b := dashboard.SiteSuccessPie(tbl, site)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: second call differs (-first +second):\n%s", site, diff)
		}
	}
}

func TestSiteSuccessPie_DoesNotShareColors(t *testing.T) {
	tbl := launches(t)
	a := dashboard.SiteSuccessPie(tbl, "KSC LC-39A")
	a.Data[0].Marker.Colors[0] = "black"

	b := dashboard.SiteSuccessPie(tbl, "KSC LC-39A")
	if b.Data[0].Marker.Colors[0] != "red" {
		t.Errorf("mutating one figure leaked into the next: got %q, want red", b.Data[0].Marker.Colors[0])
	}
}
