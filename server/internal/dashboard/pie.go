package dashboard

import (
	"sort"

	"github.com/launchdash/launchdash/pkg/types"
	"github.com/launchdash/launchdash/server/internal/dataset"
)

const (
	pieHole          = 0.3
	allSitesPieTitle = "Total Success Launches by Launch Site"
)

// SiteSuccessPie builds the success pie for the selected site.
//
// For AllSites it has one slice per launch site, sorted by name, valued with
// that site's successful launches. For a single site it has exactly two
// slices, "Success" and "Failure". A site with no records yields zero-valued
// slices.
func SiteSuccessPie(t *dataset.Table, site string) types.Figure {
	if site == AllSites {
		return allSitesPie(t)
	}
	return singleSitePie(t, site)
}

func allSitesPie(t *dataset.Table) types.Figure {
	sites := t.Sites()
	sort.Strings(sites)

	success := make(map[string]float64, len(sites))
	for _, r := range t.Where() {
		success[r.LaunchSite] += r.OutcomeValue()
	}

	values := make([]float64, len(sites))
	for i, s := range sites {
		values[i] = success[s]
	}

	return types.Figure{
		Data: []types.Trace{{
			Type:   types.TracePie,
			Labels: sites,
			Values: values,
			Hole:   pieHole,
			Marker: &types.Marker{Colors: paletteN(len(sites))},
		}},
		Layout: types.Layout{Title: types.Title{Text: allSitesPieTitle}},
	}
}

func singleSitePie(t *dataset.Table, site string) types.Figure {
	var succeeded, failed float64
	for _, r := range t.Where(dataset.AtSite(site)) {
		if r.Outcome {
			succeeded++
		} else {
			failed++
		}
	}

	colors := make([]string, len(siteOutcomeColors))
	copy(colors, siteOutcomeColors)

	return types.Figure{
		Data: []types.Trace{{
			Type:   types.TracePie,
			Labels: []string{"Success", "Failure"},
			Values: []float64{succeeded, failed},
			Hole:   pieHole,
			Marker: &types.Marker{Colors: colors},
		}},
		Layout: types.Layout{Title: types.Title{Text: "Success vs. Failure Launches for " + site}},
	}
}
