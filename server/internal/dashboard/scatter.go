package dashboard

import (
	"github.com/launchdash/launchdash/pkg/types"
	"github.com/launchdash/launchdash/server/internal/dataset"
)

const (
	payloadAxisTitle = "Payload Mass (kg)"
	outcomeAxisTitle = "Launch Outcome"
	boosterLegend    = "Booster Version Category"
)

// PayloadScatter plots launch outcome against payload mass for the selected
// site (or every site for AllSites), restricted to the inclusive payload
// range. Points are grouped into one trace per booster category, in the order
// categories first appear in the table. An invalid range or an empty
// selection yields a figure with no traces.
func PayloadScatter(t *dataset.Table, site string, payload PayloadRange) types.Figure {
	fig := types.Figure{
		Data: []types.Trace{},
		Layout: types.Layout{
			Title:  types.Title{Text: scatterTitle(site)},
			XAxis:  &types.Axis{Title: types.Title{Text: payloadAxisTitle}},
			YAxis:  &types.Axis{Title: types.Title{Text: outcomeAxisTitle}},
			Legend: &types.Legend{Title: types.Title{Text: boosterLegend}},
		},
	}
	if !payload.Valid() {
		return fig
	}

	preds := []dataset.Predicate{dataset.PayloadWithin(payload.Low(), payload.High())}
	if site != AllSites {
		preds = append(preds, dataset.AtSite(site))
	}

	byBooster := make(map[string]int)
	for _, r := range t.Where(preds...) {
		i, ok := byBooster[r.BoosterCategory]
		if !ok {
			i = len(fig.Data)
			byBooster[r.BoosterCategory] = i
			fig.Data = append(fig.Data, types.Trace{
				Type:   types.TraceScatter,
				Name:   r.BoosterCategory,
				Mode:   "markers",
				Marker: &types.Marker{Color: set1[i%len(set1)]},
			})
		}
		fig.Data[i].X = append(fig.Data[i].X, r.PayloadMassKg)
		fig.Data[i].Y = append(fig.Data[i].Y, r.OutcomeValue())
	}
	return fig
}

func scatterTitle(site string) string {
	if site == AllSites {
		return "Payload vs. Launch Outcome for All Sites"
	}
	return "Payload vs. Launch Outcome for " + site
}
