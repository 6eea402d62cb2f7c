package dashboard

// set1 is Plotly's qualitative "Set1" palette.
var set1 = []string{
	"rgb(228,26,28)",
	"rgb(55,126,184)",
	"rgb(77,175,74)",
	"rgb(152,78,163)",
	"rgb(255,127,0)",
	"rgb(255,255,51)",
	"rgb(166,86,40)",
	"rgb(247,129,191)",
	"rgb(153,153,153)",
}

// siteOutcomeColors colour the Success and Failure slices of a single-site pie.
var siteOutcomeColors = []string{"red", "green"}

// paletteN returns n colours from set1, cycling when n exceeds its length.
func paletteN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = set1[i%len(set1)]
	}
	return out
}
