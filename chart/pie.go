package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"

	"github.com/liorhk/expensight/format"
)

func (r *Renderer) pie(v View, grand decimal.Decimal) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           r.Width,
			Height:          r.Height,
			BackgroundColor: "#FFFFFF",
		}),
		// Center annotation with the view's grand total.
		charts.WithTitleOpts(opts.Title{
			Title: "Sum:\n" + format.Amount(grand),
			Left:  "center",
			Top:   "middle",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	pie.AddSeries(v.Title+" - Pie Chart", pieData(v, grand),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"45%", "70%"}}),
	)
	return pie
}

// pieData sizes wedges by fraction of the grand total, so partial or filtered
// data still fills the whole circle. Each wedge label carries the key, the
// formatted total and the share, with a bare "0%" coerced to "<1%".
func pieData(v View, grand decimal.Decimal) []opts.PieData {
	data := make([]opts.PieData, len(v.Rows))
	for i, row := range v.Rows {
		pct := format.Percentage(row.Total, grand)
		if pct == "0%" {
			pct = "<1%"
		}
		data[i] = opts.PieData{
			Name:  row.Key + "\n" + format.Amount(row.Total) + "\n(" + pct + ")",
			Value: row.Total.Div(grand).InexactFloat64(),
		}
	}
	return data
}
