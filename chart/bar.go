package chart

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/shopspring/decimal"

	"github.com/liorhk/expensight/format"
	"github.com/liorhk/expensight/ledger"
)

// axisThousands renders y-axis ticks as grouped integers, matching the
// format.Amount grouping.
const axisThousands = `function (value) { return value.toLocaleString('en-US', {maximumFractionDigits: 0}); }`

func (r *Renderer) bar(v View, grand decimal.Decimal) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           r.Width,
			Height:          r.Height,
			BackgroundColor: "#FFFFFF",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    v.Title + " - Bar Chart",
			Subtitle: "Total: " + format.Amount(grand),
			Right:    "0",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Formatter: types.FuncStr(axisThousands)},
		}),
		charts.WithTooltipOpts(barTooltip(v)),
	)

	keys, data := barData(v, grand)
	bar.SetXAxis(keys).AddSeries("total", data)
	return bar
}

// barData labels every bar with its formatted total and, on a second line,
// its share of the view's grand total.
func barData(v View, grand decimal.Decimal) ([]string, []opts.BarData) {
	keys := make([]string, len(v.Rows))
	data := make([]opts.BarData, len(v.Rows))
	for i, row := range v.Rows {
		keys[i] = row.Key
		data[i] = opts.BarData{
			Name:  row.Key,
			Value: row.Total.InexactFloat64(),
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: format.Amount(row.Total) + "\n(" + format.Percentage(row.Total, grand) + ")",
			},
		}
	}
	return keys, data
}

// barTooltip attaches the category drill-down when the view carries a
// breakdown; the business-name view gets the plain per-bar tooltip.
func barTooltip(v View) opts.Tooltip {
	t := opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}
	if v.Breakdown == nil {
		return t
	}

	// a map[string]string cannot fail to marshal
	blob, _ := json.Marshal(drilldownPopup(v.Breakdown, v.RTLFix))
	t.Formatter = types.FuncStr(fmt.Sprintf(
		`function (params) { var popup = %s; return popup[params.name] || params.name; }`, blob))
	return t
}

// drilldownPopup builds the popup body per category: a "Category:" header
// line, then one "payee => total" line per payee in descending-total order.
// The RTL fix applies here and nowhere else.
func drilldownPopup(bd ledger.Breakdown, rtl bool) map[string]string {
	popup := make(map[string]string, len(bd))
	for category, payees := range bd {
		lines := make([]string, 0, len(payees)+1)
		lines = append(lines, "Category: "+displayName(category, rtl))
		for _, p := range payees {
			lines = append(lines, displayName(p.Payee, rtl)+" => "+format.Amount(p.Total))
		}
		popup[category] = strings.Join(lines, "<br/>")
	}
	return popup
}

// displayName prepares a payee or category name for the HTML tooltip.
func displayName(name string, rtl bool) string {
	if rtl {
		name = format.FixRTL(name)
	}
	return html.EscapeString(name)
}
