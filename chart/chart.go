// Package chart draws the aggregation views with go-echarts: a bar chart and
// a fraction-normalized pie chart per view, plus a per-bar category
// drill-down tooltip on the category view.
package chart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/snapshot-chromedp/render"
	"github.com/rs/zerolog/log"

	"github.com/liorhk/expensight/ledger"
)

// View is one aggregation (by business name or by category) ready to draw.
type View struct {
	Title string
	Rows  []ledger.AggregationRow
	// Breakdown enables the per-bar drill-down tooltip; nil for the
	// business-name view.
	Breakdown ledger.Breakdown
	// RTLFix reverses Hebrew-only names in the drill-down popup text.
	RTLFix bool
}

// Renderer writes one HTML page per view under Dir, and optionally a static
// PNG per chart (needs a local Chrome for chromedp).
type Renderer struct {
	Dir      string
	Width    string
	Height   string
	Snapshot bool
}

// Render draws the bar and pie charts for v into a single interactive HTML
// page. A view whose grand total is zero gets no pie chart; that is an
// informational skip, not an error.
func (r *Renderer) Render(v View) error {
	grand := ledger.GrandTotal(v.Rows)

	page := components.NewPage()
	page.PageTitle = v.Title

	bar := r.bar(v, grand)
	page.AddCharts(bar)

	var pie *charts.Pie
	if grand.IsZero() {
		log.Info().Str("view", v.Title).Msg("Grand total is zero, skipping pie chart")
	} else {
		pie = r.pie(v, grand)
		page.AddCharts(pie)
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return err
	}
	name := filepath.Join(r.Dir, slug(v.Title)+".html")
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return err
	}
	log.Info().Str("view", v.Title).Str("file", name).Msg("📊 Wrote chart page")

	if r.Snapshot {
		if err := render.MakeChartSnapshot(bar.RenderContent(), filepath.Join(r.Dir, slug(v.Title)+"-bar.png")); err != nil {
			return err
		}
		if pie != nil {
			if err := render.MakeChartSnapshot(pie.RenderContent(), filepath.Join(r.Dir, slug(v.Title)+"-pie.png")); err != nil {
				return err
			}
		}
	}
	return nil
}

func slug(title string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, strings.ToLower(title))
	return strings.Trim(s, "-")
}
