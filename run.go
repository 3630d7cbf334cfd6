package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/liorhk/expensight/chart"
	"github.com/liorhk/expensight/config"
	"github.com/liorhk/expensight/ledger"
	"github.com/liorhk/expensight/report"
	"github.com/liorhk/expensight/sheet"
)

// run drives the whole batch: load -> filter -> resolve -> aggregate ->
// report -> charts, in that order. Any error past this point means the run
// failed; there is nothing to retry against.
func run(c *config.MasterConfig) error {
	src := sheet.New(c)

	// Load //
	/////////
	rows, err := src.Expenses(cli.ExpensesFile)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	log.Info().Int("rows", len(rows)).Str("file", cli.ExpensesFile).Msg("💸 Loaded expense rows")

	rules, err := loadRules(src, c)
	if err != nil {
		return err
	}

	// Aggregate //
	//////////////
	records := ledger.Filter(rows)
	log.Info().Int("kept", len(records)).Int("dropped", len(rows)-len(records)).Msg("Filtered blank and zero amounts")

	categorized := ledger.Resolve(records, rules)
	byPayee := ledger.AggregateBy(categorized, ledger.ByPayee)
	byCategory := ledger.AggregateBy(categorized, ledger.ByCategory)
	breakdown := ledger.BreakdownByCategory(categorized)

	// Report //
	///////////
	if err := report.Write(cli.ReportFile, byPayee, byCategory, breakdown); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Info().Str("file", cli.ReportFile).Msg("📝 Wrote summary report")

	// Charts //
	///////////
	r := &chart.Renderer{
		Dir:      cli.ChartsDir,
		Width:    c.Chart.Width,
		Height:   c.Chart.Height,
		Snapshot: cli.SnapshotPNG,
	}
	if cli.IncludePayeeView {
		if err := r.Render(chart.View{Title: "Business Name", Rows: byPayee}); err != nil {
			return fmt.Errorf("rendering business-name charts: %w", err)
		}
	}
	if err := r.Render(chart.View{Title: "Category", Rows: byCategory, Breakdown: breakdown, RTLFix: cli.RTLFix}); err != nil {
		return fmt.Errorf("rendering category charts: %w", err)
	}
	return nil
}

// loadRules merges the inline config overrides with the optional lookup
// spreadsheet. Overrides go first so they win: only the first rule per payee
// is honored. A missing lookup file is not an error; every unmatched payee
// falls back to the default category during resolution.
func loadRules(src *sheet.Source, c *config.MasterConfig) ([]ledger.Rule, error) {
	var rules []ledger.Rule
	for payee, category := range c.Overrides {
		rules = append(rules, ledger.Rule{Payee: payee, Category: category})
	}

	if _, err := os.Stat(cli.CategoriesFile); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("file", cli.CategoriesFile).Msg("No category lookup file, everything defaults to " + ledger.DefaultCategory)
			return rules, nil
		}
		return nil, fmt.Errorf("checking category lookup: %w", err)
	}

	fromSheet, err := src.Rules(cli.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("loading category lookup: %w", err)
	}
	log.Info().Int("rules", len(fromSheet)).Str("file", cli.CategoriesFile).Msg("Loaded category rules")
	return append(rules, fromSheet...), nil
}
