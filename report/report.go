// Package report writes the plain-text expense summary.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/liorhk/expensight/format"
	"github.com/liorhk/expensight/ledger"
)

// Write overwrites path with the two-section summary: totals by business
// name, then totals by category with the per-payee breakdown indented under
// each category.
func Write(path string, byPayee, byCategory []ledger.AggregationRow, breakdown ledger.Breakdown) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	Render(w, byPayee, byCategory, breakdown)
	return w.Flush()
}

// Render writes the report body to w. Split from Write so tests can target a
// buffer.
func Render(w io.Writer, byPayee, byCategory []ledger.AggregationRow, breakdown ledger.Breakdown) {
	fmt.Fprintln(w, "=== 1) Aggregation by Business Name ===")
	for _, row := range byPayee {
		fmt.Fprintf(w, "Business: %s, Total: %s\n", row.Key, format.Amount(row.Total))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== 2) Aggregation by Category ===")
	for _, row := range byCategory {
		fmt.Fprintf(w, "Category: %s, Total: %s\n", row.Key, format.Amount(row.Total))
		for _, p := range breakdown[row.Key] {
			fmt.Fprintf(w, "\tBusiness: %s => %s\n", p.Payee, format.Amount(p.Total))
		}
	}
}
