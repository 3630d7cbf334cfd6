// Package ledger implements the aggregation core: filtering raw spreadsheet
// rows, resolving categories against lookup rules, and grouping totals.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned when no rule matches a payee.
const DefaultCategory = "Other"

// Row is a raw spreadsheet row. Amount is null when the cell was blank.
type Row struct {
	Payee  string
	Amount decimal.NullDecimal
}

// Record is an expense row that survived filtering.
type Record struct {
	Payee  string
	Amount decimal.Decimal
}

// Rule maps a payee to a category. Only the first rule per payee is honored.
type Rule struct {
	Payee    string
	Category string
}

// Categorized is a Record with its resolved category.
type Categorized struct {
	Record
	Category string
}

// AggregationRow is one grouping key (payee or category) with its summed total.
type AggregationRow struct {
	Key   string
	Total decimal.Decimal
}

// PayeeTotal is one payee's share within a category.
type PayeeTotal struct {
	Payee string
	Total decimal.Decimal
}

// Breakdown maps a category to its payees sorted by descending total. It only
// feeds the drill-down popups, not the aggregation views themselves.
type Breakdown map[string][]PayeeTotal

// Filter drops rows whose amount is blank or exactly zero. Negative amounts
// (refunds, credits) pass through and can drive totals negative.
func Filter(rows []Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		if !r.Amount.Valid || r.Amount.Decimal.IsZero() {
			continue
		}
		records = append(records, Record{Payee: r.Payee, Amount: r.Amount.Decimal})
	}
	return records
}

// Resolve assigns a category to every record. Matching is exact and
// case-sensitive; the first rule seen for a payee wins. With no rules at all
// every record lands in DefaultCategory.
func Resolve(records []Record, rules []Rule) []Categorized {
	byPayee := make(map[string]string, len(rules))
	for _, r := range rules {
		if _, ok := byPayee[r.Payee]; !ok {
			byPayee[r.Payee] = r.Category
		}
	}

	out := make([]Categorized, 0, len(records))
	for _, rec := range records {
		category, ok := byPayee[rec.Payee]
		if !ok {
			category = DefaultCategory
		}
		out = append(out, Categorized{Record: rec, Category: category})
	}
	return out
}

// ByPayee and ByCategory are the two grouping keys used by the pipeline.
func ByPayee(c Categorized) string    { return c.Payee }
func ByCategory(c Categorized) string { return c.Category }

// AggregateBy groups records by key and sums amounts per group. Rows come back
// sorted by descending total; ties keep the order the keys first appeared in.
func AggregateBy(records []Categorized, key func(Categorized) string) []AggregationRow {
	index := make(map[string]int, len(records))
	var rows []AggregationRow
	for _, rec := range records {
		k := key(rec)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, AggregationRow{Key: k})
		}
		rows[i].Total = rows[i].Total.Add(rec.Amount)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

// BreakdownByCategory groups by category, then by payee within each category,
// sorting each category's payees by descending total.
func BreakdownByCategory(records []Categorized) Breakdown {
	perCategory := make(map[string][]Categorized)
	for _, rec := range records {
		perCategory[rec.Category] = append(perCategory[rec.Category], rec)
	}

	bd := make(Breakdown, len(perCategory))
	for category, group := range perCategory {
		rows := AggregateBy(group, ByPayee)
		payees := make([]PayeeTotal, len(rows))
		for i, r := range rows {
			payees[i] = PayeeTotal{Payee: r.Key, Total: r.Total}
		}
		bd[category] = payees
	}
	return bd
}

// GrandTotal sums every row of one aggregation view. It is the denominator
// for all percentage and fraction math on that view.
func GrandTotal(rows []AggregationRow) decimal.Decimal {
	var sum decimal.Decimal
	for _, r := range rows {
		sum = sum.Add(r.Total)
	}
	return sum
}
