// Package format renders amounts and percentages for the report and both
// chart types. These two functions are the only place display strings for
// numbers come from, so the report and the charts can never disagree.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var (
	one     = decimal.NewFromInt(1)
	half    = decimal.New(5, -1)
	hundred = decimal.NewFromInt(100)
)

// Amount renders a total for display as a grouped integer ("1,235"), except
// that sub-unit positive values become the "<1" sentinel so rounding noise
// doesn't read as zero. Negative totals keep their sign.
func Amount(v decimal.Decimal) string {
	if v.IsPositive() && v.LessThan(one) {
		return "<1"
	}
	return printer.Sprintf("%d", v.Round(0).IntPart())
}

// Percentage renders value as a share of total, rounded to a whole percent.
// A zero total yields "0%"; positive shares under half a percent yield "<1%".
func Percentage(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0%"
	}
	pct := value.Mul(hundred).Div(total)
	if pct.IsPositive() && pct.LessThan(half) {
		return "<1%"
	}
	return printer.Sprintf("%d%%", pct.Round(0).IntPart())
}
