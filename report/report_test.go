package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liorhk/expensight/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixture() (byPayee, byCategory []ledger.AggregationRow, bd ledger.Breakdown) {
	byPayee = []ledger.AggregationRow{
		{Key: "Acme", Total: d("1234.56")},
		{Key: "Zed", Total: d("40")},
		{Key: "Tip Jar", Total: d("0.5")},
	}
	byCategory = []ledger.AggregationRow{
		{Key: "Retail", Total: d("1234.56")},
		{Key: "Other", Total: d("40.5")},
	}
	bd = ledger.Breakdown{
		"Retail": {{Payee: "Acme", Total: d("1234.56")}},
		"Other": {
			{Payee: "Zed", Total: d("40")},
			{Payee: "Tip Jar", Total: d("0.5")},
		},
	}
	return byPayee, byCategory, bd
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	byPayee, byCategory, bd := fixture()

	Render(&buf, byPayee, byCategory, bd)

	want := "=== 1) Aggregation by Business Name ===\n" +
		"Business: Acme, Total: 1,235\n" +
		"Business: Zed, Total: 40\n" +
		"Business: Tip Jar, Total: <1\n" +
		"\n" +
		"=== 2) Aggregation by Category ===\n" +
		"Category: Retail, Total: 1,235\n" +
		"\tBusiness: Acme => 1,235\n" +
		"Category: Other, Total: 41\n" +
		"\tBusiness: Zed => 40\n" +
		"\tBusiness: Tip Jar => <1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content from the previous run"), 0o644))

	byPayee, byCategory, bd := fixture()
	require.NoError(t, Write(path, byPayee, byCategory, bd))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "stale")

	var buf bytes.Buffer
	Render(&buf, byPayee, byCategory, bd)
	assert.Equal(t, buf.String(), string(got))
}
