package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/liorhk/expensight/config"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig() *config.MasterConfig {
	c, _ := config.Load(filepath.Join("testdata", "does-not-exist.yml"))
	return c
}

func TestExpenses(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"buisness_name", "total_expense"},
		{"Acme", 100},
		{"Blank Amount"},
		{"Zero", 0},
		{"Decimal", 12.34},
		{"Refund", -42},
	})

	rows, err := New(testConfig()).Expenses(path)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "Acme", rows[0].Payee)
	assert.True(t, rows[0].Amount.Valid)
	assert.Equal(t, "100", rows[0].Amount.Decimal.String())

	// blank cell loads as null, zero loads as zero: both must survive to the
	// filter stage unchanged
	assert.False(t, rows[1].Amount.Valid)
	assert.True(t, rows[2].Amount.Valid)
	assert.True(t, rows[2].Amount.Decimal.IsZero())

	assert.Equal(t, "12.34", rows[3].Amount.Decimal.String())
	assert.Equal(t, "-42", rows[4].Amount.Decimal.String())
}

func TestExpensesMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"buisness_name", "amount"}, // wrong header for the amount column
		{"Acme", 100},
	})

	_, err := New(testConfig()).Expenses(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_expense")
}

func TestExpensesBadAmount(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"buisness_name", "total_expense"},
		{"Acme", "not a number"},
	})

	_, err := New(testConfig()).Expenses(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad amount")
}

func TestExpensesMissingFile(t *testing.T) {
	_, err := New(testConfig()).Expenses(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

func TestExpensesCustomColumns(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"merchant", "amount"},
		{"Acme", 7},
	})

	c := testConfig()
	c.Columns.Payee = "merchant"
	c.Columns.Amount = "amount"

	rows, err := New(c).Expenses(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].Payee)
}

func TestExpensesStripEmoji(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"buisness_name", "total_expense"},
		{"Acme 🍕", 10},
	})

	c := testConfig()
	c.StripEmoji = true

	rows, err := New(c).Expenses(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].Payee)
}

func TestRules(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"buisness_name", "category"},
		{"Acme", "Retail"},
		{"", "Ignored"},
		{"Bolt", "Transport"},
	})

	rules, err := New(testConfig()).Rules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Acme", rules[0].Payee)
	assert.Equal(t, "Retail", rules[0].Category)
	assert.Equal(t, "Transport", rules[1].Category)
}

func TestRulesMissingColumnIsFatal(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"buisness_name", "group"},
		{"Acme", "Retail"},
	})

	_, err := New(testConfig()).Rules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}
