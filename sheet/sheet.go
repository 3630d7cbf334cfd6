// Package sheet reads the expense and category-lookup workbooks.
package sheet

import (
	"fmt"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/liorhk/expensight/config"
	"github.com/liorhk/expensight/ledger"
)

// Source reads xlsx workbooks using the configured header names. Only the
// first sheet of a workbook is read; row one must be the header row.
type Source struct {
	cfg *config.MasterConfig
}

func New(cfg *config.MasterConfig) *Source {
	return &Source{cfg: cfg}
}

// Expenses reads the required expense workbook: one row per expense. A blank
// amount cell loads as null so the filter can drop it later; a non-numeric
// amount is a hard error. Rows that are entirely blank are skipped.
func (s *Source) Expenses(path string) ([]ledger.Row, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(path, rows[0], s.cfg.Columns.Payee, s.cfg.Columns.Amount)
	if err != nil {
		return nil, err
	}

	out := make([]ledger.Row, 0, len(rows)-1)
	for n, row := range rows[1:] {
		payee := s.payee(cell(row, idx[0]))
		raw := cell(row, idx[1])
		if payee == "" && raw == "" {
			continue
		}

		var amount decimal.NullDecimal
		if raw != "" {
			d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad amount %q: %w", path, n+2, raw, err)
			}
			amount = decimal.NullDecimal{Decimal: d, Valid: true}
		}
		out = append(out, ledger.Row{Payee: payee, Amount: amount})
	}
	return out, nil
}

// Rules reads the optional category workbook. The caller decides what a
// missing file means; a present file with the wrong headers is an error.
func (s *Source) Rules(path string) ([]ledger.Rule, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(path, rows[0], s.cfg.Columns.Payee, s.cfg.Columns.Category)
	if err != nil {
		return nil, err
	}

	out := make([]ledger.Rule, 0, len(rows)-1)
	for _, row := range rows[1:] {
		payee := s.payee(cell(row, idx[0]))
		if payee == "" {
			continue
		}
		out = append(out, ledger.Rule{Payee: payee, Category: cell(row, idx[1])})
	}
	return out, nil
}

// payee normalizes a payee cell. Emoji stripping has to happen on both the
// expense and rule side or the lookups stop matching.
func (s *Source) payee(name string) string {
	if s.cfg.StripEmoji {
		name = strings.TrimSpace(gomoji.RemoveEmojis(name))
	}
	return name
}

func readRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: workbook has no header row", path)
	}
	return rows, nil
}

func headerIndex(path string, header []string, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, fmt.Errorf("%s: missing required column %q", path, name)
		}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
