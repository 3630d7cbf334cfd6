package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

// Columns maps the logical fields onto spreadsheet header names. The defaults
// match the bank export this tool was written around, misspelling included.
type Columns struct {
	Payee    string `yaml:"payee"`
	Amount   string `yaml:"amount"`
	Category string `yaml:"category"`
}

type chartConfig struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

// MasterConfig is the optional config.yml. Every field has a working default,
// so a missing file is fine.
type MasterConfig struct {
	Columns Columns `yaml:"columns"`
	// Overrides map a payee straight to a category and beat the lookup
	// spreadsheet when both name the same payee.
	Overrides  map[string]string `yaml:"overrides"`
	StripEmoji bool              `yaml:"strip_emoji"`
	Chart      chartConfig       `yaml:"chart"`
}

func defaults() MasterConfig {
	return MasterConfig{
		Columns: Columns{
			Payee:    "buisness_name",
			Amount:   "total_expense",
			Category: "category",
		},
		Chart: chartConfig{Width: "900px", Height: "500px"},
	}
}

// Load reads file into a MasterConfig on top of the defaults. A missing file
// returns the defaults; a present but unparseable file is an error.
func Load(file string) (*MasterConfig, error) {
	c := defaults()

	raw, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return &c, nil
		}
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	if c.Columns.Payee == "" || c.Columns.Amount == "" || c.Columns.Category == "" {
		return nil, fmt.Errorf("%s: columns.payee, columns.amount and columns.category must all be non-empty", file)
	}
	if c.Chart.Width == "" || c.Chart.Height == "" {
		return nil, fmt.Errorf("%s: chart.width and chart.height must be non-empty", file)
	}
	return &c, nil
}
