package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/liorhk/expensight/config"
)

const AppName = "expensight"
const AppDesc = "Aggregates a spreadsheet of expenses by business name and by category, writes a plain-text summary report, and renders bar/pie charts with an interactive category drill-down."

var cli struct {
	ExpensesFile     string `env:"EXPENSES_FILE" help:"${env} - Path to the expense spreadsheet" default:"input_expenses.xlsx"`
	CategoriesFile   string `env:"CATEGORIES_FILE" help:"${env} - Path to the optional category lookup spreadsheet" default:"categories.xlsx"`
	ReportFile       string `env:"REPORT_FILE" help:"${env} - Path of the text report, overwritten every run" default:"expense_report.txt"`
	ChartsDir        string `env:"CHARTS_DIR" help:"${env} - Directory for rendered chart pages" default:"./charts"`
	ConfigPath       string `env:"CONFIG_PATH" help:"${env} - Path to config file" default:"./config.yml"`
	IncludePayeeView bool   `env:"INCLUDE_PAYEE_VIEW" help:"${env} - Also render the per-business charts" default:"true" negatable:""`
	SnapshotPNG      bool   `env:"SNAPSHOT_PNG" help:"${env} - Also snapshot each chart to a PNG (requires a local Chrome)" default:"false"`
	RTLFix           bool   `env:"RTL_FIX" help:"${env} - Reverse Hebrew-only names in the drill-down popups" default:"true" negatable:""`
	LogLevel         string `env:"LOG_LEVEL" help:"${env} - Log level (debug, info, warn, error)" default:"info"`
}

func main() {
	kong.Parse(&cli,
		kong.Name(AppName),
		kong.Description(AppDesc),
	)
	log.Logger = log.Output(os.Stderr).With().Caller().Logger()
	if lvl, err := zerolog.ParseLevel(cli.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cli.LogLevel).Msg("Unknown log level, staying on info")
	}

	c, err := config.Load(cli.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid config file")
	}

	if err := run(c); err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}
}
