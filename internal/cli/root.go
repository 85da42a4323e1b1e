// Package cli wires the projection engine, configuration layer and output
// formatters into the etfcalc command tree.
package cli

import (
	"errors"
	"fmt"
	"time"

	money "github.com/Rhymond/go-money"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/calculation"
	"github.com/etfcalc/etf-calculator/internal/config"
	"github.com/etfcalc/etf-calculator/internal/domain"
	"github.com/etfcalc/etf-calculator/internal/output"
)

// rootOptions holds the persistent flag values shared by every subcommand.
type rootOptions struct {
	configPath string
	scenario   string
	format     string
	outputPath string
	currency   string
	verbose    bool

	log    *logrus.Logger
	engine *calculation.ProjectionEngine
}

// NewRootCmd builds the etfcalc command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "etfcalc",
		Short: "ETF savings and projection calculator",
		Long: "etfcalc projects ETF savings plans: dollar-cost-averaging growth, " +
			"goal seeking, dividend sizing, a two-phase retirement lifecycle and " +
			"weighted portfolios. Plans come from flags, a YAML configuration " +
			"file, or both (flags win).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = logrus.New()
			opts.log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				opts.log.SetLevel(logrus.DebugLevel)
			}
			if opts.currency != "" {
				if money.GetCurrency(opts.currency) == nil {
					return fmt.Errorf("unknown currency code %q", opts.currency)
				}
				output.ReportCurrency = opts.currency
			}
			opts.engine = calculation.NewProjectionEngine()
			opts.engine.SetLogger(&logrusAdapter{opts.log})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML plan configuration file")
	pf.StringVarP(&opts.scenario, "scenario", "s", "", "scenario preset to apply before calculating")
	pf.StringVarP(&opts.format, "format", "f", "console", "output format (console, csv, json, markdown, html, pdf)")
	pf.StringVarP(&opts.outputPath, "output", "o", "", "write the report to this file instead of stdout")
	pf.StringVar(&opts.currency, "currency", "", "ISO currency code for money rendering (default USD)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGrowCmd(opts),
		newGoalCmd(opts),
		newDividendCmd(opts),
		newLifecycleCmd(opts),
		newPortfolioCmd(opts),
		newScenariosCmd(opts),
		newInitCmd(opts),
		newDocsCmd(),
	)
	return root
}

// Execute runs the CLI. Engine errors of kind calculation.ErrInvalidInput
// already carry a user-facing message; everything else is a fault.
func Execute() error {
	return NewRootCmd().Execute()
}

// IsInputError reports whether err is a user-correctable input problem.
func IsInputError(err error) bool {
	return errors.Is(err, calculation.ErrInvalidInput)
}

// loadConfig loads the configured YAML file, or the built-in defaults when
// no file is given, and applies the selected scenario preset.
func (opts *rootOptions) loadConfig() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	var cfg *domain.Configuration
	if opts.configPath != "" {
		loaded, err := parser.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		opts.log.Debugf("loaded configuration from %s", opts.configPath)
	} else {
		cfg = parser.CreateExampleConfiguration()
	}
	if opts.scenario != "" {
		if err := config.ApplyScenario(cfg, opts.scenario); err != nil {
			return nil, err
		}
		opts.log.Debugf("applied scenario %q", opts.scenario)
	}
	return cfg, nil
}

// emit renders the report with the selected formatter. Console and markdown
// formats default to stdout (markdown through the terminal renderer); file
// formats default to a timestamped file unless --output names one.
func (opts *rootOptions) emit(cmd *cobra.Command, report *domain.ProjectionReport) error {
	report.GeneratedAt = time.Now()
	report.Scenario = opts.scenario

	name := output.NormalizeFormatName(opts.format)
	if opts.outputPath == "" {
		switch name {
		case "console":
			return output.Render(cmd.OutOrStdout(), report, name)
		case "markdown":
			return renderMarkdownToTerminal(cmd, report)
		}
	}
	path, err := output.WriteFormatted(report, name, opts.outputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
