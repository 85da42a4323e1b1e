package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/config"
	"github.com/etfcalc/etf-calculator/internal/output"
)

func newScenariosCmd(opts *rootOptions) *cobra.Command {
	var (
		apply string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List scenario presets, or broadcast one into the configuration",
		Long: "Lists the named (annual return, annual yield) presets. With " +
			"--apply the preset is broadcast into every plan block; with " +
			"--write the updated configuration is saved back to the file given " +
			"by --config.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if apply != "" {
				if err := config.ApplyScenario(cfg, apply); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied scenario %q to all plan blocks\n", apply)
				if write {
					if opts.configPath == "" {
						return fmt.Errorf("--write requires --config")
					}
					if err := config.SaveConfiguration(cfg, opts.configPath); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", opts.configPath)
				}
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scenario presets")
			fmt.Fprintln(out, "================")
			for _, s := range cfg.Scenarios {
				fmt.Fprintf(out, "%-14s annual return %s, annual yield %s\n",
					s.Name, output.FormatPercentage(s.AnnualReturnPct), output.FormatPercentage(s.AnnualYieldPct))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apply, "apply", "", "scenario name to broadcast into the plan blocks")
	cmd.Flags().BoolVar(&write, "write", false, "save the updated configuration back to --config")
	return cmd
}
