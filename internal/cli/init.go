package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/config"
)

const defaultConfigFile = "etfcalc.yaml"

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Long: "Writes a complete example configuration with all plan blocks and " +
			"the four scenario presets, ready to edit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = defaultConfigFile
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			parser := config.NewInputParser()
			if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
